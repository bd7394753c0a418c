package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vozip/billing/internal/domain/shared"
)

// Payment records one monthly charge settled by a customer. BillingMonth is
// kept as the raw free-text name it was captured with; BillingPeriod performs
// the strict parse.
type Payment struct {
	shared.BaseEntity
	CustomerID   uuid.UUID
	PaidAt       time.Time
	BillingMonth string
	BillingYear  int
	Amount       decimal.Decimal
	Method       string
}

// NewPayment creates a payment for the given customer and billing period
func NewPayment(customerID uuid.UUID, paidAt time.Time, billingMonth string, billingYear int, amount decimal.Decimal) (*Payment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if _, err := ParseMonth(billingMonth); err != nil {
		return nil, shared.WrapDomainError("INVALID_MONTH", "Billing month is not a recognized month name", err)
	}
	if billingYear < 2000 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Billing year is out of range")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
	}

	return &Payment{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerID:   customerID,
		PaidAt:       paidAt,
		BillingMonth: billingMonth,
		BillingYear:  billingYear,
		Amount:       amount,
	}, nil
}

// WithMethod sets the payment method (efectivo, transferencia, ...)
func (p *Payment) WithMethod(method string) *Payment {
	p.Method = method
	return p
}

// BillingPeriod returns the typed (year, month) pair this payment settles.
// Records entered by hand may carry any casing or stray whitespace; an
// unrecognized name is an UnknownMonthError.
func (p *Payment) BillingPeriod() (Period, error) {
	month, err := ParseMonth(p.BillingMonth)
	if err != nil {
		return Period{}, err
	}
	return Period{Year: p.BillingYear, Month: month}, nil
}
