package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Arrears DTOs
// =============================================================================

// ArrearsRequest represents a request for an arrears report
type ArrearsRequest struct {
	MinMonths int `form:"min_months" binding:"omitempty,min=1,max=5"`
}

// ArrearsEntryResponse represents one delinquent customer in a report
type ArrearsEntryResponse struct {
	CustomerID   uuid.UUID       `json:"customer_id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	ServiceType  string          `json:"service_type"`
	InstalledAt  time.Time       `json:"installed_at"`
	UnpaidMonths int             `json:"unpaid_months"`
	Debt         decimal.Decimal `json:"debt"`
}

// SkippedCustomerResponse represents a customer excluded from a report
// because of malformed payment records
type SkippedCustomerResponse struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Reason     string    `json:"reason"`
}

// ArrearsReportResponse represents a full arrears computation pass
type ArrearsReportResponse struct {
	GeneratedAt time.Time                 `json:"generated_at"`
	MinMonths   int                       `json:"min_months"`
	TotalDebt   decimal.Decimal           `json:"total_debt"`
	Delinquents []ArrearsEntryResponse    `json:"delinquents"`
	Skipped     []SkippedCustomerResponse `json:"skipped"`
}

// =============================================================================
// Dashboard DTOs
// =============================================================================

// DashboardRequest represents a request for the dashboard summary
type DashboardRequest struct {
	Year int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

// MonthlyIncomeResponse represents collected income for one calendar month
type MonthlyIncomeResponse struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardSummaryResponse represents the operational summary for a year
type DashboardSummaryResponse struct {
	Year               int                     `json:"year"`
	TotalCustomers     int64                   `json:"total_customers"`
	ActiveCustomers    int64                   `json:"active_customers"`
	SuspendedCustomers int64                   `json:"suspended_customers"`
	WithdrawnCustomers int64                   `json:"withdrawn_customers"`
	TotalIncome        decimal.Decimal         `json:"total_income"`
	MonthlyIncome      []MonthlyIncomeResponse `json:"monthly_income"`
	UnparsedPayments   int                     `json:"unparsed_payments"`
}
