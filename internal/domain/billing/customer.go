package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vozip/billing/internal/domain/shared"
)

// CustomerStatus represents the service status of a customer
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusSuspended CustomerStatus = "suspended" // Service cut but contract alive
	CustomerStatusWithdrawn CustomerStatus = "withdrawn" // Contract terminated
)

// Customer is an ISP subscriber. The day-of-month of InstalledAt is the
// recurring billing cut-off day: each month's payment falls due on that day.
type Customer struct {
	shared.BaseEntity
	Name        string
	PlanMB      string
	ServiceType string
	Status      CustomerStatus
	InstalledAt time.Time
	Tariff      decimal.Decimal // Monthly charge; zero means no active billing
	Phone       string
	Location    string
	NationalID  string
	IPAddress   string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name string, installedAt time.Time, tariff decimal.Decimal) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if installedAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_INSTALLATION_DATE", "Installation date is required")
	}
	if tariff.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TARIFF", "Tariff cannot be negative")
	}

	return &Customer{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.ToLower(strings.TrimSpace(name)),
		Status:      CustomerStatusActive,
		InstalledAt: installedAt,
		Tariff:      tariff,
	}, nil
}

// SetContact sets the customer's contact and location fields
func (c *Customer) SetContact(phone, location, nationalID string) {
	c.Phone = strings.ToLower(strings.TrimSpace(phone))
	c.Location = strings.ToLower(strings.TrimSpace(location))
	c.NationalID = strings.ToLower(strings.TrimSpace(nationalID))
	c.Touch()
}

// SetService sets the customer's plan and service type
func (c *Customer) SetService(planMB, serviceType, ipAddress string) {
	c.PlanMB = strings.ToLower(strings.TrimSpace(planMB))
	c.ServiceType = strings.ToLower(strings.TrimSpace(serviceType))
	c.IPAddress = strings.ToLower(strings.TrimSpace(ipAddress))
	c.Touch()
}

// SetTariff updates the monthly charge
func (c *Customer) SetTariff(tariff decimal.Decimal) error {
	if tariff.IsNegative() {
		return shared.NewDomainError("INVALID_TARIFF", "Tariff cannot be negative")
	}
	c.Tariff = tariff
	c.Touch()
	return nil
}

// Suspend cuts the customer's service. Suspended customers stop accruing
// charges, so the tariff is zeroed.
func (c *Customer) Suspend() error {
	if c.Status == CustomerStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Customer is already suspended")
	}
	c.Status = CustomerStatusSuspended
	c.Tariff = decimal.Zero
	c.Touch()
	return nil
}

// Withdraw terminates the customer's contract and zeroes the tariff
func (c *Customer) Withdraw() error {
	if c.Status == CustomerStatusWithdrawn {
		return shared.NewDomainError("ALREADY_WITHDRAWN", "Customer is already withdrawn")
	}
	c.Status = CustomerStatusWithdrawn
	c.Tariff = decimal.Zero
	c.Touch()
	return nil
}

// Reactivate restores service with the given tariff
func (c *Customer) Reactivate(tariff decimal.Decimal) error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}
	if tariff.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_TARIFF", "Reactivation requires a positive tariff")
	}
	c.Status = CustomerStatusActive
	c.Tariff = tariff
	c.Touch()
	return nil
}

// IsActive returns true if the customer's service is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// IsBillable reports whether the customer accrues monthly charges at all.
// Suspended and withdrawn customers, and customers without a positive
// tariff, are never considered for arrears.
func (c *Customer) IsBillable() bool {
	return c.Status == CustomerStatusActive && c.Tariff.GreaterThan(decimal.Zero)
}

// CutoffDay returns the recurring billing due day derived from the
// installation date
func (c *Customer) CutoffDay() int {
	return c.InstalledAt.Day()
}

// ValidStatus returns true for a known customer status
func ValidStatus(s CustomerStatus) bool {
	switch s {
	case CustomerStatusActive, CustomerStatusSuspended, CustomerStatusWithdrawn:
		return true
	default:
		return false
	}
}
