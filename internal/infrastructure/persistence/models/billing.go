package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vozip/billing/internal/domain/billing"
	"github.com/vozip/billing/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name        string                 `gorm:"type:varchar(200);not null;index"`
	PlanMB      string                 `gorm:"type:varchar(50)"`
	ServiceType string                 `gorm:"type:varchar(50)"`
	Status      billing.CustomerStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	InstalledAt time.Time              `gorm:"not null"`
	Tariff      decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Phone       string                 `gorm:"type:varchar(50)"`
	Location    string                 `gorm:"type:varchar(200)"`
	NationalID  string                 `gorm:"type:varchar(50)"`
	IPAddress   string                 `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *billing.Customer {
	return &billing.Customer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		PlanMB:      m.PlanMB,
		ServiceType: m.ServiceType,
		Status:      m.Status,
		InstalledAt: m.InstalledAt,
		Tariff:      m.Tariff,
		Phone:       m.Phone,
		Location:    m.Location,
		NationalID:  m.NationalID,
		IPAddress:   m.IPAddress,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *billing.Customer) {
	m.ID = c.ID
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
	m.Name = c.Name
	m.PlanMB = c.PlanMB
	m.ServiceType = c.ServiceType
	m.Status = c.Status
	m.InstalledAt = c.InstalledAt
	m.Tariff = c.Tariff
	m.Phone = c.Phone
	m.Location = c.Location
	m.NationalID = c.NationalID
	m.IPAddress = c.IPAddress
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *billing.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// PaymentModel is the persistence model for the Payment domain entity.
// BillingMonth stores the month name exactly as captured; parsing happens in
// the domain layer.
type PaymentModel struct {
	BaseModel
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaidAt       time.Time       `gorm:"not null"`
	BillingMonth string          `gorm:"type:varchar(20);not null"`
	BillingYear  int             `gorm:"not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Method       string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		CustomerID:   m.CustomerID,
		PaidAt:       m.PaidAt,
		BillingMonth: m.BillingMonth,
		BillingYear:  m.BillingYear,
		Amount:       m.Amount,
		Method:       m.Method,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.ID = p.ID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.CustomerID = p.CustomerID
	m.PaidAt = p.PaidAt
	m.BillingMonth = p.BillingMonth
	m.BillingYear = p.BillingYear
	m.Amount = p.Amount
	m.Method = p.Method
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
