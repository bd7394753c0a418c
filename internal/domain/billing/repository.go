package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/vozip/billing/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll finds all customers matching the filter. A non-positive
	// page size disables pagination.
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts all customers
	Count(ctx context.Context) (int64, error)

	// CountByStatus counts customers with the given status
	CountByStatus(ctx context.Context, status CustomerStatus) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByCustomer finds all payments of a customer, no ordering guaranteed
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Payment, error)

	// FindSinceYear finds all payments whose billing year is >= year
	FindSinceYear(ctx context.Context, year int) ([]Payment, error)

	// FindByYear finds all payments whose billing year equals year
	FindByYear(ctx context.Context, year int) ([]Payment, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error
}
