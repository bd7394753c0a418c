package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vozip/billing/internal/domain/billing"
	"github.com/vozip/billing/internal/domain/shared"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of billing.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) CountByStatus(ctx context.Context, status billing.CustomerStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *billing.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of billing.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Payment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindSinceYear(ctx context.Context, year int) ([]billing.Payment, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByYear(ctx context.Context, year int) ([]billing.Payment, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// =============================================================================
// Helpers
// =============================================================================

func newArrearsService(customerRepo *MockCustomerRepository, paymentRepo *MockPaymentRepository, today time.Time) *ArrearsService {
	service := NewArrearsService(customerRepo, paymentRepo, billing.NewCalculator(time.Time{}), 1, zap.NewNop())
	service.now = func() time.Time { return today }
	return service
}

func makeCustomer(t *testing.T, name string, installed time.Time, tariff int64) billing.Customer {
	t.Helper()
	customer, err := billing.NewCustomer(name, installed, decimal.NewFromInt(tariff))
	require.NoError(t, err)
	return *customer
}

func makePayment(customerID uuid.UUID, month string, year int, amount int64) billing.Payment {
	return billing.Payment{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerID:   customerID,
		PaidAt:       time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		BillingMonth: month,
		BillingYear:  year,
		Amount:       decimal.NewFromInt(amount),
	}
}

// =============================================================================
// ArrearsService
// =============================================================================

func TestArrearsService_Report(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)

	t.Run("computes report over the whole customer base", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)

		delinquent := makeCustomer(t, "maria", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 100)
		settled := makeCustomer(t, "jose", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), 25)

		customerRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.PageSize <= 0
		})).Return([]billing.Customer{delinquent, settled}, nil)
		paymentRepo.On("FindSinceYear", ctx, 2024).Return([]billing.Payment{
			makePayment(settled.ID, "MARZO", 2024, 25),
			makePayment(settled.ID, "ABRIL", 2024, 25),
		}, nil)

		service := newArrearsService(customerRepo, paymentRepo, today)
		report, err := service.Report(ctx, ArrearsRequest{MinMonths: 1})

		require.NoError(t, err)
		assert.Equal(t, today, report.GeneratedAt)
		assert.Equal(t, 1, report.MinMonths)
		require.Len(t, report.Delinquents, 1)
		assert.Equal(t, "maria", report.Delinquents[0].Name)
		assert.Equal(t, 4, report.Delinquents[0].UnpaidMonths)
		assert.True(t, report.TotalDebt.Equal(decimal.NewFromInt(400)))
		assert.Empty(t, report.Skipped)
		customerRepo.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("defaults the threshold to one month", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)
		customerRepo.On("FindAll", ctx, mock.Anything).Return([]billing.Customer{}, nil)
		paymentRepo.On("FindSinceYear", ctx, 2024).Return([]billing.Payment{}, nil)

		service := newArrearsService(customerRepo, paymentRepo, today)
		report, err := service.Report(ctx, ArrearsRequest{})

		require.NoError(t, err)
		assert.Equal(t, 1, report.MinMonths)
	})

	t.Run("rejects an out-of-range threshold", func(t *testing.T) {
		service := newArrearsService(new(MockCustomerRepository), new(MockPaymentRepository), today)

		_, err := service.Report(ctx, ArrearsRequest{MinMonths: 6})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_THRESHOLD", domainErr.Code)
	})

	t.Run("reports skipped customers with malformed payments", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)

		customer := makeCustomer(t, "ana", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), 100)
		customerRepo.On("FindAll", ctx, mock.Anything).Return([]billing.Customer{customer}, nil)
		paymentRepo.On("FindSinceYear", ctx, 2024).Return([]billing.Payment{
			makePayment(customer.ID, "MARSO", 2024, 100),
		}, nil)

		service := newArrearsService(customerRepo, paymentRepo, today)
		report, err := service.Report(ctx, ArrearsRequest{MinMonths: 1})

		require.NoError(t, err)
		assert.Empty(t, report.Delinquents)
		require.Len(t, report.Skipped, 1)
		assert.Equal(t, customer.ID, report.Skipped[0].CustomerID)
		assert.Contains(t, report.Skipped[0].Reason, "MARSO")
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)
		customerRepo.On("FindAll", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		service := newArrearsService(customerRepo, paymentRepo, today)
		_, err := service.Report(ctx, ArrearsRequest{MinMonths: 1})

		assert.Error(t, err)
	})
}

// =============================================================================
// DashboardService
// =============================================================================

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counts and monthly income", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)

		customerRepo.On("Count", ctx).Return(int64(10), nil)
		customerRepo.On("CountByStatus", ctx, billing.CustomerStatusActive).Return(int64(7), nil)
		customerRepo.On("CountByStatus", ctx, billing.CustomerStatusSuspended).Return(int64(2), nil)
		customerRepo.On("CountByStatus", ctx, billing.CustomerStatusWithdrawn).Return(int64(1), nil)

		id := uuid.New()
		paymentRepo.On("FindByYear", ctx, 2024).Return([]billing.Payment{
			makePayment(id, "ENERO", 2024, 100),
			makePayment(id, "enero", 2024, 50),
			makePayment(id, "MARZO", 2024, 25),
			makePayment(id, "MARSO", 2024, 10), // unparseable, total only
		}, nil)

		service := NewDashboardService(customerRepo, paymentRepo, zap.NewNop())
		summary, err := service.Summary(ctx, DashboardRequest{Year: 2024})

		require.NoError(t, err)
		assert.Equal(t, int64(10), summary.TotalCustomers)
		assert.Equal(t, int64(7), summary.ActiveCustomers)
		assert.Equal(t, int64(2), summary.SuspendedCustomers)
		assert.Equal(t, int64(1), summary.WithdrawnCustomers)
		assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(185)))
		assert.Equal(t, 1, summary.UnparsedPayments)

		require.Len(t, summary.MonthlyIncome, 12)
		assert.Equal(t, "ENERO", summary.MonthlyIncome[0].Month)
		assert.True(t, summary.MonthlyIncome[0].Amount.Equal(decimal.NewFromInt(150)))
		assert.True(t, summary.MonthlyIncome[2].Amount.Equal(decimal.NewFromInt(25)))
		assert.True(t, summary.MonthlyIncome[1].Amount.IsZero())
	})

	t.Run("defaults to the current year", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)

		customerRepo.On("Count", ctx).Return(int64(0), nil)
		customerRepo.On("CountByStatus", ctx, mock.Anything).Return(int64(0), nil)
		paymentRepo.On("FindByYear", ctx, 2025).Return([]billing.Payment{}, nil)

		service := NewDashboardService(customerRepo, paymentRepo, zap.NewNop())
		service.now = func() time.Time {
			return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		}

		summary, err := service.Summary(ctx, DashboardRequest{})

		require.NoError(t, err)
		assert.Equal(t, 2025, summary.Year)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockPaymentRepository)
		customerRepo.On("Count", ctx).Return(int64(0), errors.New("connection refused"))

		service := NewDashboardService(customerRepo, paymentRepo, zap.NewNop())
		_, err := service.Summary(ctx, DashboardRequest{Year: 2024})

		assert.Error(t, err)
	})
}
