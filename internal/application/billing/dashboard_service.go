package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vozip/billing/internal/domain/billing"
	"go.uber.org/zap"
)

// DashboardService aggregates customer counts and collected income
type DashboardService struct {
	customerRepo billing.CustomerRepository
	paymentRepo  billing.PaymentRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(customerRepo billing.CustomerRepository, paymentRepo billing.PaymentRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Summary builds the operational summary for the requested year. A zero year
// defaults to the current one. Payments with an unrecognized month name still
// count toward total income but not toward any monthly bucket.
func (s *DashboardService) Summary(ctx context.Context, req DashboardRequest) (*DashboardSummaryResponse, error) {
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	total, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.customerRepo.CountByStatus(ctx, billing.CustomerStatusActive)
	if err != nil {
		return nil, err
	}
	suspended, err := s.customerRepo.CountByStatus(ctx, billing.CustomerStatusSuspended)
	if err != nil {
		return nil, err
	}
	withdrawn, err := s.customerRepo.CountByStatus(ctx, billing.CustomerStatusWithdrawn)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[billing.Month]decimal.Decimal, 12)
	totalIncome := decimal.Zero
	unparsed := 0
	for i := range payments {
		totalIncome = totalIncome.Add(payments[i].Amount)

		period, err := payments[i].BillingPeriod()
		if err != nil {
			unparsed++
			s.logger.Warn("payment has unrecognized billing month",
				zap.String("payment_id", payments[i].ID.String()),
				zap.String("billing_month", payments[i].BillingMonth),
			)
			continue
		}
		byMonth[period.Month] = byMonth[period.Month].Add(payments[i].Amount)
	}

	monthly := make([]MonthlyIncomeResponse, 0, 12)
	for _, month := range billing.Months() {
		monthly = append(monthly, MonthlyIncomeResponse{
			Month:  month.String(),
			Amount: byMonth[month],
		})
	}

	return &DashboardSummaryResponse{
		Year:               year,
		TotalCustomers:     total,
		ActiveCustomers:    active,
		SuspendedCustomers: suspended,
		WithdrawnCustomers: withdrawn,
		TotalIncome:        totalIncome,
		MonthlyIncome:      monthly,
		UnparsedPayments:   unparsed,
	}, nil
}
