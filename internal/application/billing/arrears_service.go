package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vozip/billing/internal/domain/billing"
	"github.com/vozip/billing/internal/domain/shared"
	"go.uber.org/zap"
)

// ArrearsService runs arrears computation passes over the full customer base
type ArrearsService struct {
	customerRepo     billing.CustomerRepository
	paymentRepo      billing.PaymentRepository
	calculator       *billing.Calculator
	defaultMinMonths int
	logger           *zap.Logger
	now              func() time.Time
}

// NewArrearsService creates a new ArrearsService. A non-positive
// defaultMinMonths falls back to 1.
func NewArrearsService(customerRepo billing.CustomerRepository, paymentRepo billing.PaymentRepository, calculator *billing.Calculator, defaultMinMonths int, logger *zap.Logger) *ArrearsService {
	if defaultMinMonths < 1 {
		defaultMinMonths = 1
	}
	return &ArrearsService{
		customerRepo:     customerRepo,
		paymentRepo:      paymentRepo,
		calculator:       calculator,
		defaultMinMonths: defaultMinMonths,
		logger:           logger,
		now:              time.Now,
	}
}

// Report computes the arrears report for every customer owing at least
// req.MinMonths unpaid months. A zero MinMonths takes the configured default.
func (s *ArrearsService) Report(ctx context.Context, req ArrearsRequest) (*ArrearsReportResponse, error) {
	minMonths := req.MinMonths
	if minMonths == 0 {
		minMonths = s.defaultMinMonths
	}
	if minMonths < 1 || minMonths > 5 {
		return nil, shared.NewDomainError("INVALID_THRESHOLD", "Minimum unpaid months must be between 1 and 5")
	}

	filter := shared.DefaultFilter()
	filter.PageSize = 0 // the pass always covers the whole customer base

	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindSinceYear(ctx, s.calculator.Epoch().Year())
	if err != nil {
		return nil, err
	}

	byCustomer := make(map[uuid.UUID][]billing.Payment, len(customers))
	for i := range payments {
		byCustomer[payments[i].CustomerID] = append(byCustomer[payments[i].CustomerID], payments[i])
	}

	today := s.now()
	started := time.Now()
	entries, warnings := s.calculator.Compute(customers, byCustomer, today, minMonths)

	response := &ArrearsReportResponse{
		GeneratedAt: today,
		MinMonths:   minMonths,
		TotalDebt:   decimal.Zero,
		Delinquents: make([]ArrearsEntryResponse, 0, len(entries)),
		Skipped:     make([]SkippedCustomerResponse, 0, len(warnings)),
	}
	for _, entry := range entries {
		response.TotalDebt = response.TotalDebt.Add(entry.Debt)
		response.Delinquents = append(response.Delinquents, ArrearsEntryResponse{
			CustomerID:   entry.CustomerID,
			Name:         entry.Name,
			Phone:        entry.Phone,
			Location:     entry.Location,
			ServiceType:  entry.ServiceType,
			InstalledAt:  entry.InstalledAt,
			UnpaidMonths: entry.UnpaidMonths,
			Debt:         entry.Debt,
		})
	}
	for _, warning := range warnings {
		s.logger.Warn("customer skipped over malformed payment records",
			zap.String("customer_id", warning.CustomerID.String()),
			zap.String("customer", warning.Name),
			zap.Error(warning.Err),
		)
		response.Skipped = append(response.Skipped, SkippedCustomerResponse{
			CustomerID: warning.CustomerID,
			Name:       warning.Name,
			Reason:     warning.Err.Error(),
		})
	}

	s.logger.Info("arrears pass completed",
		zap.Int("customers", len(customers)),
		zap.Int("min_months", minMonths),
		zap.Int("delinquents", len(response.Delinquents)),
		zap.Int("skipped", len(response.Skipped)),
		zap.String("total_debt", response.TotalDebt.String()),
		zap.Duration("elapsed", time.Since(started)),
	)

	return response, nil
}
