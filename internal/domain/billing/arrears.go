package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultEpoch is the earliest date arrears are ever computed for. Debt from
// before the ledger was migrated is settled out of band.
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ArrearsEntry is one delinquent customer in a computation pass. Entries are
// produced fresh on every pass and never persisted.
type ArrearsEntry struct {
	CustomerID   uuid.UUID
	Name         string
	Phone        string
	Location     string
	ServiceType  string
	InstalledAt  time.Time
	UnpaidMonths int
	Debt         decimal.Decimal
}

// Warning reports a customer skipped during a pass because of malformed
// payment data. One customer's bad records never abort the batch.
type Warning struct {
	CustomerID uuid.UUID
	Name       string
	Err        error
}

// Calculator reconciles expected billing periods against paid ones. It is a
// pure domain service: it reads a snapshot, holds no state between calls, and
// two calls with identical inputs and the same reference date produce
// identical output.
type Calculator struct {
	epoch time.Time
}

// NewCalculator creates a calculator with the given epoch floor. A zero
// epoch falls back to DefaultEpoch.
func NewCalculator(epoch time.Time) *Calculator {
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	return &Calculator{epoch: epoch}
}

// Epoch returns the calculator's epoch floor
func (c *Calculator) Epoch() time.Time {
	return c.epoch
}

// Compute returns every billable customer with at least minMonths unpaid
// billing periods as of today, in input customer order, together with
// warnings for customers skipped over malformed payments.
//
// A month is unpaid when it lies between the customer's anchor period (most
// recent paid period, or installation floored at the epoch) and today, has no
// matching payment, and its cut-off day has already passed.
func (c *Calculator) Compute(customers []Customer, paymentsByCustomer map[uuid.UUID][]Payment, today time.Time, minMonths int) ([]ArrearsEntry, []Warning) {
	if minMonths < 1 {
		minMonths = 1
	}

	var entries []ArrearsEntry
	var warnings []Warning

	for i := range customers {
		customer := &customers[i]
		if !customer.IsBillable() {
			continue
		}

		unpaid, err := c.unpaidPeriods(customer, paymentsByCustomer[customer.ID], today)
		if err != nil {
			warnings = append(warnings, Warning{
				CustomerID: customer.ID,
				Name:       customer.Name,
				Err:        err,
			})
			continue
		}

		if len(unpaid) < minMonths {
			continue
		}

		entries = append(entries, ArrearsEntry{
			CustomerID:   customer.ID,
			Name:         customer.Name,
			Phone:        customer.Phone,
			Location:     customer.Location,
			ServiceType:  customer.ServiceType,
			InstalledAt:  customer.InstalledAt,
			UnpaidMonths: len(unpaid),
			Debt:         customer.Tariff.Mul(decimal.NewFromInt(int64(len(unpaid)))),
		})
	}

	return entries, warnings
}

// unpaidPeriods resolves the customer's unpaid (year, month) pairs as of
// today. A single unparseable payment disqualifies the whole customer for
// this pass; see the policy note in DESIGN.md.
func (c *Calculator) unpaidPeriods(customer *Customer, payments []Payment, today time.Time) ([]Period, error) {
	paid, err := paidPeriods(payments, PeriodOf(c.epoch))
	if err != nil {
		return nil, err
	}

	anchor := c.anchorPeriod(customer, paid)
	current := PeriodOf(today)

	var unpaid []Period
	for _, period := range PeriodsBetween(anchor, current) {
		if _, ok := paid[period]; ok {
			continue
		}
		// The running month only counts once its cut-off day has passed.
		// The cut-off day clamps into short months: a day-31 contract falls
		// due on Feb 29 in a leap year.
		if period == current && today.Day() < current.ClampDay(customer.CutoffDay()) {
			continue
		}
		unpaid = append(unpaid, period)
	}
	return unpaid, nil
}

// anchorPeriod is the first period expected to be settled: the most recent
// paid period when history exists, otherwise the installation period floored
// at the epoch.
func (c *Calculator) anchorPeriod(customer *Customer, paid map[Period]struct{}) Period {
	var latest Period
	for period := range paid {
		if period.After(latest) {
			latest = period
		}
	}
	if latest != (Period{}) {
		return latest
	}

	installed := PeriodOf(customer.InstalledAt)
	epoch := PeriodOf(c.epoch)
	if installed.Before(epoch) {
		return epoch
	}
	return installed
}

// paidPeriods builds the set of settled periods, strictly parsing every
// month name. Periods before the epoch are dropped: pre-migration history
// neither anchors nor settles anything.
func paidPeriods(payments []Payment, epoch Period) (map[Period]struct{}, error) {
	paid := make(map[Period]struct{}, len(payments))
	for i := range payments {
		period, err := payments[i].BillingPeriod()
		if err != nil {
			return nil, fmt.Errorf("payment %s: %w", payments[i].ID, err)
		}
		if period.Before(epoch) {
			continue
		}
		paid[period] = struct{}{}
	}
	return paid, nil
}
