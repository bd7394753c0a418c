package billing

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in the billing ledger. Payment records carry
// Spanish month names, so the closed enumeration uses those names.
type Month int

const (
	Enero Month = iota + 1
	Febrero
	Marzo
	Abril
	Mayo
	Junio
	Julio
	Agosto
	Septiembre
	Octubre
	Noviembre
	Diciembre
)

var monthNames = [...]string{
	"ENERO",
	"FEBRERO",
	"MARZO",
	"ABRIL",
	"MAYO",
	"JUNIO",
	"JULIO",
	"AGOSTO",
	"SEPTIEMBRE",
	"OCTUBRE",
	"NOVIEMBRE",
	"DICIEMBRE",
}

var monthsByName = func() map[string]Month {
	m := make(map[string]Month, len(monthNames))
	for i, name := range monthNames {
		m[name] = Month(i + 1)
	}
	return m
}()

// UnknownMonthError reports a payment month name outside the closed
// ENERO..DICIEMBRE enumeration.
type UnknownMonthError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownMonthError) Error() string {
	return fmt.Sprintf("unrecognized billing month %q", e.Name)
}

// ParseMonth parses a free-text month name into a Month. Matching is
// case-insensitive and ignores surrounding whitespace; anything else is an
// UnknownMonthError, never a silent fallback.
func ParseMonth(name string) (Month, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if m, ok := monthsByName[normalized]; ok {
		return m, nil
	}
	return 0, &UnknownMonthError{Name: name}
}

// MonthOf converts a time.Month into a billing Month
func MonthOf(m time.Month) Month {
	return Month(m)
}

// IsValid returns true if the month is within the enumeration
func (m Month) IsValid() bool {
	return m >= Enero && m <= Diciembre
}

// String returns the canonical uppercase Spanish name
func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("MES(%d)", int(m))
	}
	return monthNames[m-1]
}

// Months returns the twelve months in calendar order
func Months() []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = Month(i + 1)
	}
	return months
}
