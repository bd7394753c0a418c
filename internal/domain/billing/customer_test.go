package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	installed := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates active customer", func(t *testing.T) {
		customer, err := NewCustomer("Maria Perez", installed, decimal.NewFromInt(25))

		require.NoError(t, err)
		assert.Equal(t, "maria perez", customer.Name)
		assert.Equal(t, CustomerStatusActive, customer.Status)
		assert.Equal(t, 10, customer.CutoffDay())
		assert.True(t, customer.IsBillable())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer("  ", installed, decimal.NewFromInt(25))
		assert.Error(t, err)
	})

	t.Run("fails with zero installation date", func(t *testing.T) {
		_, err := NewCustomer("maria", time.Time{}, decimal.NewFromInt(25))
		assert.Error(t, err)
	})

	t.Run("fails with negative tariff", func(t *testing.T) {
		_, err := NewCustomer("maria", installed, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("allows zero tariff", func(t *testing.T) {
		customer, err := NewCustomer("maria", installed, decimal.Zero)
		require.NoError(t, err)
		assert.False(t, customer.IsBillable())
	})
}

func TestCustomer_StatusTransitions(t *testing.T) {
	installed := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	t.Run("suspend zeroes the tariff", func(t *testing.T) {
		customer, _ := NewCustomer("jose", installed, decimal.NewFromInt(30))

		require.NoError(t, customer.Suspend())
		assert.Equal(t, CustomerStatusSuspended, customer.Status)
		assert.True(t, customer.Tariff.IsZero())
		assert.False(t, customer.IsBillable())

		assert.Error(t, customer.Suspend())
	})

	t.Run("withdraw zeroes the tariff", func(t *testing.T) {
		customer, _ := NewCustomer("ana", installed, decimal.NewFromInt(30))

		require.NoError(t, customer.Withdraw())
		assert.Equal(t, CustomerStatusWithdrawn, customer.Status)
		assert.True(t, customer.Tariff.IsZero())
	})

	t.Run("reactivate requires positive tariff", func(t *testing.T) {
		customer, _ := NewCustomer("luis", installed, decimal.NewFromInt(30))
		require.NoError(t, customer.Suspend())

		assert.Error(t, customer.Reactivate(decimal.Zero))
		require.NoError(t, customer.Reactivate(decimal.NewFromInt(45)))
		assert.True(t, customer.IsBillable())
	})
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(CustomerStatusActive))
	assert.True(t, ValidStatus(CustomerStatusSuspended))
	assert.True(t, ValidStatus(CustomerStatusWithdrawn))
	assert.False(t, ValidStatus(CustomerStatus("retired")))
}
