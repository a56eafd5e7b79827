package kernel_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroMoney(t *testing.T) {
	zero := kernel.ZeroMoney()

	require.NoError(t, zero.Validate())
	assert.Equal(t, "0.00", zero.String())
}

func TestNewMoney(t *testing.T) {
	t.Run("accepts_non_negative_amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.5"))

		require.NoError(t, err)
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses_decimal_text", func(t *testing.T) {
		m, err := kernel.MoneyFromString("5.50")

		require.NoError(t, err)
		assert.Equal(t, "5.50", m.String())
	})

	t.Run("parses_integer_text", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10")

		require.NoError(t, err)
		assert.Equal(t, "10.00", m.String())
	})

	t.Run("rejects_non_numeric_text", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidNumericInput)
	})

	t.Run("rejects_negative_text", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-3")

		require.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("sums_amounts", func(t *testing.T) {
		a, err := kernel.MoneyFromString("30.00")
		require.NoError(t, err)
		b, err := kernel.MoneyFromString("11")
		require.NoError(t, err)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "41.00", sum.String())
	})

	t.Run("zero_value_operand_fails", func(t *testing.T) {
		var zero kernel.Money
		a := kernel.ZeroMoney()

		_, err := a.Add(zero)
		require.Error(t, err)
	})
}

func TestMoney_MulInt(t *testing.T) {
	t.Run("multiplies_by_quantity", func(t *testing.T) {
		price, err := kernel.MoneyFromString("5.50")
		require.NoError(t, err)

		total, err := price.MulInt(2)
		require.NoError(t, err)
		assert.Equal(t, "11.00", total.String())
	})

	t.Run("zero_factor_yields_zero", func(t *testing.T) {
		price, err := kernel.MoneyFromString("9.99")
		require.NoError(t, err)

		total, err := price.MulInt(0)
		require.NoError(t, err)
		assert.True(t, total.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("negative_factor_fails", func(t *testing.T) {
		price, err := kernel.MoneyFromString("1")
		require.NoError(t, err)

		_, err = price.MulInt(-1)
		require.Error(t, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, err := kernel.MoneyFromString("5.5")
	require.NoError(t, err)
	b, err := kernel.MoneyFromString("5.50")
	require.NoError(t, err)
	c, err := kernel.MoneyFromString("5.51")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
