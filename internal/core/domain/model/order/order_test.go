package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, s string) kernel.OrderID {
	t.Helper()
	id, err := kernel.ParseOrderID(s)
	require.NoError(t, err)
	return id
}

func mustLine(t *testing.T, name, price string, quantity int) product.Line {
	t.Helper()
	unitPrice, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	line, err := product.NewLine(name, unitPrice, quantity)
	require.NoError(t, err)
	return line
}

func completeProfile(t *testing.T) customer.Profile {
	t.Helper()

	profile := customer.NewProfile()
	values := map[customer.Field]string{
		customer.FieldPersonType:   "fisica",
		customer.FieldName:         "Maria Silva",
		customer.FieldTelephone:    "+55 11 99999-0000",
		customer.FieldZipCode:      "01310-100",
		customer.FieldAddress:      "Avenida Paulista",
		customer.FieldNumber:       "1000",
		customer.FieldState:        "SP",
		customer.FieldCity:         "Sao Paulo",
		customer.FieldNeighborhood: "Bela Vista",
		customer.FieldEmail:        "maria@example.com",
		customer.FieldCPF:          "123.456.789-09",
		customer.FieldGovernmentID: "MG-12.345.678",
		customer.FieldDateOfBirth:  "1990-04-01",
		customer.FieldGender:       "female",
	}
	for field, value := range values {
		require.NoError(t, profile.Set(field, value))
	}
	return profile
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2025-03-14")
	require.NoError(t, err)
	return date
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_valid_order", func(t *testing.T) {
		lines := []product.Line{
			mustLine(t, "Widget", "10.00", 3),
			mustLine(t, "Gadget", "5.50", 2),
		}

		o, err := order.NewOrder(mustOrderID(t, "ORD-001"), completeProfile(t), testDate(t), lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD-001", o.ID().String())
		assert.Equal(t, testDate(t), o.Date())
		assert.Len(t, o.Lines(), 2)

		total, err := o.Total()
		require.NoError(t, err)
		assert.Equal(t, "41.00", total.String())
	})

	t.Run("rejects_incomplete_customer_info", func(t *testing.T) {
		profile := completeProfile(t)
		require.NoError(t, profile.Set(customer.FieldEmail, ""))

		_, err := order.NewOrder(
			mustOrderID(t, "ORD-001"), profile, testDate(t),
			[]product.Line{mustLine(t, "Widget", "10.00", 1)},
		)

		require.ErrorIs(t, err, order.ErrCustomerInfoIncomplete)
	})

	t.Run("rejects_empty_line_list", func(t *testing.T) {
		_, err := order.NewOrder(mustOrderID(t, "ORD-001"), completeProfile(t), testDate(t), nil)

		require.ErrorIs(t, err, order.ErrNoProductLines)
	})

	t.Run("rejects_unconstructed_id", func(t *testing.T) {
		var id kernel.OrderID

		_, err := order.NewOrder(id, completeProfile(t), testDate(t),
			[]product.Line{mustLine(t, "Widget", "10.00", 1)})

		require.Error(t, err)
	})

	t.Run("rejects_zero_date", func(t *testing.T) {
		_, err := order.NewOrder(mustOrderID(t, "ORD-001"), completeProfile(t), time.Time{},
			[]product.Line{mustLine(t, "Widget", "10.00", 1)})

		require.Error(t, err)
	})

	t.Run("owns_its_lines_exclusively", func(t *testing.T) {
		lines := []product.Line{mustLine(t, "Widget", "10.00", 3)}

		o, err := order.NewOrder(mustOrderID(t, "ORD-001"), completeProfile(t), testDate(t), lines)
		require.NoError(t, err)

		// Mutating the caller's slice must not leak into the order.
		lines[0] = mustLine(t, "Gadget", "99.00", 9)

		assert.Equal(t, "Widget", o.Lines()[0].Name())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil_order_fails", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})

	t.Run("zero_value_order_fails", func(t *testing.T) {
		o := &order.Order{}
		err := o.Validate()
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	lines := []product.Line{mustLine(t, "Widget", "10.00", 1)}

	a, err := order.NewOrder(mustOrderID(t, "ORD-001"), completeProfile(t), testDate(t), lines)
	require.NoError(t, err)
	b, err := order.NewOrder(mustOrderID(t, "ORD-001"), completeProfile(t), testDate(t), lines)
	require.NoError(t, err)
	c, err := order.NewOrder(mustOrderID(t, "ORD-002"), completeProfile(t), testDate(t), lines)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_Summary(t *testing.T) {
	lines := []product.Line{
		mustLine(t, "Widget", "10.00", 3),
		mustLine(t, "Gadget", "5.50", 2),
	}

	o, err := order.NewOrder(mustOrderID(t, "ORD-007"), completeProfile(t), testDate(t), lines)
	require.NoError(t, err)

	summary, err := o.Summary()
	require.NoError(t, err)

	assert.Equal(t, "ORD-007", summary.ID.String())
	assert.Equal(t, "Maria Silva", summary.Name)
	assert.Equal(t, "Avenida Paulista", summary.Address)
	assert.Equal(t, testDate(t), summary.Date)
	assert.Equal(t, "41.00", summary.Total.String())
}
