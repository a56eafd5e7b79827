package kernel

import (
	"github.com/shopspring/decimal"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via ZeroMoney, NewMoney, or MoneyFromString")

// Money is a non-negative monetary amount with exact decimal arithmetic.
// Display always uses two decimal places; internally the full precision
// of the parsed input is retained. Money is immutable; the zero value is
// invalid and must be constructed via ZeroMoney, NewMoney, or
// MoneyFromString.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a valid amount of 0.00, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected with errs.ValueIsInvalidError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal amount from free text, for example
// "10", "5.50", or "0.99". Text that does not parse as a decimal number
// fails with errs.InvalidNumericInputError instead of being silently
// absorbed into derived totals.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewInvalidNumericInputErrorWithCause("amount", s, err)
	}

	return NewMoney(amount)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used to derive a line total from a unit price and a quantity.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidError("factor")
	}

	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted to exactly two decimal places,
// e.g. "41.00". Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two amounts by numeric value, so "5.5" and "5.50"
// are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
