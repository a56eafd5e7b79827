package product

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single purchasable entry within an order.
//
// Line follows these invariants:
//   - The name must be non-empty
//   - The unit price must be a valid, non-negative Money value
//   - The quantity must be a non-negative integer
//   - The total is a pure function of unit price and quantity
//
// Line is an immutable value object; edits re-supply all three fields and
// replace the line whole.
type Line struct { //nolint:recvcheck //using for validation
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine creates a product line with validation.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	line, err := product.NewLine("Widget", price, 3)
//	if err != nil {
//	    // Handle validation error
//	}
//	total, _ := line.Total() // 30.00
func NewLine(name string, unitPrice kernel.Money, quantity int) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
// Returns ErrLineIsNotConstructed for zero values.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Name returns the product name.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the price of a single unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns unit price × quantity, recomputed on every call.
// The result is never cached or stored independently of its inputs.
func (l Line) Total() (kernel.Money, error) {
	if err := l.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}
