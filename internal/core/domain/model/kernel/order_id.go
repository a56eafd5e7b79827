package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

const (
	// orderIDPrefix is the fixed prefix of every order identifier.
	orderIDPrefix = "ORD"

	// orderIDCounterWidth is the minimum zero-padded width of the counter.
	// Counters beyond 999 simply widen; there is no upper bound.
	orderIDCounterWidth = 3
)

// ErrOrderIDIsNotConstructed is returned when an OrderID was not created
// through InitialOrderID, ParseOrderID, or Next.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via InitialOrderID, ParseOrderID, or Next")

// OrderID is the sequential, human-readable identifier assigned to orders.
// Its string form is "ORD-NNN" with a zero-padded counter of at least
// three digits. OrderID is an immutable value object; the zero value is
// invalid and fails validation.
//
// Identity assignment is a pure function of the most recently issued
// identifier: the caller looks up the last issued OrderID (or uses
// InitialOrderID when none exists) and calls Next. There is no hidden
// shared counter.
//
// Example:
//
//	last, _ := kernel.ParseOrderID("ORD-099")
//	next, _ := last.Next()
//	fmt.Println(next) // Output: ORD-100
type OrderID struct {
	counter int
	guard   guard.ConstructorGuard
}

// InitialOrderID returns the sentinel identifier "ORD-000" used as the
// predecessor of the first real order. It is never assigned to an order
// itself: the first committed order receives InitialOrderID().Next(),
// which is "ORD-001".
func InitialOrderID() OrderID {
	return OrderID{counter: 0, guard: guard.NewConstructorGuard()}
}

// ParseOrderID parses an identifier in "ORD-NNN" form.
//
// Returns errs.ValueIsInvalidError when the prefix is missing or wrong,
// and errs.InvalidNumericInputError when the counter part is not a
// non-negative decimal number. Malformed counters are rejected outright
// rather than producing an undefined successor.
func ParseOrderID(s string) (OrderID, error) {
	prefix, counterText, found := strings.Cut(s, "-")
	if !found || prefix != orderIDPrefix {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%q does not match the %s-NNN format", s, orderIDPrefix),
		)
	}

	counter, err := strconv.Atoi(counterText)
	if err != nil {
		return OrderID{}, errs.NewInvalidNumericInputErrorWithCause("order id counter", counterText, err)
	}
	if counter < 0 {
		return OrderID{}, errs.NewValueIsInvalidError("order id counter")
	}

	return OrderID{counter: counter, guard: guard.NewConstructorGuard()}, nil
}

// OrderIDFromCounter rebuilds an identifier from its stored numeric
// counter. Persistence adapters use it to restore identifiers without
// round-tripping through the string form.
func OrderIDFromCounter(counter int) (OrderID, error) {
	if counter < 0 {
		return OrderID{}, errs.NewValueIsInvalidError("order id counter")
	}

	return OrderID{counter: counter, guard: guard.NewConstructorGuard()}, nil
}

// Next returns the successor identifier: the counter incremented by one,
// re-padded to at least three digits. Pure function, no side effects.
func (id OrderID) Next() (OrderID, error) {
	if err := id.Validate(); err != nil {
		return OrderID{}, err
	}

	return OrderID{counter: id.counter + 1, guard: guard.NewConstructorGuard()}, nil
}

// String returns the canonical "ORD-NNN" representation.
// Implements fmt.Stringer.
func (id OrderID) String() string {
	return fmt.Sprintf("%s-%0*d", orderIDPrefix, orderIDCounterWidth, id.counter)
}

// Counter returns the numeric suffix of the identifier.
func (id OrderID) Counter() int {
	return id.counter
}

// IsEqual compares two identifiers by their counters.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.counter == other.counter
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for zero values.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}
