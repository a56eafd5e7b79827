package order

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory function.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerInfoIncomplete signals that the customer profile does not
	// satisfy the required-field rule set for its person type. It marks a
	// draft as "not ready", not a fatal failure: the draft stays open.
	ErrCustomerInfoIncomplete = errors.New("customer info is incomplete")

	// ErrNoProductLines signals an attempt to finalize an order without a
	// single product line. Like ErrCustomerInfoIncomplete it means "not
	// ready", and the draft stays open.
	ErrNoProductLines = errors.New("order must contain at least one product line")
)

// Order is the aggregate root of the order-management domain: a customer
// profile plus an ordered collection of product lines.
//
// Order follows these invariants:
//   - The identifier is valid and immutable once assigned
//   - The creation date is stamped once and never changes on edits
//   - The customer profile is complete for its person type
//   - At least one product line is present
//   - The grand total is the sum of the line totals, always derived
//   - Can only be created through NewOrder or RestoreOrder
//
// An Order owns its lines and its profile exclusively; both are copied in
// on construction and copied out on access.
type Order struct {
	id       kernel.OrderID
	customer customer.Profile
	date     time.Time
	lines    []product.Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a finalized Order with validation. This is the only
// way (besides RestoreOrder) to obtain a valid Order; drafts call it from
// Finalize.
//
// Returns ErrCustomerInfoIncomplete or ErrNoProductLines when the input
// is not ready, and validation errors for invalid id, date, or lines.
func NewOrder(
	id kernel.OrderID,
	profile customer.Profile,
	date time.Time,
	lines []product.Line,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}
	if !profile.IsComplete() {
		return nil, ErrCustomerInfoIncomplete
	}
	if len(lines) == 0 {
		return nil, ErrNoProductLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	owned := make([]product.Line, len(lines))
	copy(owned, lines)

	return &Order{
		id:            id,
		customer:      profile.Clone(),
		date:          date,
		lines:         owned,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence. It applies the
// same invariants as NewOrder; persisted data that no longer satisfies
// them is rejected rather than silently accepted.
func RestoreOrder(
	id kernel.OrderID,
	profile customer.Profile,
	date time.Time,
	lines []product.Line,
) (*Order, error) {
	return NewOrder(id, profile, date, lines)
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's immutable identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns a copy of the customer profile.
func (o *Order) Customer() customer.Profile {
	return o.customer.Clone()
}

// Date returns the creation date stamped when the order was first
// committed. Edits preserve it unchanged.
func (o *Order) Date() time.Time {
	return o.date
}

// Lines returns a copy of the ordered product lines.
func (o *Order) Lines() []product.Line {
	lines := make([]product.Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the grand total: the sum of all line totals, recomputed
// on every call.
func (o *Order) Total() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		lineTotal, err := line.Total()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// Summary is the reduced flat view of an order for callers that only
// need listing data. The canonical shape remains the full Order with its
// customer profile; Summary is derived from it, never stored.
type Summary struct {
	ID      kernel.OrderID
	Name    string
	Address string
	Date    time.Time
	Total   kernel.Money
}

// Summary projects the order into its reduced view.
func (o *Order) Summary() (Summary, error) {
	total, err := o.Total()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		ID:      o.id,
		Name:    o.customer.Get(customer.FieldName),
		Address: o.customer.Get(customer.FieldAddress),
		Date:    o.date,
		Total:   total,
	}, nil
}
