package order

import (
	"errors"
	"strconv"
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/product"
	"orderdesk/internal/pkg/errs"
)

// ErrDraftIsNotConstructed is returned when a Draft instance was not
// created through NewDraft or NewDraftFromOrder.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft or NewDraftFromOrder")

// lineInput is the edit buffer for one product line: the three raw text
// fields as the operator typed them.
type lineInput struct {
	name     string
	price    string
	quantity string
}

func (in lineInput) isBlank() bool {
	return in.name == "" || in.price == "" || in.quantity == ""
}

// Draft is an in-progress, uncommitted order. It carries the customer
// profile and line list under entry, the current entry step, and the
// line-edit buffer.
//
// A fresh draft starts at StepCustomer with everything empty. A draft for
// editing an existing order starts directly at StepLines, pre-populated
// from the order, and keeps the order's identifier and date: those are
// stamped once at first commit and never change.
//
// Cancelling a draft is simply dropping it; a Draft never mutates the
// order collection itself.
type Draft struct {
	existingID   *kernel.OrderID
	existingDate time.Time

	customer customer.Profile
	lines    []product.Line
	step     Step

	input      lineInput
	editTarget *int

	isConstructed bool
}

// NewDraft starts a draft for a brand-new order.
func NewDraft() *Draft {
	return &Draft{
		customer:      customer.NewProfile(),
		step:          StepCustomer,
		isConstructed: true,
	}
}

// NewDraftFromOrder starts a draft editing an existing order. The draft
// initializes directly into the product-lines step, pre-populated from
// the order: the customer data was already valid when the order was
// saved, so it is not re-entered (only revisited on demand).
func NewDraftFromOrder(existing *Order) (*Draft, error) {
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	id := existing.ID()
	return &Draft{
		existingID:    &id,
		existingDate:  existing.Date(),
		customer:      existing.Customer(),
		lines:         existing.Lines(),
		step:          StepLines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Draft was created through a constructor.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}

	return nil
}

// IsNew reports whether the draft creates a new order (true) or edits an
// existing one (false).
func (d *Draft) IsNew() bool {
	return d.existingID == nil
}

// ExistingID returns the identifier of the order being edited.
// The second result is false for new-order drafts.
func (d *Draft) ExistingID() (kernel.OrderID, bool) {
	if d.existingID == nil {
		return kernel.OrderID{}, false
	}
	return *d.existingID, true
}

// Step returns the current entry step.
func (d *Draft) Step() Step {
	return d.step
}

// Customer returns a copy of the profile under entry.
func (d *Draft) Customer() customer.Profile {
	return d.customer.Clone()
}

// SetCustomerField stores one customer field value. Allowed at any step:
// going back to the customer step never loses data, and field edits are
// re-validated by IsCustomerComplete after every change.
func (d *Draft) SetCustomerField(field customer.Field, value string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	return d.customer.Set(field, value)
}

// SetCustomerFields stores a batch of customer field values. The batch is
// applied atomically: when any value is rejected the profile keeps its
// previous state, no matter in which order the map was walked.
func (d *Draft) SetCustomerFields(values map[customer.Field]string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	updated := d.customer.Clone()
	for field, value := range values {
		if err := updated.Set(field, value); err != nil {
			return err
		}
	}

	d.customer = updated
	return nil
}

// IsCustomerComplete re-evaluates the validation rule set against the
// current profile. Presentation layers call this after every field change
// to gate progression; AdvanceStep and Finalize apply the same rule as
// the authoritative gate.
func (d *Draft) IsCustomerComplete() bool {
	return d.customer.IsComplete()
}

// AdvanceStep moves from customer entry to line entry. The transition is
// gated by customer completeness: an incomplete profile leaves the draft
// unchanged and returns ErrCustomerInfoIncomplete. Advancing while
// already at the lines step is a no-op.
func (d *Draft) AdvanceStep() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.step == StepLines {
		return nil
	}
	if !d.customer.IsComplete() {
		return ErrCustomerInfoIncomplete
	}

	d.step = StepLines
	return nil
}

// ReturnToCustomerStep moves back to customer entry. Always permitted;
// all entered data, including the line list and edit buffer, is
// preserved.
func (d *Draft) ReturnToCustomerStep() error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.step = StepCustomer
	return nil
}

// Lines returns a copy of the product lines entered so far.
func (d *Draft) Lines() []product.Line {
	lines := make([]product.Line, len(d.lines))
	copy(lines, d.lines)
	return lines
}

// LineInput returns the current content of the line-edit buffer.
func (d *Draft) LineInput() (name, price, quantity string) {
	return d.input.name, d.input.price, d.input.quantity
}

// EditTarget returns the index of the line currently being edited.
// The second result is false when no edit is in progress.
func (d *Draft) EditTarget() (int, bool) {
	if d.editTarget == nil {
		return 0, false
	}
	return *d.editTarget, true
}

// AddOrUpdateLine commits the three raw input fields as a product line.
// With an edit target set it replaces the targeted line in place,
// otherwise it appends a new line. On success the buffer and target are
// cleared.
//
// If any of the three inputs is blank the call is a silent no-op, as in
// the original entry form. Non-numeric price or quantity text fails with
// errs.InvalidNumericInputError instead of being absorbed into the
// totals.
func (d *Draft) AddOrUpdateLine(name, priceText, quantityText string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	in := lineInput{name: name, price: priceText, quantity: quantityText}
	if in.isBlank() {
		return nil
	}

	unitPrice, err := kernel.MoneyFromString(priceText)
	if err != nil {
		return err
	}

	quantity, err := strconv.Atoi(quantityText)
	if err != nil {
		return errs.NewInvalidNumericInputErrorWithCause("quantity", quantityText, err)
	}

	line, err := product.NewLine(name, unitPrice, quantity)
	if err != nil {
		return err
	}

	if d.editTarget != nil {
		d.lines[*d.editTarget] = line
	} else {
		d.lines = append(d.lines, line)
	}

	d.clearLineInput()
	return nil
}

// StartLineEdit loads the line at index into the edit buffer and marks it
// as the target for the next AddOrUpdateLine. An out-of-range index is a
// defensive no-op.
func (d *Draft) StartLineEdit(index int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if index < 0 || index >= len(d.lines) {
		return nil
	}

	line := d.lines[index]
	d.input = lineInput{
		name:     line.Name(),
		price:    line.UnitPrice().String(),
		quantity: strconv.Itoa(line.Quantity()),
	}
	target := index
	d.editTarget = &target
	return nil
}

// RemoveLine deletes the line at index. An out-of-range index is a
// defensive no-op. When the removed line was the current edit target the
// buffer and target are cleared as well, so a later AddOrUpdateLine
// appends instead of replacing a line that no longer exists. A target
// behind the removed index is shifted down to keep pointing at the same
// line.
func (d *Draft) RemoveLine(index int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if index < 0 || index >= len(d.lines) {
		return nil
	}

	d.lines = append(d.lines[:index], d.lines[index+1:]...)

	if d.editTarget != nil {
		switch {
		case *d.editTarget == index:
			d.clearLineInput()
		case *d.editTarget > index:
			*d.editTarget--
		}
	}
	return nil
}

// Total returns the running grand total over the lines entered so far.
func (d *Draft) Total() (kernel.Money, error) {
	if err := d.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := kernel.ZeroMoney()
	for _, line := range d.lines {
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

// Finalize turns the draft into an immutable Order. It requires a
// complete customer profile and at least one product line; otherwise it
// returns ErrCustomerInfoIncomplete or ErrNoProductLines and the draft
// stays open, unchanged.
//
// For a new-order draft the given identifier and date are stamped onto
// the order. For an edit draft both arguments are ignored: the stored
// identifier and date of the order being edited take precedence and are
// preserved unchanged.
func (d *Draft) Finalize(newID kernel.OrderID, date time.Time) (*Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	id := newID
	stamp := date
	if d.existingID != nil {
		id = *d.existingID
		stamp = d.existingDate
	}

	return NewOrder(id, d.customer, stamp, d.lines)
}

func (d *Draft) clearLineInput() {
	d.input = lineInput{}
	d.editTarget = nil
}
