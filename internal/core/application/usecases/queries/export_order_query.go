package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrExportOrderQueryIsNotConstructed = errors.New(
		"ExportOrderQuery must be created via NewExportOrderQuery constructor",
	)
	ErrExportedAtIsRequired = errors.New("exportedAt is required")
)

// ExportOrderQuery retrieves the printable export document of one order.
// The export timestamp becomes the document's "Data do Pedido" header, so
// re-exporting the same order on a later day yields a different document.
type ExportOrderQuery struct {
	orderID    kernel.OrderID
	exportedAt time.Time

	guard guard.ConstructorGuard
}

// NewExportOrderQuery creates a query to export the order with the given
// identifier, stamped with the given export time.
func NewExportOrderQuery(orderID kernel.OrderID, exportedAt time.Time) (ExportOrderQuery, error) {
	exportQuery := ExportOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		exportQuery.setOrderID(orderID),
		exportQuery.setExportedAt(exportedAt),
	); err != nil {
		return ExportOrderQuery{}, err
	}

	return exportQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrExportOrderQueryIsNotConstructed if validation fails.
func (q ExportOrderQuery) Validate() error {
	return q.guard.Validate(ErrExportOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to export.
func (q ExportOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// ExportedAt returns the export timestamp.
func (q ExportOrderQuery) ExportedAt() time.Time {
	return q.exportedAt
}

func (q *ExportOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *ExportOrderQuery) setExportedAt(exportedAt time.Time) error {
	if exportedAt.IsZero() {
		return ErrExportedAtIsRequired
	}

	q.exportedAt = exportedAt
	return nil
}
