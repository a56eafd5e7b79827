package queries

import (
	"context"

	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
)

// ExportOrderQueryHandler loads an order aggregate and projects it into
// its printable document. Unlike the listing query it needs the full
// aggregate with all lines, so it reads through the repository instead of
// raw SQL.
type ExportOrderQueryHandler struct {
	orders    ports.OrderRepository
	formatter services.ExportFormatter
}

// NewExportOrderQueryHandler creates a handler for order export queries.
func NewExportOrderQueryHandler(orders ports.OrderRepository) ExportOrderQueryHandler {
	return ExportOrderQueryHandler{
		orders:    orders,
		formatter: services.NewExportFormatter(),
	}
}

// Handle loads the order and builds its export document.
// Returns errs.ObjectNotFoundError when the identifier is unknown.
func (h ExportOrderQueryHandler) Handle(
	ctx context.Context,
	query ExportOrderQuery,
) (services.Document, error) {
	if err := query.Validate(); err != nil {
		return services.Document{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return services.Document{}, err
	}

	return h.formatter.Format(aggregate, query.ExportedAt())
}
