package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler reads the order listing from the database.
// The filter is applied in SQL so the handler never materializes rows it
// will not return.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle executes the search. Matching is a case-insensitive substring
// test against the identifier and the customer name; an empty filter
// matches everything. Results are sorted newest first by insertion order.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := strings.ToLower(query.Filter())
	orders := make([]SearchOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			date,
			total
		FROM orders
		WHERE ? = ''
			OR instr(lower(id), ?) > 0
			OR instr(lower(name), ?) > 0
		ORDER BY seq DESC
	`, filter, filter, filter).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp SearchOrdersQueryResponse

		err = rows.Scan(
			&orderResp.ID,
			&orderResp.Name,
			&orderResp.Address,
			&orderResp.Date,
			&orderResp.Total,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
