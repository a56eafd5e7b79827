// Package queries contains read-only operations over the order collection.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database or the repository and never modify state.
package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery retrieves the order listing, optionally narrowed by a
// case-insensitive substring filter over identifier and customer name.
// An empty filter returns the whole collection. Results are newest first;
// an edited order keeps its original position.
//
// Example:
//
//	query := NewSearchOrdersQuery("ord-00")
//	handler := NewSearchOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to search orders: %w", err)
//	}
type SearchOrdersQuery struct {
	filter string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a query for the order listing. The filter
// may be empty; it is matched as a substring, case-insensitively.
func NewSearchOrdersQuery(filter string) SearchOrdersQuery {
	return SearchOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchOrdersQueryIsNotConstructed if validation fails.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Filter returns the raw search text.
func (q SearchOrdersQuery) Filter() string {
	return q.filter
}

// SearchOrdersQueryResponse is one row of the order listing: the reduced
// view used by the collection screen, not the full aggregate.
type SearchOrdersQueryResponse struct {
	ID      string
	Name    string
	Address string
	Date    time.Time
	Total   string
}
