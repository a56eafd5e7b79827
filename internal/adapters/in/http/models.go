package http

import (
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON error payload of every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineModel is one product line in draft and order payloads. Unit price
// and totals are decimal strings with two fraction digits.
type LineModel struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

// LineInputModel mirrors the raw line-entry buffer: the three fields as
// typed, before any numeric parsing.
type LineInputModel struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// DraftResponse is the full state of a draft session, enough for a client
// to render the entry form without further calls.
type DraftResponse struct {
	ID               string            `json:"id"`
	Step             string            `json:"step"`
	IsNew            bool              `json:"isNew"`
	EditingOrderID   string            `json:"editingOrderId,omitempty"`
	Customer         map[string]string `json:"customer"`
	CustomerComplete bool              `json:"customerComplete"`
	Lines            []LineModel       `json:"lines"`
	LineInput        LineInputModel    `json:"lineInput"`
	EditIndex        *int              `json:"editIndex,omitempty"`
	Total            string            `json:"total"`
}

// AddLineRequest carries the raw text of one line entry. All three fields
// are strings on purpose: blank detection and numeric validation are
// domain behavior, not transport concerns.
type AddLineRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// CommitResponse reports the identifier the committed order ended up with.
type CommitResponse struct {
	ID string `json:"id"`
}

// OrderSummaryModel is one row of the order listing.
type OrderSummaryModel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Date    string `json:"date"`
	Total   string `json:"total"`
}

func summaryFromQuery(row queries.SearchOrdersQueryResponse) OrderSummaryModel {
	return OrderSummaryModel{
		ID:      row.ID,
		Name:    row.Name,
		Address: row.Address,
		Date:    row.Date.Format(time.DateOnly),
		Total:   row.Total,
	}
}

func draftResponse(id uuid.UUID, draft *order.Draft) (DraftResponse, error) {
	total, err := draft.Total()
	if err != nil {
		return DraftResponse{}, err
	}

	profile := draft.Customer()
	fields := make(map[string]string, len(customer.AllFields()))
	for _, field := range customer.AllFields() {
		if value := profile.Get(field); value != "" {
			fields[string(field)] = value
		}
	}

	lines := make([]LineModel, 0, len(draft.Lines()))
	for _, line := range draft.Lines() {
		lineTotal, totalErr := line.Total()
		if totalErr != nil {
			return DraftResponse{}, totalErr
		}
		lines = append(lines, LineModel{
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().String(),
			Quantity:  line.Quantity(),
			Total:     lineTotal.String(),
		})
	}

	resp := DraftResponse{
		ID:               id.String(),
		Step:             draft.Step().String(),
		IsNew:            draft.IsNew(),
		Customer:         fields,
		CustomerComplete: draft.IsCustomerComplete(),
		Lines:            lines,
		Total:            total.String(),
	}

	if editingID, ok := draft.ExistingID(); ok {
		resp.EditingOrderID = editingID.String()
	}
	if index, ok := draft.EditTarget(); ok {
		resp.EditIndex = &index
	}

	name, price, quantity := draft.LineInput()
	resp.LineInput = LineInputModel{Name: name, Price: price, Quantity: quantity}

	return resp, nil
}
