package services

import (
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// exportDateLayout renders dates the way the printed document shows them,
// day first.
const exportDateLayout = "02/01/2006"

// Field is one labeled header entry of an export document.
type Field struct {
	Label string
	Value string
}

// LineRow is one product row of an export document. Monetary values are
// pre-formatted with two decimal places.
type LineRow struct {
	Position  int
	Name      string
	UnitPrice string
	Quantity  int
	Total     string
}

// Document is the printable projection of a single order: a title, the
// header fields in display order, one row per product line, and the
// grand total. It is presentation-format agnostic; adapters decide how
// to serialize it.
type Document struct {
	Title      string
	Header     []Field
	Lines      []LineRow
	GrandTotal string
	FileName   string
}

// Render flattens the document into display lines, one string per
// printed row.
func (d Document) Render() []string {
	rows := make([]string, 0, len(d.Header)+len(d.Lines)+3)
	rows = append(rows, d.Title)
	for _, f := range d.Header {
		rows = append(rows, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	rows = append(rows, "Produtos:")
	for _, line := range d.Lines {
		rows = append(rows, strings.Join([]string{
			fmt.Sprintf("%d. %s", line.Position, line.Name),
			fmt.Sprintf("Preço: $%s", line.UnitPrice),
			fmt.Sprintf("Qtd: %d", line.Quantity),
			fmt.Sprintf("Total: $%s", line.Total),
		}, "  "))
	}
	rows = append(rows, fmt.Sprintf("Valor Total: R$%s", d.GrandTotal))
	return rows
}

// ExportFormatter is a domain service that projects a finalized order
// into its printable export document.
//
// Layout rules:
//   - The title and labels are fixed Portuguese strings
//   - The header shows identifier, customer name, address, and the
//     export date (the moment of export, not the order date)
//   - Product rows are numbered from 1 in entry order
//   - All monetary values carry exactly two decimal places
type ExportFormatter struct{}

// NewExportFormatter creates a new ExportFormatter instance.
func NewExportFormatter() ExportFormatter {
	return ExportFormatter{}
}

// Format builds the export document for the given order. The exported-at
// timestamp is stamped into the header as "Data do Pedido"; callers pass
// the current time. Returns validation errors for invalid orders and a
// required-value error for a zero timestamp.
func (f ExportFormatter) Format(o *order.Order, exportedAt time.Time) (Document, error) {
	if err := o.Validate(); err != nil {
		return Document{}, err
	}
	if exportedAt.IsZero() {
		return Document{}, errs.NewValueIsRequiredError("exportedAt")
	}

	total, err := o.Total()
	if err != nil {
		return Document{}, err
	}

	profile := o.Customer()
	doc := Document{
		Title: "Gerenciador de Pedido",
		Header: []Field{
			{Label: "ID", Value: o.ID().String()},
			{Label: "Nome do Cliente", Value: profile.Get(customer.FieldName)},
			{Label: "Endereço", Value: profile.Get(customer.FieldAddress)},
			{Label: "Data do Pedido", Value: exportedAt.Format(exportDateLayout)},
		},
		GrandTotal: total.String(),
		FileName:   fmt.Sprintf("Pedido_%s.txt", o.ID()),
	}

	for i, line := range o.Lines() {
		lineTotal, err := line.Total()
		if err != nil {
			return Document{}, err
		}
		doc.Lines = append(doc.Lines, LineRow{
			Position:  i + 1,
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().String(),
			Quantity:  line.Quantity(),
			Total:     lineTotal.String(),
		})
	}

	return doc, nil
}
