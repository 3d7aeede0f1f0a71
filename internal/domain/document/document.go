// Package document models the back-office paperwork: invoices, receipts,
// refunds, procurements, expenses and customer enquiries. Every document
// carries a code minted from its own daily sequence.
package document

import (
	"fmt"
	"time"
)

// Kind selects which sequence a document draws its code from.
type Kind string

const (
	KindQuote       Kind = "quote"
	KindInvoice     Kind = "invoice"
	KindReceipt     Kind = "receipt"
	KindRefund      Kind = "refund"
	KindProcurement Kind = "procurement"
	KindExpense     Kind = "expense"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindQuote, KindInvoice, KindReceipt, KindRefund, KindProcurement, KindExpense:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown document kind %q", s)
}

// LineItem is one billed line on a document.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Document is a persisted back-office document. Code is permanent once
// allocated.
type Document struct {
	ID   string
	Code string
	Kind Kind

	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientAddress string

	Items    []LineItem
	Subtotal float64
	Tax      float64
	Discount float64
	Total    float64

	Notes     string
	OrderCode string // optional link back to the order this document covers

	CreatedAt time.Time
}

// Recalculate recomputes line totals, the subtotal and the grand total from
// the line items. Tax and Discount are flat amounts, not percentages.
func (d *Document) Recalculate() {
	var subtotal float64
	for i := range d.Items {
		d.Items[i].LineTotal = d.Items[i].UnitPrice * float64(d.Items[i].Quantity)
		subtotal += d.Items[i].LineTotal
	}
	d.Subtotal = subtotal
	d.Total = subtotal + d.Tax - d.Discount
}
