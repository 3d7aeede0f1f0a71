package gofpdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tailormade/backend/internal/domain/document"
)

// BankDetails are printed on invoices and receipts so clients can pay by
// transfer.
type BankDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
}

type Generator struct {
	bank BankDetails
}

func New(bank BankDetails) *Generator { return &Generator{bank: bank} }

var titles = map[document.Kind]string{
	document.KindQuote:       "Quotation",
	document.KindInvoice:     "Invoice",
	document.KindReceipt:     "Receipt",
	document.KindRefund:      "Refund Note",
	document.KindProcurement: "Procurement Order",
	document.KindExpense:     "Expense Record",
}

func (g *Generator) Generate(d document.Document) ([]byte, error) {
	title := titles[d.Kind]
	if title == "" {
		title = "Document"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title+" "+d.Code, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("No. %s, issued %s", d.Code, d.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(6)

	if d.ClientName != "" {
		client := d.ClientName
		if d.ClientPhone != "" {
			client += ", " + d.ClientPhone
		}
		pdf.Cell(0, 6, "Client: "+client)
		pdf.Ln(6)
	}
	if d.OrderCode != "" {
		pdf.Cell(0, 6, "Order: "+d.OrderCode)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(110, 7, "Item")
	pdf.Cell(20, 7, "Qty")
	pdf.Cell(30, 7, "Unit Price")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, it := range d.Items {
		pdf.Cell(110, 6, trim(it.Description, 60))
		pdf.Cell(20, 6, fmt.Sprintf("%d", it.Quantity))
		pdf.Cell(30, 6, formatAmount(it.UnitPrice))
		pdf.Cell(30, 6, formatAmount(it.LineTotal))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Subtotal: "+formatAmount(d.Subtotal))
	pdf.Ln(5)
	if d.Tax != 0 {
		pdf.Cell(0, 6, "Tax: "+formatAmount(d.Tax))
		pdf.Ln(5)
	}
	if d.Discount != 0 {
		pdf.Cell(0, 6, "Discount: -"+formatAmount(d.Discount))
		pdf.Ln(5)
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Total: "+formatAmount(d.Total))
	pdf.Ln(8)

	if d.Notes != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, "Notes: "+d.Notes, "", "L", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "", 9)
	if (d.Kind == document.KindInvoice || d.Kind == document.KindQuote) && g.bank.AccountNumber != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Pay to: %s, %s, %s", g.bank.BankName, g.bank.AccountName, g.bank.AccountNumber))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, "TailorMade Clothing")
	pdf.Ln(5)
	pdf.Cell(0, 5, "Generated: "+time.Now().UTC().Format(time.RFC3339))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	// Insert thousands separators into the integer part.
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
