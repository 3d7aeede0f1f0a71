package gofpdf

import (
	"bytes"
	"testing"
	"time"

	"tailormade/backend/internal/domain/document"
)

func TestGenerate(t *testing.T) {
	g := New(BankDetails{BankName: "First Bank", AccountName: "TailorMade Ltd", AccountNumber: "0123456789"})

	d := document.Document{
		Code:       "INV-0225-090001",
		Kind:       document.KindInvoice,
		ClientName: "Ada Obi",
		Items: []document.LineItem{
			{Description: "T-Shirt, front print", Quantity: 100, UnitPrice: 1800},
		},
		CreatedAt: time.Date(2025, 2, 9, 12, 0, 0, 0, time.UTC),
	}
	d.Recalculate()

	out, err := g.Generate(d)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (starts with %q)", out[:4])
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1800, "1,800.00"},
		{180000, "180,000.00"},
		{1234567.5, "1,234,567.50"},
		{-9500, "-9,500.00"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
