package pricing

import (
	"errors"
	"math"
	"testing"
)

func testTables() Tables {
	return Tables{
		BasePrices: map[string]float64{
			"T-Shirt": 1500,
			"Hoodie":  4500,
		},
		FabricQualities: []FabricQuality{
			{Item: "T-Shirt", Name: "Premium", Price: 1000},
			{Item: "default", Name: "Premium", Price: 500},
			{Item: "default", Name: "Luxury", Price: 1200},
		},
		ProductionCosts: ProductionCosts{
			PrintPerPiece:      500,
			EmbroideryPerPiece: 1200,
		},
		QuantityDiscounts: map[int]float64{
			50:  5,
			100: 10,
			200: 15,
			500: 20,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuote_EndToEnd(t *testing.T) {
	// T-Shirt base 1500, Standard fabric (no entry, cost 0), front print 500,
	// quantity 100 hits the 10% tier: per item 2000*0.9=1800, total 180000.
	b, err := Quote("T-Shirt", 100, PrintFront, "Standard", testTables())
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	if b.BasePrice != 1500 {
		t.Errorf("BasePrice = %v, want 1500", b.BasePrice)
	}
	if b.FabricCost != 0 {
		t.Errorf("FabricCost = %v, want 0", b.FabricCost)
	}
	if b.PrintCost != 500 {
		t.Errorf("PrintCost = %v, want 500", b.PrintCost)
	}
	if b.DiscountPercent != 10 {
		t.Errorf("DiscountPercent = %v, want 10", b.DiscountPercent)
	}
	if !almostEqual(b.PricePerItem, 1800) {
		t.Errorf("PricePerItem = %v, want 1800", b.PricePerItem)
	}
	if !almostEqual(b.TotalPrice, 180000) {
		t.Errorf("TotalPrice = %v, want 180000", b.TotalPrice)
	}
}

func TestQuote_UnknownItemFallsBack(t *testing.T) {
	b, err := Quote("NoSuchItem", 1, PrintNone, "Standard", Tables{})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.BasePrice != DefaultBasePrice {
		t.Errorf("BasePrice = %v, want fallback %v", b.BasePrice, float64(DefaultBasePrice))
	}
	if !almostEqual(b.TotalPrice, DefaultBasePrice) {
		t.Errorf("TotalPrice = %v, want %v", b.TotalPrice, float64(DefaultBasePrice))
	}
}

func TestQuote_FrontAndBackSurcharge(t *testing.T) {
	b, err := Quote("T-Shirt", 1, PrintFrontBack, "Standard", testTables())
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	// Back side costs 60% extra, not a flat double.
	if !almostEqual(b.PrintCost, 800) {
		t.Errorf("PrintCost = %v, want exactly 800 (500 * 1.6)", b.PrintCost)
	}
}

func TestQuote_PrintCosts(t *testing.T) {
	tests := []struct {
		opt  PrintOption
		want float64
	}{
		{PrintNone, 0},
		{PrintFront, 500},
		{PrintFrontBack, 800},
		{PrintEmbroidery, 1200},
	}

	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			b, err := Quote("T-Shirt", 1, tt.opt, "Standard", testTables())
			if err != nil {
				t.Fatalf("Quote: %v", err)
			}
			if !almostEqual(b.PrintCost, tt.want) {
				t.Errorf("PrintCost = %v, want %v", b.PrintCost, tt.want)
			}
		})
	}
}

func TestQuote_DiscountTieBreak(t *testing.T) {
	tests := []struct {
		quantity int
		want     float64
	}{
		{49, 0},
		{50, 5},
		{99, 5},
		{100, 10},
		{199, 10},
		{200, 15},
		{499, 15},
		{500, 20},
		{600, 20}, // highest qualifying tier, not a sum of all tiers
	}

	for _, tt := range tests {
		b, err := Quote("T-Shirt", tt.quantity, PrintNone, "Standard", testTables())
		if err != nil {
			t.Fatalf("Quote(qty=%d): %v", tt.quantity, err)
		}
		if b.DiscountPercent != tt.want {
			t.Errorf("qty %d: DiscountPercent = %v, want %v", tt.quantity, b.DiscountPercent, tt.want)
		}
	}
}

func TestQuote_EmptyDiscountTableMeansNoDiscount(t *testing.T) {
	tables := testTables()
	tables.QuantityDiscounts = nil

	b, err := Quote("T-Shirt", 1000, PrintNone, "Standard", tables)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.DiscountPercent != 0 {
		t.Errorf("DiscountPercent = %v, want 0 with empty table", b.DiscountPercent)
	}
}

func TestQuote_FabricScopingPrecedence(t *testing.T) {
	tables := testTables()

	// Item-scoped entry wins over the "default" entry for the same quality.
	b, err := Quote("T-Shirt", 1, PrintNone, "Premium", tables)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.FabricCost != 1000 {
		t.Errorf("T-Shirt Premium FabricCost = %v, want item-scoped 1000", b.FabricCost)
	}

	// An item with no scoped entry falls back to the "default" entry.
	b, err = Quote("Unknown-Item", 1, PrintNone, "Premium", tables)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.FabricCost != 500 {
		t.Errorf("Unknown-Item Premium FabricCost = %v, want default-scoped 500", b.FabricCost)
	}
}

func TestQuote_FabricQualityMatchIsCaseInsensitive(t *testing.T) {
	b, err := Quote("Hoodie", 1, PrintNone, "lUxUrY", testTables())
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.FabricCost != 1200 {
		t.Errorf("FabricCost = %v, want 1200 regardless of case", b.FabricCost)
	}
}

func TestQuote_UnknownFabricQualityCostsNothing(t *testing.T) {
	b, err := Quote("T-Shirt", 1, PrintNone, "Iridescent", testTables())
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if b.FabricCost != 0 {
		t.Errorf("FabricCost = %v, want 0 for unknown quality", b.FabricCost)
	}
}

func TestQuote_InvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		_, err := Quote("T-Shirt", qty, PrintNone, "Standard", testTables())
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Quote(qty=%d) error = %v, want ErrInvalidInput", qty, err)
		}
	}
}

func TestQuote_InvalidPrintOption(t *testing.T) {
	_, err := Quote("T-Shirt", 1, PrintOption("holographic"), "Standard", testTables())
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestParsePrintOption(t *testing.T) {
	for _, s := range []string{"none", "front", "front_back", "embroidery"} {
		opt, err := ParsePrintOption(s)
		if err != nil {
			t.Errorf("ParsePrintOption(%q): %v", s, err)
		}
		if string(opt) != s {
			t.Errorf("ParsePrintOption(%q) = %q", s, opt)
		}
	}

	if _, err := ParsePrintOption("back"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParsePrintOption(back) error = %v, want ErrInvalidInput", err)
	}
}

func TestEstimateDays(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		opt      PrintOption
		want     int
	}{
		{"small plain order", 10, PrintNone, 3},
		{"bracket boundary 20 exclusive", 20, PrintNone, 3},
		{"over 20", 21, PrintNone, 6},
		{"bracket boundary 50 exclusive", 50, PrintNone, 6},
		{"over 50", 51, PrintNone, 8},
		{"bracket boundary 100 exclusive", 100, PrintFront, 8},
		{"over 100", 101, PrintNone, 10},
		{"embroidery adds two", 10, PrintEmbroidery, 5},
		{"front and back adds one", 10, PrintFrontBack, 4},
		{"front adds nothing", 10, PrintFront, 3},
		{"large embroidered order", 150, PrintEmbroidery, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDays(tt.quantity, tt.opt)
			if got != tt.want {
				t.Errorf("EstimateDays(%d, %s) = %d, want %d", tt.quantity, tt.opt, got, tt.want)
			}
		})
	}
}
