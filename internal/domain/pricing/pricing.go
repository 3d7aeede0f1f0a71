// Package pricing computes bulk-order quotes: base price plus fabric and
// print surcharges, with quantity-tiered discounts and a production-time
// estimate. It is a pure calculator over tables supplied by the caller; it
// never touches storage and never caches.
package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// PrintOption is the customisation applied to every piece of an order.
type PrintOption string

const (
	PrintNone       PrintOption = "none"
	PrintFront      PrintOption = "front"
	PrintFrontBack  PrintOption = "front_back"
	PrintEmbroidery PrintOption = "embroidery"
)

// ParsePrintOption maps a wire value to a PrintOption.
func ParsePrintOption(s string) (PrintOption, error) {
	switch PrintOption(s) {
	case PrintNone, PrintFront, PrintFrontBack, PrintEmbroidery:
		return PrintOption(s), nil
	}
	return "", fmt.Errorf("%w: unknown print option %q", ErrInvalidInput, s)
}

// ErrInvalidInput rejects quantities below 1 and malformed print options.
// Missing catalog data is deliberately not an error: a quote with fallback
// prices beats a refused quote.
var ErrInvalidInput = errors.New("pricing: invalid input")

// DefaultBasePrice prices catalog items with no configured base price.
const DefaultBasePrice = 2000

// Printing the back side costs 60% extra on top of the front, not double.
const backPrintFactor = 1.6

// FabricQuality is one fabric-grade surcharge, optionally scoped to a single
// clothing item. Item is the catalog item name or "default".
type FabricQuality struct {
	Item  string  `json:"clothing_item"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductionCosts are the per-piece print and embroidery charges.
type ProductionCosts struct {
	PrintPerPiece      float64 `json:"print_cost_per_piece"`
	EmbroideryPerPiece float64 `json:"embroidery_cost_per_piece"`
}

// Tables is the read-only pricing snapshot a quote is computed against.
// Callers fetch a fresh snapshot per call; the calculator holds no state.
type Tables struct {
	BasePrices        map[string]float64
	FabricQualities   []FabricQuality
	ProductionCosts   ProductionCosts
	QuantityDiscounts map[int]float64
}

// Breakdown is the itemised result of a quote. Once returned it is never
// mutated. PricePerItem and TotalPrice carry full precision; rounding for
// display is the caller's job.
type Breakdown struct {
	BasePrice       float64 `json:"base_price"`
	FabricCost      float64 `json:"fabric_cost"`
	PrintCost       float64 `json:"print_cost"`
	DiscountPercent float64 `json:"discount_percentage"`
	PricePerItem    float64 `json:"price_per_item"`
	TotalPrice      float64 `json:"total_price"`
}

// Quote prices quantity pieces of item with the given print option and
// fabric quality.
//
//   - unknown item: base price falls back to DefaultBasePrice
//   - unknown fabric quality: surcharge 0
//   - quantity below every discount threshold: discount 0
//
// price_per_item = (base + fabric + print) * (1 - discount/100),
// total = price_per_item * quantity, with no intermediate rounding.
func Quote(item string, quantity int, opt PrintOption, fabricQuality string, t Tables) (Breakdown, error) {
	if quantity < 1 {
		return Breakdown{}, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidInput, quantity)
	}
	if _, err := ParsePrintOption(string(opt)); err != nil {
		return Breakdown{}, err
	}

	base, ok := t.BasePrices[item]
	if !ok {
		base = DefaultBasePrice
	}

	fabric := fabricCost(item, fabricQuality, t.FabricQualities)
	print := printCost(opt, t.ProductionCosts)
	discount := discountPercent(quantity, t.QuantityDiscounts)

	perItem := (base + fabric + print) * (1 - discount/100)

	return Breakdown{
		BasePrice:       base,
		FabricCost:      fabric,
		PrintCost:       print,
		DiscountPercent: discount,
		PricePerItem:    perItem,
		TotalPrice:      perItem * float64(quantity),
	}, nil
}

// fabricCost resolves the surcharge for quality, matched case-insensitively.
// An entry scoped to the item beats an entry scoped to "default"; with
// neither present the surcharge is 0.
func fabricCost(item, quality string, entries []FabricQuality) float64 {
	for _, scope := range []string{item, "default"} {
		for _, e := range entries {
			if e.Item == scope && strings.EqualFold(e.Name, quality) {
				return e.Price
			}
		}
	}
	return 0
}

func printCost(opt PrintOption, costs ProductionCosts) float64 {
	switch opt {
	case PrintFront:
		return costs.PrintPerPiece
	case PrintFrontBack:
		return costs.PrintPerPiece * backPrintFactor
	case PrintEmbroidery:
		return costs.EmbroideryPerPiece
	}
	return 0
}

// discountPercent picks the largest threshold not exceeding quantity.
// Tiers never stack.
func discountPercent(quantity int, tiers map[int]float64) float64 {
	best := -1
	for threshold := range tiers {
		if threshold <= quantity && threshold > best {
			best = threshold
		}
	}
	if best < 0 {
		return 0
	}
	return tiers[best]
}

// EstimateDays returns the estimated production time for an order. The
// quantity brackets are mutually exclusive (largest qualifying bracket wins,
// same rule as discounts) and the print option adds on top. Embroidery and
// front-and-back are distinct states of a single option, so only one of the
// two additions ever applies.
func EstimateDays(quantity int, opt PrintOption) int {
	days := 3

	switch {
	case quantity > 100:
		days += 7
	case quantity > 50:
		days += 5
	case quantity > 20:
		days += 3
	}

	switch opt {
	case PrintEmbroidery:
		days += 2
	case PrintFrontBack:
		days += 1
	}

	return days
}
