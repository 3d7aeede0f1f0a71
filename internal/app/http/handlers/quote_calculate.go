package handlers

import (
	"encoding/json"
	"net/http"

	"tailormade/backend/internal/domain/pricing"
)

type quoteRequest struct {
	ClothingItem  string `json:"clothing_item"`
	Quantity      int    `json:"quantity"`
	PrintType     string `json:"print_type"`
	FabricQuality string `json:"fabric_quality"`
}

type quoteResponse struct {
	EstimatedPrice float64           `json:"estimated_price"`
	EstimatedDays  int               `json:"estimated_days"`
	Breakdown      pricing.Breakdown `json:"breakdown"`
}

// CalculateQuote prices an order without creating anything. The pricing
// tables are fetched fresh on every call so admin changes apply immediately.
func (h *Handlers) CalculateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.FabricQuality == "" {
		req.FabricQuality = "Standard"
	}

	opt, err := pricing.ParsePrintOption(req.PrintType)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	tables, err := h.Settings.Load(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	breakdown, err := pricing.Quote(req.ClothingItem, req.Quantity, opt, req.FabricQuality, tables)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		EstimatedPrice: breakdown.TotalPrice,
		EstimatedDays:  pricing.EstimateDays(req.Quantity, opt),
		Breakdown:      breakdown,
	})
}
