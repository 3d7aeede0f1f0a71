package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"tailormade/backend/internal/domain/pricing"
)

type discountTierView struct {
	MinQuantity int     `json:"min_quantity"`
	Percentage  float64 `json:"percentage"`
}

type settingsView struct {
	BasePrices        map[string]float64      `json:"base_prices"`
	FabricQualities   []pricing.FabricQuality `json:"fabric_qualities"`
	ProductionCosts   pricing.ProductionCosts `json:"production_costs"`
	QuantityDiscounts []discountTierView      `json:"quantity_discounts"`
}

// GetPricingSettings returns the effective pricing tables: stored overrides
// merged over the defaults, exactly what the calculator will use.
func (h *Handlers) GetPricingSettings(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Settings.Load(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsView(tables))
}

func toSettingsView(t pricing.Tables) settingsView {
	tiers := make([]discountTierView, 0, len(t.QuantityDiscounts))
	for min, pct := range t.QuantityDiscounts {
		tiers = append(tiers, discountTierView{MinQuantity: min, Percentage: pct})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinQuantity < tiers[j].MinQuantity })

	qualities := t.FabricQualities
	if qualities == nil {
		qualities = []pricing.FabricQuality{}
	}
	return settingsView{
		BasePrices:        t.BasePrices,
		FabricQualities:   qualities,
		ProductionCosts:   t.ProductionCosts,
		QuantityDiscounts: tiers,
	}
}

type basePriceRequest struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

func (h *Handlers) SetBasePrice(w http.ResponseWriter, r *http.Request) {
	var req basePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Item == "" {
		writeError(w, http.StatusBadRequest, "item is required")
		return
	}
	if req.Price < 0 {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}
	if err := h.Settings.SetBasePrice(r.Context(), req.Item, req.Price); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"item": req.Item, "price": req.Price})
}

type fabricQualityRequest struct {
	Item  string  `json:"item"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// UpsertFabricQuality creates or updates a fabric tier. An empty item scopes
// the tier to "default", matching the calculator's fallback lookup.
func (h *Handlers) UpsertFabricQuality(w http.ResponseWriter, r *http.Request) {
	var req fabricQualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price < 0 {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}
	fq := pricing.FabricQuality{Item: req.Item, Name: req.Name, Price: req.Price}
	if err := h.Settings.UpsertFabricQuality(r.Context(), fq); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fq)
}

func (h *Handlers) DeleteFabricQuality(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item")
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if item == "" {
		item = "default"
	}
	if err := h.Settings.DeleteFabricQuality(r.Context(), item, name); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"item": item, "name": name, "deleted": "true"})
}

type productionCostsRequest struct {
	PrintPerPiece      float64 `json:"print_cost_per_piece"`
	EmbroideryPerPiece float64 `json:"embroidery_cost_per_piece"`
}

func (h *Handlers) SetProductionCosts(w http.ResponseWriter, r *http.Request) {
	var req productionCostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.PrintPerPiece < 0 || req.EmbroideryPerPiece < 0 {
		writeError(w, http.StatusBadRequest, "costs must not be negative")
		return
	}
	costs := pricing.ProductionCosts{
		PrintPerPiece:      req.PrintPerPiece,
		EmbroideryPerPiece: req.EmbroideryPerPiece,
	}
	if err := h.Settings.SetProductionCosts(r.Context(), costs); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, costs)
}

type discountsRequest struct {
	Tiers map[string]float64 `json:"tiers"`
}

// ReplaceQuantityDiscounts swaps the whole discount table at once. Tier keys
// arrive as strings because JSON object keys always do.
func (h *Handlers) ReplaceQuantityDiscounts(w http.ResponseWriter, r *http.Request) {
	var req discountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	tiers := make(map[int]float64, len(req.Tiers))
	for k, pct := range req.Tiers {
		min, err := strconv.Atoi(k)
		if err != nil || min < 1 {
			writeError(w, http.StatusBadRequest, "tier keys must be positive integers")
			return
		}
		if pct < 0 || pct > 100 {
			writeError(w, http.StatusBadRequest, "percentages must be between 0 and 100")
			return
		}
		tiers[min] = pct
	}

	if err := h.Settings.ReplaceQuantityDiscounts(r.Context(), tiers); err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]discountTierView, 0, len(tiers))
	for min, pct := range tiers {
		views = append(views, discountTierView{MinQuantity: min, Percentage: pct})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].MinQuantity < views[j].MinQuantity })
	writeJSON(w, http.StatusOK, map[string]interface{}{"tiers": views})
}
