package handlers

import (
	"net/http"

	"tailormade/backend/internal/domain/order"
)

type productionDashboard struct {
	AwaitingProduction []orderView `json:"awaiting_production"`
	InProduction       []orderView `json:"in_production"`
	AwaitingCount      int         `json:"awaiting_count"`
	InProductionCount  int         `json:"in_production_count"`
	TotalPieces        int         `json:"total_pieces"`
}

// ProductionDashboard shows the shop floor queue: paid orders waiting to
// start and orders currently being made, with the total piece count across
// both.
func (h *Handlers) ProductionDashboard(w http.ResponseWriter, r *http.Request) {
	awaiting, err := h.Orders.ListByStatus(r.Context(), order.StatusPaymentVerified, 100)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	active, err := h.Orders.ListByStatus(r.Context(), order.StatusInProduction, 100)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dash := productionDashboard{
		AwaitingProduction: make([]orderView, 0, len(awaiting)),
		InProduction:       make([]orderView, 0, len(active)),
		AwaitingCount:      len(awaiting),
		InProductionCount:  len(active),
	}
	for _, o := range awaiting {
		dash.AwaitingProduction = append(dash.AwaitingProduction, toOrderView(o))
		dash.TotalPieces += o.Quantity
	}
	for _, o := range active {
		dash.InProduction = append(dash.InProduction, toOrderView(o))
		dash.TotalPieces += o.Quantity
	}

	writeJSON(w, http.StatusOK, dash)
}
