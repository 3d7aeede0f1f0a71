package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tailormade/backend/internal/domain/order"
)

func TestProductionDashboard(t *testing.T) {
	h, orders, _, _, _ := newTestHandlers()
	orders.orders = append(orders.orders,
		order.Order{Code: "TM-0225-090001", Status: order.StatusPaymentVerified, Quantity: 100},
		order.Order{Code: "TM-0225-090002", Status: order.StatusInProduction, Quantity: 40},
		order.Order{Code: "TM-0225-090003", Status: order.StatusPendingPayment, Quantity: 999},
	)

	rec := httptest.NewRecorder()
	h.ProductionDashboard(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/production/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var dash productionDashboard
	if err := json.NewDecoder(rec.Body).Decode(&dash); err != nil {
		t.Fatal(err)
	}
	if dash.AwaitingCount != 1 || dash.InProductionCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", dash.AwaitingCount, dash.InProductionCount)
	}
	// Unpaid orders stay off the floor.
	if dash.TotalPieces != 140 {
		t.Errorf("total pieces = %d, want 140", dash.TotalPieces)
	}
}
