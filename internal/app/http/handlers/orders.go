package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/domain/pricing"
	"tailormade/backend/internal/domain/sequence"
)

type bulkOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	ClothingItem  string         `json:"clothing_item"`
	Quantity      int            `json:"quantity"`
	SizeBreakdown map[string]int `json:"size_breakdown"`
	PrintType     string         `json:"print_type"`
	FabricQuality string         `json:"fabric_quality"`

	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

// CreateBulkOrder prices the order, mints its code and persists it in
// pending_payment. Pricing happens before code allocation so an invalid
// request never burns a counter value.
func (h *Handlers) CreateBulkOrder(w http.ResponseWriter, r *http.Request) {
	var req bulkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.CustomerEmail == "" {
		writeError(w, http.StatusBadRequest, "customer_email is required")
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

	now := h.now().UTC()
	code, err := h.Sequences.Allocate(r.Context(), sequence.Orders, now)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	o := order.Order{
		ID:              uuid.NewString(),
		Code:            code,
		Type:            order.TypeBulk,
		Status:          order.StatusPendingPayment,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ClothingItem:    req.ClothingItem,
		Quantity:        req.Quantity,
		PrintOption:     opt,
		FabricQuality:   req.FabricQuality,
		SizeBreakdown:   req.SizeBreakdown,
		Breakdown:       breakdown,
		EstimatedDays:   pricing.EstimateDays(req.Quantity, opt),
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.Orders.Insert(r.Context(), o); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderView(o))
}

type itemizedOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	Items []struct {
		Name      string  `json:"name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
		Size      string  `json:"size"`
	} `json:"items"`

	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

// CreateItemizedOrder handles the channels that sell priced items directly:
// print-on-demand, boutique, fabric and souvenir orders. Lines carry their
// own unit prices; there is no bulk pricing to apply.
func (h *Handlers) CreateItemizedOrder(orderType order.Type) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemizedOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}
		if req.CustomerEmail == "" {
			writeError(w, http.StatusBadRequest, "customer_email is required")
			return
		}
		if len(req.Items) == 0 {
			writeError(w, http.StatusBadRequest, "at least one item is required")
			return
		}

		totalQty := 0
		var total float64
		sizes := make(map[string]int)
		summary := ""
		for _, it := range req.Items {
			if it.Quantity < 1 {
				writeError(w, http.StatusBadRequest, "item quantity must be at least 1")
				return
			}
			totalQty += it.Quantity
			total += it.UnitPrice * float64(it.Quantity)
			if it.Size != "" {
				sizes[it.Size] += it.Quantity
			}
			if summary == "" {
				summary = it.Name
			}
		}
		if len(req.Items) > 1 {
			summary = fmt.Sprintf("%s and %d more", summary, len(req.Items)-1)
		}

		now := h.now().UTC()
		code, err := h.Sequences.Allocate(r.Context(), sequence.Orders, now)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		o := order.Order{
			ID:            uuid.NewString(),
			Code:          code,
			Type:          orderType,
			Status:        order.StatusPendingPayment,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			ClothingItem:  summary,
			Quantity:      totalQty,
			PrintOption:   pricing.PrintNone,
			SizeBreakdown: sizes,
			Breakdown: pricing.Breakdown{
				PricePerItem: total / float64(totalQty),
				TotalPrice:   total,
			},
			EstimatedDays:   pricing.EstimateDays(totalQty, pricing.PrintNone),
			DeliveryAddress: req.DeliveryAddress,
			Notes:           req.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := h.Orders.Insert(r.Context(), o); err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOrderView(o))
	}
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	o, err := h.Orders.GetByCode(r.Context(), code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderView(o))
}

func (h *Handlers) ListRecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListRecent(r.Context(), 100)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": toOrderViews(orders)})
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order along its lifecycle. Illegal jumps are
// rejected with 409 so the back office cannot, say, deliver an unpaid order.
func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	next, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.Orders.GetByCode(r.Context(), code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !o.Status.CanTransitionTo(next) {
		writeError(w, http.StatusConflict, fmt.Sprintf("cannot move order from %s to %s", o.Status, next))
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), code, next); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": code, "status": string(next)})
}
