package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/infra/db/postgres"
)

type paymentInitRequest struct {
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Provider  string  `json:"provider"`
	OrderCode string  `json:"order_code"`
}

// InitializePayment opens a checkout with the chosen provider for an
// existing order. With no provider key configured the flow runs in mock
// mode, which keeps local development working without credentials.
func (h *Handlers) InitializePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentInitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Email == "" || req.OrderCode == "" {
		writeError(w, http.StatusBadRequest, "email and order_code are required")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if req.Provider == "" {
		req.Provider = "paystack"
	}
	if req.Provider != "paystack" && req.Provider != "stripe" {
		writeError(w, http.StatusBadRequest, "provider must be paystack or stripe")
		return
	}

	o, err := h.Orders.GetByCode(r.Context(), req.OrderCode)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	now := h.now().UTC()
	reference := "TM-" + now.Format("20060102") + "-" + strings.ToUpper(uuid.NewString()[:8])
	amountMinor := int64(math.Round(req.Amount * 100))

	p := postgres.Payment{
		ID:        uuid.NewString(),
		Reference: reference,
		Provider:  req.Provider,
		Email:     req.Email,
		Amount:    req.Amount,
		OrderCode: o.Code,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	var authorizationURL string
	switch req.Provider {
	case "paystack":
		if h.Paystack.Mock() {
			p.IsMock = true
			authorizationURL = "/payment/mock?reference=" + reference
			break
		}
		init, err := h.Paystack.Initialize(r.Context(), req.Email, amountMinor, reference, map[string]any{
			"order_code": o.Code,
			"order_type": string(o.Type),
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		authorizationURL = init.AuthorizationURL

	case "stripe":
		if h.Stripe.Mock() {
			p.IsMock = true
			authorizationURL = "/payment/mock?reference=" + reference
			break
		}
		returnURL := h.Cfg.PaymentReturnURL + "?reference=" + reference
		sess, err := h.Stripe.CreateCheckoutSession(r.Context(), amountMinor, h.Cfg.Currency,
			"Order "+o.Code, reference, returnURL, returnURL)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		p.ProviderRef = sess.ID
		authorizationURL = sess.URL
	}

	if err := h.Payments.Insert(r.Context(), p); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "Payment initialized",
		"data": map[string]string{
			"reference":         reference,
			"authorization_url": authorizationURL,
		},
	})
}

// VerifyPayment checks the provider's verdict on a reference and, on
// success, marks the payment and moves the order to payment_verified.
// Verifying an already-verified payment is a no-op success, so clients can
// retry freely.
func (h *Handlers) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	p, err := h.Payments.GetByReference(r.Context(), reference)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if p.Status == "success" {
		writeJSON(w, http.StatusOK, map[string]any{"status": true, "payment_status": "success"})
		return
	}

	paid := false
	switch {
	case p.IsMock:
		paid = true
	case p.Provider == "paystack":
		v, err := h.Paystack.Verify(r.Context(), reference)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		paid = v.Status == "success"
	case p.Provider == "stripe":
		st, err := h.Stripe.GetSessionStatus(r.Context(), p.ProviderRef)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		paid = st.PaymentStatus == "paid"
	}

	if !paid {
		if err := h.Payments.UpdateStatus(r.Context(), reference, "failed"); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": false, "payment_status": "failed"})
		return
	}

	if err := h.Payments.UpdateStatus(r.Context(), reference, "success"); err != nil {
		writeDomainError(w, err)
		return
	}

	o, err := h.Orders.GetByCode(r.Context(), p.OrderCode)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if o.Status.CanTransitionTo(order.StatusPaymentVerified) {
		if err := h.Orders.UpdateStatus(r.Context(), o.Code, order.StatusPaymentVerified); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":         true,
		"payment_status": "success",
		"order_code":     p.OrderCode,
	})
}

// BankDetails returns the transfer details shown to clients who pay
// manually instead of through a gateway.
func (h *Handlers) BankDetails(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"bank_name":      h.Cfg.BankName,
		"account_name":   h.Cfg.BankAccountName,
		"account_number": h.Cfg.BankAccountNumber,
	})
}
