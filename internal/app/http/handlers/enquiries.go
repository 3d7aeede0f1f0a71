package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tailormade/backend/internal/domain/document"
	"tailormade/backend/internal/domain/sequence"
)

type enquiryRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	ItemDescription   string  `json:"item_description"`
	Quantity          int     `json:"quantity"`
	Specifications    string  `json:"specifications"`
	ReferenceImageURL string  `json:"reference_image_url"`
	TargetPrice       float64 `json:"target_price"`
	Deadline          string  `json:"deadline"`
	Notes             string  `json:"notes"`
}

// CreateEnquiry takes a custom-order request. Anything the standard catalog
// cannot price goes through here and gets quoted by an admin.
func (h *Handlers) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req enquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.ItemDescription == "" {
		writeError(w, http.StatusBadRequest, "item_description is required")
		return
	}
	if req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	if req.CustomerEmail == "" {
		writeError(w, http.StatusBadRequest, "customer_email is required")
		return
	}

	now := h.now().UTC()
	code, err := h.Sequences.Allocate(r.Context(), sequence.Enquiries, now)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	e := document.Enquiry{
		ID:                uuid.NewString(),
		Code:              code,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		ItemDescription:   req.ItemDescription,
		Quantity:          req.Quantity,
		Specifications:    req.Specifications,
		ReferenceImageURL: req.ReferenceImageURL,
		TargetPrice:       req.TargetPrice,
		Deadline:          req.Deadline,
		Notes:             req.Notes,
		Status:            document.EnquiryNew,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := h.Enquiries.Insert(r.Context(), e); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEnquiryView(e))
}

func (h *Handlers) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.Enquiries.List(r.Context(), 100)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]enquiryView, 0, len(enquiries))
	for _, e := range enquiries {
		views = append(views, toEnquiryView(e))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"enquiries": views})
}

type enquiryQuoteRequest struct {
	UnitPrice         float64 `json:"unit_price"`
	TotalPrice        float64 `json:"total_price"`
	EstimatedProdDays int     `json:"estimated_production_days"`
	ValidUntil        string  `json:"valid_until"`
	NotesToClient     string  `json:"notes_to_client"`
}

// QuoteEnquiry attaches the admin's answer to an enquiry. The quote gets a
// code from the quote sequence so it can be referenced like any other quote.
func (h *Handlers) QuoteEnquiry(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req enquiryQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.UnitPrice <= 0 || req.TotalPrice <= 0 {
		writeError(w, http.StatusBadRequest, "unit_price and total_price must be positive")
		return
	}

	if _, err := h.Enquiries.GetByCode(r.Context(), code); err != nil {
		writeDomainError(w, err)
		return
	}

	quoteCode, err := h.Sequences.Allocate(r.Context(), sequence.Quotes, h.now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	update := document.Enquiry{
		QuoteCode:         quoteCode,
		QuotedUnitPrice:   req.UnitPrice,
		QuotedTotalPrice:  req.TotalPrice,
		EstimatedProdDays: req.EstimatedProdDays,
		ValidUntil:        req.ValidUntil,
		NotesToClient:     req.NotesToClient,
	}
	if err := h.Enquiries.AttachQuote(r.Context(), code, update); err != nil {
		writeDomainError(w, err)
		return
	}

	e, err := h.Enquiries.GetByCode(r.Context(), code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEnquiryView(e))
}

type enquiryStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) UpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req enquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	status, err := document.ParseEnquiryStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Enquiries.UpdateStatus(r.Context(), code, status); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": code, "status": string(status)})
}
