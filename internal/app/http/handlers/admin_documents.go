package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tailormade/backend/internal/domain/document"
	"tailormade/backend/internal/domain/sequence"
)

// sequenceFor maps a document kind to the daily sequence its code is minted
// from. Receipts share the invoice sequence: a receipt is the paid face of
// an invoice, not a separate paper trail.
func sequenceFor(kind document.Kind) sequence.Sequence {
	switch kind {
	case document.KindQuote:
		return sequence.Quotes
	case document.KindRefund:
		return sequence.Refunds
	case document.KindProcurement:
		return sequence.Procurements
	case document.KindExpense:
		return sequence.Expenses
	default:
		return sequence.Invoices
	}
}

type documentItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type documentRequest struct {
	Kind string `json:"kind"`

	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	ClientAddress string `json:"client_address"`

	Items    []documentItemRequest `json:"items"`
	Tax      float64               `json:"tax"`
	Discount float64               `json:"discount"`

	Notes     string `json:"notes"`
	OrderCode string `json:"order_code"`
}

// CreateDocument mints a coded document of the requested kind. Totals are
// recomputed server-side; the client's arithmetic is never trusted.
func (h *Handlers) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	kind, err := document.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "at least one line item is required")
		return
	}
	for i, it := range req.Items {
		if it.Quantity < 1 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("item %d: quantity must be at least 1", i))
			return
		}
		if it.UnitPrice < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("item %d: unit_price must not be negative", i))
			return
		}
	}

	now := h.now().UTC()
	code, err := h.Sequences.Allocate(r.Context(), sequenceFor(kind), now)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	items := make([]document.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, document.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	d := document.Document{
		ID:            uuid.NewString(),
		Code:          code,
		Kind:          kind,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		ClientAddress: req.ClientAddress,
		Items:         items,
		Tax:           req.Tax,
		Discount:      req.Discount,
		Notes:         req.Notes,
		OrderCode:     req.OrderCode,
		CreatedAt:     now,
	}
	d.Recalculate()

	if err := h.Documents.Insert(r.Context(), d); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentView(d))
}

func (h *Handlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	kind, err := document.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	docs, err := h.Documents.ListByKind(r.Context(), kind, 100)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]documentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, toDocumentView(d))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"documents": views})
}

func (h *Handlers) GetDocument(w http.ResponseWriter, r *http.Request) {
	d, err := h.Documents.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentView(d))
}

// DownloadDocumentPDF renders the document as a PDF attachment.
func (h *Handlers) DownloadDocumentPDF(w http.ResponseWriter, r *http.Request) {
	d, err := h.Documents.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	data, err := h.PDF.Generate(d)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not render pdf")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Code+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
