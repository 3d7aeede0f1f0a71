package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tailormade/backend/internal/domain/document"
)

func TestCreateDocument(t *testing.T) {
	tests := []struct {
		kind       string
		wantPrefix string
	}{
		{"invoice", "INV-0225-090001"},
		{"receipt", "INV-0225-090001"},
		{"refund", "REF-0225-090001"},
		{"procurement", "PRC-0225-090001"},
		{"expense", "EXP-0225-090001"},
		{"quote", "QT-0225-090001"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			h, _, _, docs, _ := newTestHandlers()

			body := `{
				"kind": "` + tt.kind + `",
				"client_name": "Ada",
				"items": [
					{"description": "T-Shirt printing", "quantity": 100, "unit_price": 1800},
					{"description": "Delivery", "quantity": 1, "unit_price": 5000}
				],
				"tax": 1000,
				"discount": 500
			}`
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/documents", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.CreateDocument(rec, req)

			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			var view documentView
			if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
				t.Fatal(err)
			}
			if view.Code != tt.wantPrefix {
				t.Errorf("code = %q, want %q", view.Code, tt.wantPrefix)
			}
			if view.Subtotal != 185000 {
				t.Errorf("subtotal = %v, want 185000", view.Subtotal)
			}
			if view.Total != 185500 {
				t.Errorf("total = %v, want 185500", view.Total)
			}
			if len(docs.docs) != 1 {
				t.Fatalf("persisted %d documents, want 1", len(docs.docs))
			}
		})
	}
}

func TestCreateDocumentValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown kind", `{"kind":"memo","items":[{"description":"x","quantity":1,"unit_price":1}]}`},
		{"no items", `{"kind":"invoice","items":[]}`},
		{"zero quantity", `{"kind":"invoice","items":[{"description":"x","quantity":0,"unit_price":1}]}`},
		{"negative price", `{"kind":"invoice","items":[{"description":"x","quantity":1,"unit_price":-1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _, _ := newTestHandlers()
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/documents", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.CreateDocument(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestListDocumentsFiltersByKind(t *testing.T) {
	h, _, _, docs, _ := newTestHandlers()
	docs.docs = append(docs.docs,
		document.Document{Code: "INV-0225-090001", Kind: document.KindInvoice},
		document.Document{Code: "REF-0225-090001", Kind: document.KindRefund},
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/documents?kind=invoice", nil)
	rec := httptest.NewRecorder()
	h.ListDocuments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Documents []documentView `json:"documents"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Documents) != 1 || resp.Documents[0].Code != "INV-0225-090001" {
		t.Errorf("documents = %+v, want just the invoice", resp.Documents)
	}
}

func TestDownloadDocumentPDF(t *testing.T) {
	h, _, _, docs, _ := newTestHandlers()
	docs.docs = append(docs.docs, document.Document{
		Code: "INV-0225-090001",
		Kind: document.KindInvoice,
		Items: []document.LineItem{
			{Description: "T-Shirt printing", Quantity: 100, UnitPrice: 1800, LineTotal: 180000},
		},
		Subtotal: 180000,
		Total:    180000,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/documents/INV-0225-090001/pdf", nil)
	rec := httptest.NewRecorder()
	h.DownloadDocumentPDF(rec, withURLParam(req, "code", "INV-0225-090001"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content-type = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("body does not start with %PDF")
	}
}
