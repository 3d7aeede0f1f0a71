package handlers

import (
	"context"
	"fmt"
	"time"

	"tailormade/backend/internal/app/config"
	"tailormade/backend/internal/domain/document"
	pdfgen "tailormade/backend/internal/domain/document/pdf/gofpdf"
	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/domain/pricing"
	"tailormade/backend/internal/domain/sequence"
	"tailormade/backend/internal/infra/db/postgres"
	"tailormade/backend/internal/infra/payments"
)

// In-memory store fakes. Each holds records in insertion order and reports
// postgres.ErrNotFound exactly like the real stores do, so the handlers'
// error mapping is exercised for real.

type fakeSettings struct {
	tables  pricing.Tables
	loadErr error
}

func (f *fakeSettings) Load(context.Context) (pricing.Tables, error) {
	return f.tables, f.loadErr
}

func (f *fakeSettings) SetBasePrice(_ context.Context, item string, price float64) error {
	if f.tables.BasePrices == nil {
		f.tables.BasePrices = map[string]float64{}
	}
	f.tables.BasePrices[item] = price
	return nil
}

func (f *fakeSettings) UpsertFabricQuality(_ context.Context, fq pricing.FabricQuality) error {
	if fq.Item == "" {
		fq.Item = "default"
	}
	for i, q := range f.tables.FabricQualities {
		if q.Item == fq.Item && q.Name == fq.Name {
			f.tables.FabricQualities[i] = fq
			return nil
		}
	}
	f.tables.FabricQualities = append(f.tables.FabricQualities, fq)
	return nil
}

func (f *fakeSettings) DeleteFabricQuality(_ context.Context, item, name string) error {
	for i, q := range f.tables.FabricQualities {
		if q.Item == item && q.Name == name {
			f.tables.FabricQualities = append(f.tables.FabricQualities[:i], f.tables.FabricQualities[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("fabric quality %s/%s: %w", item, name, postgres.ErrNotFound)
}

func (f *fakeSettings) SetProductionCosts(_ context.Context, costs pricing.ProductionCosts) error {
	f.tables.ProductionCosts = costs
	return nil
}

func (f *fakeSettings) ReplaceQuantityDiscounts(_ context.Context, tiers map[int]float64) error {
	f.tables.QuantityDiscounts = tiers
	return nil
}

type fakeOrders struct {
	orders []order.Order
}

func (f *fakeOrders) Insert(_ context.Context, o order.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrders) GetByCode(_ context.Context, code string) (order.Order, error) {
	for _, o := range f.orders {
		if o.Code == code {
			return o, nil
		}
	}
	return order.Order{}, fmt.Errorf("order %s: %w", code, postgres.ErrNotFound)
}

func (f *fakeOrders) ListByStatus(_ context.Context, status order.Status, limit int) ([]order.Order, error) {
	var out []order.Order
	for _, o := range f.orders {
		if o.Status == status && len(out) < limit {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListRecent(_ context.Context, limit int) ([]order.Order, error) {
	if len(f.orders) > limit {
		return f.orders[:limit], nil
	}
	return f.orders, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, code string, status order.Status) error {
	for i := range f.orders {
		if f.orders[i].Code == code {
			f.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", code, postgres.ErrNotFound)
}

type fakeDocuments struct {
	docs []document.Document
}

func (f *fakeDocuments) Insert(_ context.Context, d document.Document) error {
	f.docs = append(f.docs, d)
	return nil
}

func (f *fakeDocuments) GetByCode(_ context.Context, code string) (document.Document, error) {
	for _, d := range f.docs {
		if d.Code == code {
			return d, nil
		}
	}
	return document.Document{}, fmt.Errorf("document %s: %w", code, postgres.ErrNotFound)
}

func (f *fakeDocuments) ListByKind(_ context.Context, kind document.Kind, limit int) ([]document.Document, error) {
	var out []document.Document
	for _, d := range f.docs {
		if d.Kind == kind && len(out) < limit {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeEnquiries struct {
	enquiries []document.Enquiry
}

func (f *fakeEnquiries) Insert(_ context.Context, e document.Enquiry) error {
	f.enquiries = append(f.enquiries, e)
	return nil
}

func (f *fakeEnquiries) GetByCode(_ context.Context, code string) (document.Enquiry, error) {
	for _, e := range f.enquiries {
		if e.Code == code {
			return e, nil
		}
	}
	return document.Enquiry{}, fmt.Errorf("enquiry %s: %w", code, postgres.ErrNotFound)
}

func (f *fakeEnquiries) List(_ context.Context, limit int) ([]document.Enquiry, error) {
	if len(f.enquiries) > limit {
		return f.enquiries[:limit], nil
	}
	return f.enquiries, nil
}

func (f *fakeEnquiries) AttachQuote(_ context.Context, code string, q document.Enquiry) error {
	for i := range f.enquiries {
		if f.enquiries[i].Code == code {
			e := &f.enquiries[i]
			e.QuoteCode = q.QuoteCode
			e.QuotedUnitPrice = q.QuotedUnitPrice
			e.QuotedTotalPrice = q.QuotedTotalPrice
			e.EstimatedProdDays = q.EstimatedProdDays
			e.ValidUntil = q.ValidUntil
			e.NotesToClient = q.NotesToClient
			e.Status = document.EnquiryQuoted
			return nil
		}
	}
	return fmt.Errorf("enquiry %s: %w", code, postgres.ErrNotFound)
}

func (f *fakeEnquiries) UpdateStatus(_ context.Context, code string, status document.EnquiryStatus) error {
	for i := range f.enquiries {
		if f.enquiries[i].Code == code {
			f.enquiries[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("enquiry %s: %w", code, postgres.ErrNotFound)
}

type fakePayments struct {
	payments []postgres.Payment
}

func (f *fakePayments) Insert(_ context.Context, p postgres.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePayments) GetByReference(_ context.Context, reference string) (postgres.Payment, error) {
	for _, p := range f.payments {
		if p.Reference == reference {
			return p, nil
		}
	}
	return postgres.Payment{}, fmt.Errorf("payment %s: %w", reference, postgres.ErrNotFound)
}

func (f *fakePayments) UpdateStatus(_ context.Context, reference, status string) error {
	for i := range f.payments {
		if f.payments[i].Reference == reference {
			f.payments[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("payment %s: %w", reference, postgres.ErrNotFound)
}

// testTables is a small but complete pricing snapshot.
func testTables() pricing.Tables {
	return pricing.Tables{
		BasePrices: map[string]float64{
			"T-Shirt": 1500,
			"Hoodie":  4500,
		},
		FabricQualities: []pricing.FabricQuality{
			{Item: "default", Name: "Standard", Price: 0},
			{Item: "default", Name: "Premium", Price: 500},
		},
		ProductionCosts:   pricing.ProductionCosts{PrintPerPiece: 500, EmbroideryPerPiece: 1200},
		QuantityDiscounts: map[int]float64{50: 5, 100: 10, 200: 15, 500: 20},
	}
}

var testNow = time.Date(2025, time.February, 9, 12, 0, 0, 0, time.UTC)

// newTestHandlers wires a Handlers with in-memory everything: a memory
// counter behind the allocator, fake stores, mock-mode payment clients and
// a frozen clock.
func newTestHandlers() (*Handlers, *fakeOrders, *fakeEnquiries, *fakeDocuments, *fakePayments) {
	orders := &fakeOrders{}
	enquiries := &fakeEnquiries{}
	docs := &fakeDocuments{}
	pays := &fakePayments{}

	h := &Handlers{
		Cfg: config.Config{
			Currency:          "NGN",
			BankName:          "First Bank",
			BankAccountName:   "TailorMade Ltd",
			BankAccountNumber: "0123456789",
		},
		Sequences: sequence.NewAllocator(sequence.NewMemoryCounter()),
		Settings:  &fakeSettings{tables: testTables()},
		Orders:    orders,
		Documents: docs,
		Enquiries: enquiries,
		Payments:  pays,
		Paystack:  &payments.Paystack{},
		Stripe:    &payments.Stripe{},
		PDF:       pdfgen.New(pdfgen.BankDetails{BankName: "First Bank"}),
		now:       func() time.Time { return testNow },
	}
	return h, orders, enquiries, docs, pays
}
