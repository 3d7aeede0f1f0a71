package handlers

import (
	"context"

	"tailormade/backend/internal/domain/document"
	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/domain/pricing"
	"tailormade/backend/internal/infra/db/postgres"
)

// The store contracts the handlers depend on. The postgres package provides
// the production implementations; tests substitute in-memory fakes.

type SettingsStore interface {
	Load(ctx context.Context) (pricing.Tables, error)
	SetBasePrice(ctx context.Context, item string, price float64) error
	UpsertFabricQuality(ctx context.Context, fq pricing.FabricQuality) error
	DeleteFabricQuality(ctx context.Context, item, name string) error
	SetProductionCosts(ctx context.Context, costs pricing.ProductionCosts) error
	ReplaceQuantityDiscounts(ctx context.Context, tiers map[int]float64) error
}

type OrderStore interface {
	Insert(ctx context.Context, o order.Order) error
	GetByCode(ctx context.Context, code string) (order.Order, error)
	ListByStatus(ctx context.Context, status order.Status, limit int) ([]order.Order, error)
	ListRecent(ctx context.Context, limit int) ([]order.Order, error)
	UpdateStatus(ctx context.Context, code string, status order.Status) error
}

type DocumentStore interface {
	Insert(ctx context.Context, d document.Document) error
	GetByCode(ctx context.Context, code string) (document.Document, error)
	ListByKind(ctx context.Context, kind document.Kind, limit int) ([]document.Document, error)
}

type EnquiryStore interface {
	Insert(ctx context.Context, e document.Enquiry) error
	GetByCode(ctx context.Context, code string) (document.Enquiry, error)
	List(ctx context.Context, limit int) ([]document.Enquiry, error)
	AttachQuote(ctx context.Context, code string, e document.Enquiry) error
	UpdateStatus(ctx context.Context, code string, status document.EnquiryStatus) error
}

type PaymentStore interface {
	Insert(ctx context.Context, p postgres.Payment) error
	GetByReference(ctx context.Context, reference string) (postgres.Payment, error)
	UpdateStatus(ctx context.Context, reference, status string) error
}
