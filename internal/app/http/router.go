package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tailormade/backend/internal/app/config"
	"tailormade/backend/internal/app/http/handlers"
	"tailormade/backend/internal/app/http/middleware"
	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/infra/db/postgres"
)

func NewRouter(cfg config.Config, db *postgres.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(db, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {

		// Public storefront surface.
		r.Post("/quote/calculate", h.CalculateQuote)
		r.Get("/bank-details", h.BankDetails)
		r.Get("/orders/{code}", h.GetOrder)
		r.Post("/enquiries", h.CreateEnquiry)

		// Order intake and payments, called by the trusted frontend.
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/orders/bulk", h.CreateBulkOrder)
			r.Post("/orders/pod", h.CreateItemizedOrder(order.TypePOD))
			r.Post("/orders/boutique", h.CreateItemizedOrder(order.TypeBoutique))
			r.Post("/orders/fabric", h.CreateItemizedOrder(order.TypeFabric))
			r.Post("/orders/souvenir", h.CreateItemizedOrder(order.TypeSouvenir))

			r.Post("/payments/initialize", h.InitializePayment)
			r.Get("/payments/verify/{reference}", h.VerifyPayment)
		})

		// Back office.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.AdminToken))

			r.Get("/settings/pricing", h.GetPricingSettings)
			r.Put("/settings/base-price", h.SetBasePrice)
			r.Put("/settings/fabric-quality", h.UpsertFabricQuality)
			r.Delete("/settings/fabric-quality", h.DeleteFabricQuality)
			r.Put("/settings/production-costs", h.SetProductionCosts)
			r.Put("/settings/quantity-discounts", h.ReplaceQuantityDiscounts)

			r.Post("/documents", h.CreateDocument)
			r.Get("/documents", h.ListDocuments)
			r.Get("/documents/{code}", h.GetDocument)
			r.Get("/documents/{code}/pdf", h.DownloadDocumentPDF)

			r.Get("/enquiries", h.ListEnquiries)
			r.Post("/enquiries/{code}/quote", h.QuoteEnquiry)
			r.Put("/enquiries/{code}/status", h.UpdateEnquiryStatus)

			r.Get("/orders", h.ListRecentOrders)
			r.Put("/orders/{code}/status", h.UpdateOrderStatus)
			r.Get("/production/dashboard", h.ProductionDashboard)
		})
	})

	return r
}
