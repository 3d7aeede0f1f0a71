package handlers

import (
	"net/http"
	"time"

	"tailormade/backend/internal/app/config"
	"tailormade/backend/internal/domain/document/pdf"
	pdfgen "tailormade/backend/internal/domain/document/pdf/gofpdf"
	"tailormade/backend/internal/domain/sequence"
	"tailormade/backend/internal/infra/db/postgres"
	"tailormade/backend/internal/infra/payments"
)

type Handlers struct {
	Cfg  config.Config
	HTTP *http.Client

	Sequences *sequence.Allocator
	Settings  SettingsStore
	Orders    OrderStore
	Documents DocumentStore
	Enquiries EnquiryStore
	Payments  PaymentStore

	Paystack *payments.Paystack
	Stripe   *payments.Stripe
	PDF      pdf.Generator

	now func() time.Time
}

func New(db *postgres.DB, cfg config.Config) *Handlers {
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	return &Handlers{
		Cfg:  cfg,
		HTTP: httpClient,

		Sequences: sequence.NewAllocator(postgres.NewCounterStore(db)),
		Settings:  postgres.NewSettingsStore(db),
		Orders:    postgres.NewOrderStore(db),
		Documents: postgres.NewDocumentStore(db),
		Enquiries: postgres.NewEnquiryStore(db),
		Payments:  postgres.NewPaymentStore(db),

		Paystack: &payments.Paystack{
			BaseURL:   cfg.PaystackBaseURL,
			SecretKey: cfg.PaystackSecretKey,
			HTTP:      httpClient,
		},
		Stripe: &payments.Stripe{
			BaseURL:   cfg.StripeBaseURL,
			SecretKey: cfg.StripeSecretKey,
			HTTP:      httpClient,
		},
		PDF: pdfgen.New(pdfgen.BankDetails{
			BankName:      cfg.BankName,
			AccountName:   cfg.BankAccountName,
			AccountNumber: cfg.BankAccountNumber,
		}),

		now: time.Now,
	}
}
