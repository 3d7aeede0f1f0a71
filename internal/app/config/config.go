package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	InternalToken   string
	AdminToken      string
	CORSAllowOrigin string

	PaystackSecretKey string
	PaystackBaseURL   string
	StripeSecretKey   string
	StripeBaseURL     string
	Currency          string
	PaymentReturnURL  string

	BankName          string
	BankAccountName   string
	BankAccountNumber string
}

func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     mustEnv("DATABASE_URL"),
		InternalToken:   mustEnv("INTERNAL_TOKEN"),
		AdminToken:      mustEnv("ADMIN_TOKEN"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),

		// Empty provider keys switch the payment flow to mock mode.
		PaystackSecretKey: env("PAYSTACK_SECRET_KEY", ""),
		PaystackBaseURL:   env("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		StripeSecretKey:   env("STRIPE_SECRET_KEY", ""),
		StripeBaseURL:     env("STRIPE_BASE_URL", "https://api.stripe.com"),
		Currency:          env("CURRENCY", "NGN"),
		PaymentReturnURL:  env("PAYMENT_RETURN_URL", "http://localhost:3000/payment/callback"),

		BankName:          env("BANK_NAME", ""),
		BankAccountName:   env("BANK_ACCOUNT_NAME", ""),
		BankAccountNumber: env("BANK_ACCOUNT_NUMBER", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
