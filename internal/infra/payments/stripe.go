package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Stripe struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func (c *Stripe) Mock() bool { return c.SecretKey == "" }

type StripeSession struct {
	ID  string
	URL string
}

// CreateCheckoutSession opens a one-off Stripe Checkout session. Amount is in
// the currency's minor unit. The reference travels as client_reference_id so
// verification can tie the session back to the payment record.
func (c *Stripe) CreateCheckoutSession(ctx context.Context, amountMinor int64, currency, description, reference, successURL, cancelURL string) (StripeSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("client_reference_id", reference)
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(amountMinor, 10))
	form.Set("line_items[0][price_data][product_data][name]", description)

	urlStr := strings.TrimRight(c.BaseURL, "/") + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, strings.NewReader(form.Encode()))
	if err != nil {
		return StripeSession{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return StripeSession{}, fmt.Errorf("stripe create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return StripeSession{}, fmt.Errorf("stripe status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return StripeSession{}, fmt.Errorf("stripe create session: %w", err)
	}
	return StripeSession{ID: out.ID, URL: out.URL}, nil
}

type StripeSessionStatus struct {
	PaymentStatus string // "paid", "unpaid", "no_payment_required"
	AmountMinor   int64
	Currency      string
}

func (c *Stripe) GetSessionStatus(ctx context.Context, sessionID string) (StripeSessionStatus, error) {
	urlStr := strings.TrimRight(c.BaseURL, "/") + "/v1/checkout/sessions/" + sessionID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return StripeSessionStatus{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return StripeSessionStatus{}, fmt.Errorf("stripe session status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return StripeSessionStatus{}, fmt.Errorf("stripe status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out struct {
		PaymentStatus string `json:"payment_status"`
		AmountTotal   int64  `json:"amount_total"`
		Currency      string `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return StripeSessionStatus{}, fmt.Errorf("stripe session status: %w", err)
	}
	return StripeSessionStatus{
		PaymentStatus: out.PaymentStatus,
		AmountMinor:   out.AmountTotal,
		Currency:      out.Currency,
	}, nil
}
