// Package payments holds the thin clients for the two payment providers.
// They cover exactly the calls the order flow needs: initialize a checkout
// and verify its outcome.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Paystack struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

// Mock reports whether the client runs without credentials. In mock mode the
// handlers short-circuit instead of calling out.
func (c *Paystack) Mock() bool { return c.SecretKey == "" }

type PaystackInit struct {
	Reference        string
	AccessCode       string
	AuthorizationURL string
}

// Initialize opens a Paystack transaction. Amount is in the currency's minor
// unit (kobo).
func (c *Paystack) Initialize(ctx context.Context, email string, amountMinor int64, reference string, metadata map[string]any) (PaystackInit, error) {
	payload := map[string]any{
		"email":     email,
		"amount":    amountMinor,
		"reference": reference,
		"metadata":  metadata,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return PaystackInit{}, err
	}

	urlStr := strings.TrimRight(c.BaseURL, "/") + "/transaction/initialize"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return PaystackInit{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return PaystackInit{}, fmt.Errorf("paystack initialize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return PaystackInit{}, fmt.Errorf("paystack status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Reference        string `json:"reference"`
			AccessCode       string `json:"access_code"`
			AuthorizationURL string `json:"authorization_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return PaystackInit{}, fmt.Errorf("paystack initialize: %w", err)
	}
	if !out.Status {
		return PaystackInit{}, fmt.Errorf("paystack initialize: %s", out.Message)
	}

	return PaystackInit{
		Reference:        out.Data.Reference,
		AccessCode:       out.Data.AccessCode,
		AuthorizationURL: out.Data.AuthorizationURL,
	}, nil
}

type PaystackVerification struct {
	Status      string // "success", "failed", "abandoned"
	AmountMinor int64
	Currency    string
}

// Verify fetches the final state of a transaction by reference.
func (c *Paystack) Verify(ctx context.Context, reference string) (PaystackVerification, error) {
	urlStr := strings.TrimRight(c.BaseURL, "/") + "/transaction/verify/" + reference
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return PaystackVerification{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return PaystackVerification{}, fmt.Errorf("paystack verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return PaystackVerification{}, fmt.Errorf("paystack status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Status   string `json:"status"`
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return PaystackVerification{}, fmt.Errorf("paystack verify: %w", err)
	}
	if !out.Status {
		return PaystackVerification{}, fmt.Errorf("paystack verify: %s", out.Message)
	}

	return PaystackVerification{
		Status:      out.Data.Status,
		AmountMinor: out.Data.Amount,
		Currency:    out.Data.Currency,
	}, nil
}
