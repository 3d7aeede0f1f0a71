package postgres

import (
	"context"
	"fmt"
	"time"
)

// Payment is one payment attempt against an order. Reference is the
// provider-facing identifier used for verification callbacks.
type Payment struct {
	ID        string
	Reference string
	Provider  string
	// ProviderRef is the provider-side identifier when it differs from our
	// reference (the Stripe checkout-session id).
	ProviderRef string
	Email       string
	Amount      float64
	OrderCode   string
	Status      string
	IsMock      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PaymentStore struct {
	db *DB
}

func NewPaymentStore(db *DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) Insert(ctx context.Context, p Payment) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO payments (
			id, reference, provider, provider_ref, email, amount, order_code,
			status, is_mock, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, p.ID, p.Reference, p.Provider, p.ProviderRef, p.Email, p.Amount, p.OrderCode,
		p.Status, p.IsMock, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payment %s: %w", p.Reference, err)
	}
	return nil
}

func (s *PaymentStore) GetByReference(ctx context.Context, reference string) (Payment, error) {
	var p Payment
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, reference, provider, provider_ref, email, amount, order_code,
		       status, is_mock, created_at, updated_at
		FROM payments WHERE reference = $1
	`, reference).Scan(
		&p.ID, &p.Reference, &p.Provider, &p.ProviderRef, &p.Email, &p.Amount, &p.OrderCode,
		&p.Status, &p.IsMock, &p.CreatedAt, &p.UpdatedAt,
	)
	if noRows(err) {
		return Payment{}, fmt.Errorf("payment %s: %w", reference, ErrNotFound)
	}
	if err != nil {
		return Payment{}, fmt.Errorf("get payment %s: %w", reference, err)
	}
	return p, nil
}

func (s *PaymentStore) UpdateStatus(ctx context.Context, reference, status string) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE payments SET status = $1, updated_at = $2 WHERE reference = $3
	`, status, time.Now().UTC(), reference)
	if err != nil {
		return fmt.Errorf("update payment %s status: %w", reference, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", reference, ErrNotFound)
	}
	return nil
}
