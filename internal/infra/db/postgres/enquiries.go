package postgres

import (
	"context"
	"fmt"
	"time"

	"tailormade/backend/internal/domain/document"
)

type EnquiryStore struct {
	db *DB
}

func NewEnquiryStore(db *DB) *EnquiryStore {
	return &EnquiryStore{db: db}
}

func (s *EnquiryStore) Insert(ctx context.Context, e document.Enquiry) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO enquiries (
			id, code, customer_name, customer_email, customer_phone,
			item_description, quantity, specifications, reference_image_url,
			target_price, deadline, notes, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		e.ID, e.Code, e.CustomerName, e.CustomerEmail, e.CustomerPhone,
		e.ItemDescription, e.Quantity, e.Specifications, e.ReferenceImageURL,
		e.TargetPrice, e.Deadline, e.Notes, string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enquiry %s: %w", e.Code, err)
	}
	return nil
}

const enquiryColumns = `
	id, code, customer_name, customer_email, customer_phone,
	item_description, quantity, specifications, reference_image_url,
	target_price, deadline, notes, status,
	quote_code, quoted_unit_price, quoted_total_price,
	estimated_prod_days, valid_until, notes_to_client,
	created_at, updated_at`

func (s *EnquiryStore) GetByCode(ctx context.Context, code string) (document.Enquiry, error) {
	row := s.db.Pool.QueryRow(ctx, `SELECT `+enquiryColumns+` FROM enquiries WHERE code = $1`, code)
	e, err := scanEnquiry(row)
	if noRows(err) {
		return document.Enquiry{}, fmt.Errorf("enquiry %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return document.Enquiry{}, fmt.Errorf("get enquiry %s: %w", code, err)
	}
	return e, nil
}

func (s *EnquiryStore) List(ctx context.Context, limit int) ([]document.Enquiry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+enquiryColumns+` FROM enquiries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []document.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("list enquiries: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

// AttachQuote records the admin's answer to an enquiry and moves it to
// quoted.
func (s *EnquiryStore) AttachQuote(ctx context.Context, code string, e document.Enquiry) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE enquiries SET
			quote_code = $1, quoted_unit_price = $2, quoted_total_price = $3,
			estimated_prod_days = $4, valid_until = $5, notes_to_client = $6,
			status = $7, updated_at = $8
		WHERE code = $9
	`,
		e.QuoteCode, e.QuotedUnitPrice, e.QuotedTotalPrice,
		e.EstimatedProdDays, e.ValidUntil, e.NotesToClient,
		string(document.EnquiryQuoted), time.Now().UTC(), code,
	)
	if err != nil {
		return fmt.Errorf("attach quote to enquiry %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enquiry %s: %w", code, ErrNotFound)
	}
	return nil
}

func (s *EnquiryStore) UpdateStatus(ctx context.Context, code string, status document.EnquiryStatus) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE enquiries SET status = $1, updated_at = $2 WHERE code = $3
	`, string(status), time.Now().UTC(), code)
	if err != nil {
		return fmt.Errorf("update enquiry %s status: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("enquiry %s: %w", code, ErrNotFound)
	}
	return nil
}

func scanEnquiry(row rowScanner) (document.Enquiry, error) {
	var e document.Enquiry
	var status string

	err := row.Scan(
		&e.ID, &e.Code, &e.CustomerName, &e.CustomerEmail, &e.CustomerPhone,
		&e.ItemDescription, &e.Quantity, &e.Specifications, &e.ReferenceImageURL,
		&e.TargetPrice, &e.Deadline, &e.Notes, &status,
		&e.QuoteCode, &e.QuotedUnitPrice, &e.QuotedTotalPrice,
		&e.EstimatedProdDays, &e.ValidUntil, &e.NotesToClient,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return document.Enquiry{}, err
	}
	e.Status = document.EnquiryStatus(status)
	return e, nil
}
