package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"tailormade/backend/internal/domain/document"
)

type DocumentStore struct {
	db *DB
}

func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Insert(ctx context.Context, d document.Document) error {
	items, err := json.Marshal(d.Items)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", d.Code, err)
	}

	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO documents (
			id, code, kind,
			client_name, client_email, client_phone, client_address,
			items, subtotal, tax, discount, total,
			notes, order_code, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		d.ID, d.Code, string(d.Kind),
		d.ClientName, d.ClientEmail, d.ClientPhone, d.ClientAddress,
		items, d.Subtotal, d.Tax, d.Discount, d.Total,
		d.Notes, d.OrderCode, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document %s: %w", d.Code, err)
	}
	return nil
}

const documentColumns = `
	id, code, kind,
	client_name, client_email, client_phone, client_address,
	items, subtotal, tax, discount, total,
	notes, order_code, created_at`

func (s *DocumentStore) GetByCode(ctx context.Context, code string) (document.Document, error) {
	row := s.db.Pool.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE code = $1`, code)
	d, err := scanDocument(row)
	if noRows(err) {
		return document.Document{}, fmt.Errorf("document %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return document.Document{}, fmt.Errorf("get document %s: %w", code, err)
	}
	return d, nil
}

func (s *DocumentStore) ListByKind(ctx context.Context, kind document.Kind, limit int) ([]document.Document, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+documentColumns+` FROM documents
		WHERE kind = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("list %s documents: %w", kind, err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("list %s documents: %w", kind, err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func scanDocument(row rowScanner) (document.Document, error) {
	var d document.Document
	var kind string
	var items []byte

	err := row.Scan(
		&d.ID, &d.Code, &kind,
		&d.ClientName, &d.ClientEmail, &d.ClientPhone, &d.ClientAddress,
		&items, &d.Subtotal, &d.Tax, &d.Discount, &d.Total,
		&d.Notes, &d.OrderCode, &d.CreatedAt,
	)
	if err != nil {
		return document.Document{}, err
	}

	d.Kind = document.Kind(kind)
	if err := json.Unmarshal(items, &d.Items); err != nil {
		return document.Document{}, fmt.Errorf("decode line items: %w", err)
	}
	return d, nil
}
