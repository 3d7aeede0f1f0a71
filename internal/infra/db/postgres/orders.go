package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tailormade/backend/internal/domain/order"
	"tailormade/backend/internal/domain/pricing"
)

type OrderStore struct {
	db *DB
}

func NewOrderStore(db *DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Insert(ctx context.Context, o order.Order) error {
	sizes, err := json.Marshal(o.SizeBreakdown)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.Code, err)
	}
	breakdown, err := json.Marshal(o.Breakdown)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.Code, err)
	}

	_, err = s.db.Pool.Exec(ctx, `
		INSERT INTO orders (
			id, code, order_type, status,
			customer_name, customer_email, customer_phone,
			clothing_item, quantity, print_option, fabric_quality,
			size_breakdown, breakdown, estimated_days,
			delivery_address, notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		o.ID, o.Code, string(o.Type), string(o.Status),
		o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.ClothingItem, o.Quantity, string(o.PrintOption), o.FabricQuality,
		sizes, breakdown, o.EstimatedDays,
		o.DeliveryAddress, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.Code, err)
	}
	return nil
}

const orderColumns = `
	id, code, order_type, status,
	customer_name, customer_email, customer_phone,
	clothing_item, quantity, print_option, fabric_quality,
	size_breakdown, breakdown, estimated_days,
	delivery_address, notes, created_at, updated_at`

func (s *OrderStore) GetByCode(ctx context.Context, code string) (order.Order, error) {
	row := s.db.Pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE code = $1`, code)
	o, err := scanOrder(row)
	if noRows(err) {
		return order.Order{}, fmt.Errorf("order %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("get order %s: %w", code, err)
	}
	return o, nil
}

func (s *OrderStore) ListByStatus(ctx context.Context, status order.Status, limit int) ([]order.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("list orders by status %s: %w", status, err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list orders by status %s: %w", status, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *OrderStore) ListRecent(ctx context.Context, limit int) ([]order.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("list recent orders: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *OrderStore) UpdateStatus(ctx context.Context, code string, status order.Status) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = $2 WHERE code = $3
	`, string(status), time.Now().UTC(), code)
	if err != nil {
		return fmt.Errorf("update order %s status: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", code, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (order.Order, error) {
	var o order.Order
	var typ, status, printOpt string
	var sizes, breakdown []byte

	err := row.Scan(
		&o.ID, &o.Code, &typ, &status,
		&o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.ClothingItem, &o.Quantity, &printOpt, &o.FabricQuality,
		&sizes, &breakdown, &o.EstimatedDays,
		&o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return order.Order{}, err
	}

	o.Type = order.Type(typ)
	o.Status = order.Status(status)
	o.PrintOption = pricing.PrintOption(printOpt)
	if err := json.Unmarshal(sizes, &o.SizeBreakdown); err != nil {
		return order.Order{}, fmt.Errorf("decode size breakdown: %w", err)
	}
	if err := json.Unmarshal(breakdown, &o.Breakdown); err != nil {
		return order.Order{}, fmt.Errorf("decode price breakdown: %w", err)
	}
	return o, nil
}
