package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tailormade/backend/internal/domain/pricing"
)

// SettingsStore reads and writes the admin-managed pricing configuration.
// Load returns the configured rows merged over the built-in catalog defaults,
// so a fresh database still quotes every standard item.
type SettingsStore struct {
	db *DB
}

func NewSettingsStore(db *DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// defaultBasePrices is the factory catalog. Admin-configured prices override
// these item by item.
var defaultBasePrices = map[string]float64{
	"T-Shirt":           1500,
	"Hoodie":            4500,
	"Joggers":           3500,
	"Varsity Jacket":    8000,
	"Polo":              2500,
	"Polo Shirt":        2500,
	"Button-Down Shirt": 3000,
	"Corporate Shirt":   3200,
	"Coverall":          5000,
	"Hospital Scrubs":   3500,
	"Shorts":            2000,
	"School Uniform":    2500,
	"Security Uniform":  3000,
	"Uniform":           3500,
	"Dress":             4000,
	"Agbada":            12000,
	"Senator Wear":      9000,
	"Kaftan":            7500,
	"Bubu Dress":        8500,
	"Ankara Dress":      6500,
	"Dashiki":           5000,
}

var defaultProductionCosts = pricing.ProductionCosts{
	PrintPerPiece:      500,
	EmbroideryPerPiece: 1200,
}

var defaultQuantityDiscounts = map[int]float64{
	50:  5,
	100: 10,
	200: 15,
	500: 20,
}

// Load returns a fresh pricing snapshot. Callers get their own copy; nothing
// here is cached or shared.
func (s *SettingsStore) Load(ctx context.Context) (pricing.Tables, error) {
	var t pricing.Tables

	t.BasePrices = make(map[string]float64, len(defaultBasePrices))
	for item, price := range defaultBasePrices {
		t.BasePrices[item] = price
	}

	rows, err := s.db.Pool.Query(ctx, `SELECT item, price FROM base_prices`)
	if err != nil {
		return pricing.Tables{}, fmt.Errorf("load base prices: %w", err)
	}
	for rows.Next() {
		var item string
		var price float64
		if err := rows.Scan(&item, &price); err != nil {
			rows.Close()
			return pricing.Tables{}, fmt.Errorf("scan base price: %w", err)
		}
		t.BasePrices[item] = price
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return pricing.Tables{}, fmt.Errorf("load base prices: %w", err)
	}

	rows, err = s.db.Pool.Query(ctx, `SELECT clothing_item, name, price FROM fabric_qualities ORDER BY clothing_item, name`)
	if err != nil {
		return pricing.Tables{}, fmt.Errorf("load fabric qualities: %w", err)
	}
	for rows.Next() {
		var fq pricing.FabricQuality
		if err := rows.Scan(&fq.Item, &fq.Name, &fq.Price); err != nil {
			rows.Close()
			return pricing.Tables{}, fmt.Errorf("scan fabric quality: %w", err)
		}
		t.FabricQualities = append(t.FabricQualities, fq)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return pricing.Tables{}, fmt.Errorf("load fabric qualities: %w", err)
	}

	t.ProductionCosts = defaultProductionCosts
	err = s.db.Pool.QueryRow(ctx, `SELECT print_cost_per_piece, embroidery_cost_per_piece FROM production_costs`).
		Scan(&t.ProductionCosts.PrintPerPiece, &t.ProductionCosts.EmbroideryPerPiece)
	if err != nil && !noRows(err) {
		return pricing.Tables{}, fmt.Errorf("load production costs: %w", err)
	}

	t.QuantityDiscounts = make(map[int]float64)
	rows, err = s.db.Pool.Query(ctx, `SELECT min_quantity, percent FROM quantity_discounts`)
	if err != nil {
		return pricing.Tables{}, fmt.Errorf("load quantity discounts: %w", err)
	}
	for rows.Next() {
		var minQty int
		var percent float64
		if err := rows.Scan(&minQty, &percent); err != nil {
			rows.Close()
			return pricing.Tables{}, fmt.Errorf("scan quantity discount: %w", err)
		}
		t.QuantityDiscounts[minQty] = percent
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return pricing.Tables{}, fmt.Errorf("load quantity discounts: %w", err)
	}
	if len(t.QuantityDiscounts) == 0 {
		for minQty, percent := range defaultQuantityDiscounts {
			t.QuantityDiscounts[minQty] = percent
		}
	}

	return t, nil
}

func (s *SettingsStore) SetBasePrice(ctx context.Context, item string, price float64) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO base_prices (item, price) VALUES ($1, $2)
		ON CONFLICT (item) DO UPDATE SET price = EXCLUDED.price
	`, item, price)
	if err != nil {
		return fmt.Errorf("set base price for %s: %w", item, err)
	}
	return nil
}

func (s *SettingsStore) UpsertFabricQuality(ctx context.Context, fq pricing.FabricQuality) error {
	if fq.Item == "" {
		fq.Item = "default"
	}
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO fabric_qualities (id, clothing_item, name, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (clothing_item, name) DO UPDATE SET price = EXCLUDED.price
	`, uuid.NewString(), fq.Item, fq.Name, fq.Price)
	if err != nil {
		return fmt.Errorf("upsert fabric quality %s/%s: %w", fq.Item, fq.Name, err)
	}
	return nil
}

func (s *SettingsStore) DeleteFabricQuality(ctx context.Context, item, name string) error {
	if item == "" {
		item = "default"
	}
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM fabric_qualities WHERE clothing_item = $1 AND name = $2`, item, name)
	if err != nil {
		return fmt.Errorf("delete fabric quality %s/%s: %w", item, name, err)
	}
	return nil
}

func (s *SettingsStore) SetProductionCosts(ctx context.Context, costs pricing.ProductionCosts) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO production_costs (id, print_cost_per_piece, embroidery_cost_per_piece)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			print_cost_per_piece = EXCLUDED.print_cost_per_piece,
			embroidery_cost_per_piece = EXCLUDED.embroidery_cost_per_piece
	`, costs.PrintPerPiece, costs.EmbroideryPerPiece)
	if err != nil {
		return fmt.Errorf("set production costs: %w", err)
	}
	return nil
}

// ReplaceQuantityDiscounts swaps the whole discount table in one transaction.
func (s *SettingsStore) ReplaceQuantityDiscounts(ctx context.Context, tiers map[int]float64) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replace discounts: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM quantity_discounts`); err != nil {
		return fmt.Errorf("replace discounts: %w", err)
	}
	for minQty, percent := range tiers {
		if _, err := tx.Exec(ctx, `INSERT INTO quantity_discounts (min_quantity, percent) VALUES ($1, $2)`, minQty, percent); err != nil {
			return fmt.Errorf("replace discounts: %w", err)
		}
	}
	return tx.Commit(ctx)
}
