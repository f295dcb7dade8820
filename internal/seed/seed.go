package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/dfm-advisor/internal/materials"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run loads the built-in material catalog and price table in an idempotent way.
// Existing rows are left untouched.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	prices := materials.Prices()

	for i, m := range materials.Catalog() {
		if err := ensureMaterial(ctx, tx, i, m, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
		if err := ensurePrice(ctx, tx, m.Key, prices[m.Key], &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureMaterial(ctx context.Context, tx *sql.Tx, position int, m materials.Material, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM materials WHERE material_key = ?)`, m.Key).Scan(&exists); err != nil {
		return fmt.Errorf("check material %s existence: %w", m.Key, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO materials (material_key, position, name, density, price_per_kg, machinability)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.Key, position, m.Name, m.Density, m.PricePerKg, m.Machinability); err != nil {
		return fmt.Errorf("insert material %s: %w", m.Key, err)
	}
	stats.Inserts++
	return nil
}

func ensurePrice(ctx context.Context, tx *sql.Tx, key string, p materials.Price, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM material_prices WHERE material_key = ?)`, key).Scan(&exists); err != nil {
		return fmt.Errorf("check price %s existence: %w", key, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO material_prices (material_key, price, trend, last_updated)
		VALUES (?, ?, ?, ?)
	`, key, p.Price, string(p.Trend), p.LastUpdated); err != nil {
		return fmt.Errorf("insert price %s: %w", key, err)
	}
	stats.Inserts++
	return nil
}
