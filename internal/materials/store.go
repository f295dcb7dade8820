package materials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNotFound is returned when a material key is not in the store.
var ErrNotFound = errors.New("material not found")

const defaultCacheSize = 128

// Store reads material reference data from SQLite. Single-material lookups
// are cached; the tables are written only by seeding at startup.
type Store struct {
	db    *sql.DB
	cache *lru.Cache[string, Material]
}

// NewStore returns a Store over db. A non-positive cacheSize uses the default.
func NewStore(db *sql.DB, cacheSize int) (*Store, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, Material](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create material cache: %w", err)
	}
	return &Store{db: db, cache: cache}, nil
}

// ListMaterials returns every material in catalog order.
func (s *Store) ListMaterials(ctx context.Context) ([]Material, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT material_key, name, density, price_per_kg, machinability
		FROM materials
		ORDER BY position, material_key
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	list := make([]Material, 0)
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.Key, &m.Name, &m.Density, &m.PricePerKg, &m.Machinability); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	return list, nil
}

// Material returns the material with the given key, or ErrNotFound.
func (s *Store) Material(ctx context.Context, key string) (Material, error) {
	if m, ok := s.cache.Get(key); ok {
		return m, nil
	}

	m := Material{Key: key}
	err := s.db.QueryRowContext(ctx, `
		SELECT name, density, price_per_kg, machinability
		FROM materials
		WHERE material_key = ?
	`, key).Scan(&m.Name, &m.Density, &m.PricePerKg, &m.Machinability)
	if errors.Is(err, sql.ErrNoRows) {
		return Material{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return Material{}, fmt.Errorf("query material %s: %w", key, err)
	}

	s.cache.Add(key, m)
	return m, nil
}

// ListPrices returns the price table keyed by material key.
func (s *Store) ListPrices(ctx context.Context) (map[string]Price, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT material_key, price, trend, last_updated
		FROM material_prices
	`)
	if err != nil {
		return nil, fmt.Errorf("query material prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]Price)
	for rows.Next() {
		var key string
		var p Price
		if err := rows.Scan(&key, &p.Price, &p.Trend, &p.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan material price: %w", err)
		}
		prices[key] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate material prices: %w", err)
	}

	return prices, nil
}
