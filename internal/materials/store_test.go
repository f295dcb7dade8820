package materials_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/Simplici0/dfm-advisor/internal/db"
	"github.com/Simplici0/dfm-advisor/internal/materials"
	"github.com/Simplici0/dfm-advisor/internal/migrations"
	"github.com/Simplici0/dfm-advisor/internal/seed"
)

func newSeededStore(t *testing.T) *materials.Store {
	t.Helper()
	ctx := context.Background()

	database, err := db.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	if err := migrations.Up(database, zap.NewNop()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := seed.Run(ctx, database); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store, err := materials.NewStore(database, 4)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestStoreListMaterialsMatchesCatalog(t *testing.T) {
	store := newSeededStore(t)

	got, err := store.ListMaterials(context.Background())
	if err != nil {
		t.Fatalf("ListMaterials: %v", err)
	}
	if !reflect.DeepEqual(got, materials.Catalog()) {
		t.Fatalf("ListMaterials = %+v, want %+v", got, materials.Catalog())
	}
}

func TestStoreListPricesMatchesStaticTable(t *testing.T) {
	store := newSeededStore(t)

	got, err := store.ListPrices(context.Background())
	if err != nil {
		t.Fatalf("ListPrices: %v", err)
	}
	if !reflect.DeepEqual(got, materials.Prices()) {
		t.Fatalf("ListPrices = %+v, want %+v", got, materials.Prices())
	}
	if got["aluminum_7075"].Trend != materials.TrendIncreasing {
		t.Fatalf("aluminum_7075 trend = %s", got["aluminum_7075"].Trend)
	}
}

func TestStoreMaterialLookup(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	m, err := store.Material(ctx, "titanium")
	if err != nil {
		t.Fatalf("Material: %v", err)
	}
	if m.Name != "Titanium Ti-6Al-4V" || m.Machinability != 0.3 {
		t.Fatalf("unexpected material %+v", m)
	}

	cached, err := store.Material(ctx, "titanium")
	if err != nil {
		t.Fatalf("Material (cached): %v", err)
	}
	if cached != m {
		t.Fatalf("cached lookup differs: %+v vs %+v", cached, m)
	}
}

func TestStoreMaterialNotFound(t *testing.T) {
	store := newSeededStore(t)

	_, err := store.Material(context.Background(), "unobtainium")
	if !errors.Is(err, materials.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPricesCoverCatalog(t *testing.T) {
	prices := materials.Prices()
	for _, m := range materials.Catalog() {
		p, ok := prices[m.Key]
		if !ok {
			t.Fatalf("no price for %s", m.Key)
		}
		if p.Price != m.PricePerKg || p.LastUpdated != "2026-01-15" || p.Trend == "" {
			t.Fatalf("unexpected price for %s: %+v", m.Key, p)
		}
	}
}
