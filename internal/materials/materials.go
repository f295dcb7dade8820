// Package materials holds the stock material reference data: a catalog of
// physical properties and a static spot-price table, plus a SQLite-backed
// store that serves both.
package materials

// Material describes a stock material offered for machining.
type Material struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Density       float64 `json:"density"`      // g/cm³
	PricePerKg    float64 `json:"price_per_kg"` // currency per kg
	Machinability float64 `json:"machinability"`
}

// Trend is the recent direction of a material's price.
type Trend string

const (
	TrendStable     Trend = "stable"
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// Price is one entry of the material price table. LastUpdated is carried as
// reported and never checked for freshness.
type Price struct {
	Price       float64 `json:"price"`
	Trend       Trend   `json:"trend"`
	LastUpdated string  `json:"last_updated"`
}

const priceDate = "2026-01-15"

var catalog = []Material{
	{Key: "aluminum_6061", Name: "Aluminum 6061-T6", Density: 2.70, PricePerKg: 4.50, Machinability: 0.8},
	{Key: "aluminum_7075", Name: "Aluminum 7075-T6", Density: 2.81, PricePerKg: 8.50, Machinability: 0.7},
	{Key: "steel_mild", Name: "Mild Steel 1018", Density: 7.87, PricePerKg: 1.20, Machinability: 0.6},
	{Key: "steel_stainless", Name: "Stainless Steel 304", Density: 8.00, PricePerKg: 3.80, Machinability: 0.5},
	{Key: "titanium", Name: "Titanium Ti-6Al-4V", Density: 4.43, PricePerKg: 35.00, Machinability: 0.3},
	{Key: "abs_plastic", Name: "ABS Plastic", Density: 1.05, PricePerKg: 3.50, Machinability: 0.95},
	{Key: "nylon", Name: "Nylon PA12", Density: 1.01, PricePerKg: 8.00, Machinability: 0.9},
}

var trends = map[string]Trend{
	"aluminum_6061":   TrendStable,
	"aluminum_7075":   TrendIncreasing,
	"steel_mild":      TrendDecreasing,
	"steel_stainless": TrendStable,
	"titanium":        TrendStable,
	"abs_plastic":     TrendStable,
	"nylon":           TrendStable,
}

// Catalog returns the built-in materials in display order.
func Catalog() []Material {
	out := make([]Material, len(catalog))
	copy(out, catalog)
	return out
}

// Prices returns the built-in price table keyed by material key.
func Prices() map[string]Price {
	out := make(map[string]Price, len(catalog))
	for _, m := range catalog {
		out[m.Key] = Price{Price: m.PricePerKg, Trend: trends[m.Key], LastUpdated: priceDate}
	}
	return out
}
