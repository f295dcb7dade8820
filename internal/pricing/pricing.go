package pricing

import "math"

// PartInput represents the part-level inputs used to estimate machining cost.
type PartInput struct {
	VolumeCm3       float64
	BoxXmm          float64
	BoxYmm          float64
	BoxZmm          float64
	ComplexityScore float64
}

// MaterialInput represents the stock material properties used by the estimate.
type MaterialInput struct {
	DensityGPerCm3 float64
	PricePerKg     float64
	Machinability  float64
}

// Rates represents shop-wide rates shared across estimates.
type Rates struct {
	LaborHourlyRate   float64
	MachineHourlyRate float64
	SetupCost         float64
	BatchSize         float64
	RemovalRateCm3Min float64
}

// DefaultRates returns the rates used when none are configured.
func DefaultRates() Rates {
	return Rates{
		LaborHourlyRate:   60,
		MachineHourlyRate: 80,
		SetupCost:         150,
		BatchSize:         100,
		RemovalRateCm3Min: 50,
	}
}

// Breakdown contains all intermediate and line-item values of the estimate.
// Cost fields are per unit.
type Breakdown struct {
	MassKg           float64 `json:"mass_kg"`
	MaterialCost     float64 `json:"material_cost"`
	MachiningMinutes float64 `json:"machining_minutes"`
	LaborCost        float64 `json:"labor_cost"`
	SetupCost        float64 `json:"setup_cost"`
	MachineCost      float64 `json:"machine_cost"`
}

// Totals contains roll-up values from the estimate.
type Totals struct {
	Total float64 `json:"total"`
}

// Result groups the full estimate output, including detailed breakdown and totals.
type Result struct {
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
}

// Estimate computes the per-unit cost of machining a part from bar stock.
// Machining time is the stock removed from the bounding box at the removal
// rate, scaled up for complexity and down for machinability. Degenerate
// inputs never fail and never produce a negative cost. A non-positive volume
// weighs nothing, a box with a non-positive axis has nothing to remove, and
// negative complexity, batch or machinability fall back to neutral values.
func Estimate(part PartInput, material MaterialInput, rates Rates) Result {
	batch := rates.BatchSize
	if batch <= 0 {
		batch = 1
	}
	machinability := material.Machinability
	if machinability <= 0 {
		machinability = 1
	}

	volume := math.Max(0, part.VolumeCm3)
	complexity := math.Max(0, part.ComplexityScore)

	massKg := volume * material.DensityGPerCm3 / 1000.0
	materialCost := massKg * material.PricePerKg

	minutes := 0.0
	if rates.RemovalRateCm3Min > 0 {
		boundingVolume := 0.0
		if part.BoxXmm > 0 && part.BoxYmm > 0 && part.BoxZmm > 0 {
			boundingVolume = part.BoxXmm * part.BoxYmm * part.BoxZmm / 1000.0
		}
		removed := math.Max(0, boundingVolume-volume)
		complexityMultiplier := 1.0 + (complexity/10.0)*0.5
		minutes = removed / rates.RemovalRateCm3Min * complexityMultiplier / machinability
	}

	laborCost := (minutes / 60.0) * rates.LaborHourlyRate / batch
	machineCost := (minutes / 60.0) * rates.MachineHourlyRate / batch
	setupCost := rates.SetupCost / batch

	total := materialCost + laborCost + setupCost + machineCost

	return Result{
		Breakdown: Breakdown{
			MassKg:           massKg,
			MaterialCost:     materialCost,
			MachiningMinutes: minutes,
			LaborCost:        laborCost,
			SetupCost:        setupCost,
			MachineCost:      machineCost,
		},
		Totals: Totals{Total: total},
	}
}
