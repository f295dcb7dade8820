package dfm

import "math"

const (
	defaultComplexity    = 0.0
	defaultVolume        = 0.0
	defaultSurfaceArea   = 0.0
	defaultAxis          = 1.0
	defaultMachinability = 1.0
	defaultCurrentCost   = 0.0
)

// Features is a PartDescriptor with every missing field replaced by its
// default. Rules only ever see Features.
type Features struct {
	Complexity    float64
	Volume        float64
	SurfaceArea   float64
	BoxX          float64
	BoxY          float64
	BoxZ          float64
	MaterialName  string
	Machinability float64
	CurrentCost   float64
}

// Extract resolves a descriptor into Features. It never fails: an absent
// value is read as "unknown" and replaced by a benign default.
func Extract(part PartDescriptor) Features {
	f := Features{
		Complexity:    defaultComplexity,
		Volume:        defaultVolume,
		SurfaceArea:   defaultSurfaceArea,
		BoxX:          defaultAxis,
		BoxY:          defaultAxis,
		BoxZ:          defaultAxis,
		Machinability: defaultMachinability,
		CurrentCost:   valueOr(part.CurrentCost, defaultCurrentCost),
	}

	if g := part.Geometry; g != nil {
		f.Complexity = valueOr(g.ComplexityScore, defaultComplexity)
		f.Volume = valueOr(g.Volume, defaultVolume)
		f.SurfaceArea = valueOr(g.SurfaceArea, defaultSurfaceArea)
		if b := g.BoundingBox; b != nil {
			f.BoxX = valueOr(b.X, defaultAxis)
			f.BoxY = valueOr(b.Y, defaultAxis)
			f.BoxZ = valueOr(b.Z, defaultAxis)
		}
	}

	if m := part.Material; m != nil {
		f.MaterialName = m.Name
		f.Machinability = valueOr(m.Machinability, defaultMachinability)
	}

	return f
}

// SurfaceToVolume returns surface area over volume. ok is false when the
// volume is not positive or the ratio is not finite.
func (f Features) SurfaceToVolume() (ratio float64, ok bool) {
	if f.Volume <= 0 {
		return 0, false
	}
	ratio = f.SurfaceArea / f.Volume
	return ratio, isFinite(ratio)
}

// AspectRatio returns the longest bounding-box axis over the shortest. ok is
// false when any axis is not positive or the ratio is not finite.
func (f Features) AspectRatio() (ratio float64, ok bool) {
	longest := math.Max(f.BoxX, math.Max(f.BoxY, f.BoxZ))
	shortest := math.Min(f.BoxX, math.Min(f.BoxY, f.BoxZ))
	if shortest <= 0 {
		return 0, false
	}
	ratio = longest / shortest
	return ratio, isFinite(ratio)
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
