package dfm

import (
	"fmt"
	"strconv"
)

// Rule IDs, in evaluation order.
const (
	RuleComplexity  = "geometric_complexity"
	RuleSurfaceArea = "surface_area"
	RuleMaterial    = "material_substitution"
	RuleProcess     = "alternative_process"
	RuleTolerance   = "tolerance_stack"
	RuleToolAccess  = "tool_access"
)

const (
	complexityThreshold      = 7.0
	surfaceToVolumeThreshold = 10.0
	machinabilityThreshold   = 0.6
	prototypeVolumeThreshold = 50.0
	aspectRatioThreshold     = 4.0
)

// Rule is a single manufacturability heuristic. Applies decides whether the
// rule fires for a part; Suggest is only called when it does.
type Rule struct {
	ID      string
	Applies func(Features) bool
	Suggest func(Features) Suggestion
}

var defaultRules = []Rule{
	{
		ID:      RuleComplexity,
		Applies: func(f Features) bool { return f.Complexity > complexityThreshold },
		Suggest: func(f Features) Suggestion {
			return Suggestion{
				Title: "Geometric Complexity Optimization",
				Description: fmt.Sprintf("The part has high geometric complexity (score: %s/10). "+
					"Parts scoring above 7 usually benefit from feature consolidation. "+
					"Recommend: (1) Merge adjacent pockets where possible, (2) Replace spline curves with circular arcs, "+
					"(3) Standardize boss/hole patterns.", formatScore(f.Complexity)),
				Impact:     ImpactHigh,
				Confidence: 0.92,
				Savings:    rangeOf(f.CurrentCost, 0.18, 0.28),
				Evidence:   "Complexity threshold heuristic for CNC feature consolidation",
			}
		},
	},
	{
		ID: RuleSurfaceArea,
		Applies: func(f Features) bool {
			ratio, ok := f.SurfaceToVolume()
			return ok && ratio > surfaceToVolumeThreshold
		},
		Suggest: func(f Features) Suggestion {
			ratio, _ := f.SurfaceToVolume()
			return Suggestion{
				Title: "Surface Area Reduction Strategy",
				Description: fmt.Sprintf("Surface-to-volume ratio of %.1f indicates extensive finish machining. "+
					"Reduce finishing time with: (1) Internal corner radii ≥3mm to enable larger tools, "+
					"(2) Uniform wall thickness ≥2mm, (3) No cosmetic chamfers on non-visible edges.", ratio),
				Impact:     ImpactHigh,
				Confidence: 0.88,
				Savings:    rangeOf(f.CurrentCost, 0.15, 0.23),
				Evidence:   "Surface-to-volume heuristic for machined and sheet metal parts",
			}
		},
	},
	{
		ID:      RuleMaterial,
		Applies: func(f Features) bool { return f.Machinability < machinabilityThreshold },
		Suggest: func(f Features) Suggestion {
			current := f.MaterialName
			if current == "" {
				current = "selected material"
			}
			return Suggestion{
				Title: "Material Substitution",
				Description: fmt.Sprintf("Consider %s as an alternative to %s. "+
					"A more machinable stock shortens cycle time and reduces tool wear; "+
					"confirm the substitute meets the part's load and environment requirements.",
					Alternatives(f.MaterialName)[0], current),
				Impact:     ImpactHigh,
				Confidence: 0.85,
				Savings:    rangeOf(f.CurrentCost, 0.25, 0.35),
				Evidence:   "Machinability threshold heuristic with a fixed substitution table",
			}
		},
	},
	{
		ID: RuleProcess,
		Applies: func(f Features) bool {
			return f.Volume > 0 && f.Volume < prototypeVolumeThreshold
		},
		Suggest: func(f Features) Suggestion {
			return Suggestion{
				Title: "Alternative Manufacturing Process",
				Description: fmt.Sprintf("Part volume (%.1f cm³) suggests 3D printing (SLS/DMLS) may be more "+
					"cost-effective for prototypes or low-volume production (<100 units), with shorter lead times "+
					"than machining.", f.Volume),
				Impact:     ImpactMedium,
				Confidence: 0.79,
				Savings:    Savings{Low: f.CurrentCost * 0.20, Single: true},
				Evidence:   "Small-volume heuristic for additive versus subtractive process selection",
			}
		},
	},
	{
		ID:      RuleTolerance,
		Applies: func(Features) bool { return true },
		Suggest: func(f Features) Suggestion {
			return Suggestion{
				Title: "Tolerance Stack Analysis",
				Description: "Apply ISO 2768-m (medium) tolerances to non-critical dimensions. " +
					"Unnecessarily tight tolerances typically add an 18-30% premium. " +
					"Suggest: Relax non-functional tolerances to ±0.2mm from default ±0.05mm.",
				Impact:     ImpactHigh,
				Confidence: 0.94,
				Savings:    rangeOf(f.CurrentCost, 0.18, 0.30),
				Evidence:   "General tolerance guidance per ISO 2768",
			}
		},
	},
	{
		ID: RuleToolAccess,
		Applies: func(f Features) bool {
			ratio, ok := f.AspectRatio()
			return ok && ratio > aspectRatioThreshold
		},
		Suggest: func(f Features) Suggestion {
			ratio, _ := f.AspectRatio()
			return Suggestion{
				Title: "Tool Access Optimization",
				Description: fmt.Sprintf("Aspect ratio of %.1f:1 detected, which raises the risk of tool collision "+
					"and deflection. Recommend: (1) Increase pocket clearances to 1.5× tool diameter, "+
					"(2) Add tool relief angles >5°, (3) Evaluate multi-axis machining feasibility.", ratio),
				Impact:     ImpactMedium,
				Confidence: 0.81,
				Savings:    rangeOf(f.CurrentCost, 0.10, 0.15),
				Evidence:   "Bounding-box aspect ratio heuristic for tool reach",
			}
		},
	},
}

// Rules returns the built-in rule set in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

func rangeOf(cost, low, high float64) Savings {
	return Savings{Low: cost * low, High: cost * high}
}

// formatScore prints whole scores without a fractional part ("8", "8.5").
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
