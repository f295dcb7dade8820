package dfm

import (
	"encoding/json"
	"fmt"
)

// PartDescriptor is the caller-supplied geometry and material summary of a
// single part. Every field is optional; see Extract for the defaults applied
// to missing values.
type PartDescriptor struct {
	Geometry    *Geometry `json:"geometry,omitempty"`
	Material    *Material `json:"material,omitempty"`
	CurrentCost *float64  `json:"currentCost,omitempty"`
}

// Geometry holds the measured shape metrics of a part.
type Geometry struct {
	ComplexityScore *float64     `json:"complexityScore,omitempty"` // 0-10
	Volume          *float64     `json:"volume,omitempty"`          // cm³
	SurfaceArea     *float64     `json:"surfaceArea,omitempty"`     // cm²
	BoundingBox     *BoundingBox `json:"boundingBox,omitempty"`
}

// BoundingBox is the axis-aligned extent of a part.
type BoundingBox struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

// Material identifies the stock a part is cut from.
type Material struct {
	Name          string   `json:"name,omitempty"`
	Machinability *float64 `json:"machinability,omitempty"` // 0-1
}

// Float returns a pointer to v, for building descriptors in code.
func Float(v float64) *float64 {
	return &v
}

// Impact grades how much a suggestion is expected to move unit cost.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Savings is an estimated per-unit saving derived from the baseline cost.
// A Single saving carries only Low.
type Savings struct {
	Low    float64
	High   float64
	Single bool
}

// String renders the saving the way it is shown to users.
func (s Savings) String() string {
	if s.Single {
		return fmt.Sprintf("$%.2f for prototype quantities", s.Low)
	}
	return fmt.Sprintf("$%.2f - $%.2f per unit", s.Low, s.High)
}

// MarshalJSON encodes the saving as its display string.
func (s Savings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Suggestion is one advisory produced by a rule.
type Suggestion struct {
	Rule        string  `json:"-"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Impact      Impact  `json:"impact"`
	Confidence  float64 `json:"confidence"`
	Savings     Savings `json:"savings"`
	Evidence    string  `json:"evidence"`
}
