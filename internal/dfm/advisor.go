package dfm

import "strings"

// DefaultSubstitute is suggested when no substitution entry matches.
const DefaultSubstitute = "Aluminum 6061-T6"

type substitution struct {
	match        string
	alternatives []string
}

// Checked in order; the first match wins.
var substitutions = []substitution{
	{match: "Titanium", alternatives: []string{"Aluminum 7075-T6", "High-strength Steel"}},
	{match: "Stainless Steel", alternatives: []string{"Aluminum 6061-T6", "Carbon Steel"}},
	{match: "Aluminum 7075", alternatives: []string{"Aluminum 6061-T6", "Aluminum 2024"}},
}

// Alternatives returns candidate substitutes for a material, best first. The
// lookup is a case-insensitive substring match against the substitution
// table; unknown or empty names get []string{DefaultSubstitute}. The result
// is never empty and is safe to modify.
func Alternatives(materialName string) []string {
	name := strings.ToLower(materialName)
	for _, s := range substitutions {
		if strings.Contains(name, strings.ToLower(s.match)) {
			return append([]string(nil), s.alternatives...)
		}
	}
	return []string{DefaultSubstitute}
}
