// Package dfm evaluates a part against a fixed set of design-for-manufacturability
// heuristics and returns advisory suggestions. Evaluation is pure: no I/O, no
// shared state, and the descriptor is never modified.
package dfm

// Engine runs an ordered rule set.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine over rules, or over the built-in rules when
// none are given.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = Rules()
	}
	return &Engine{rules: rules}
}

// Analyze evaluates every rule in declaration order and returns one
// suggestion per rule that fires. The result is never nil.
func (e *Engine) Analyze(part PartDescriptor) []Suggestion {
	return e.Evaluate(Extract(part))
}

// Evaluate is Analyze over already-resolved features.
func (e *Engine) Evaluate(f Features) []Suggestion {
	suggestions := make([]Suggestion, 0, len(e.rules))
	for _, r := range e.rules {
		if !r.Applies(f) {
			continue
		}
		s := r.Suggest(f)
		s.Rule = r.ID
		suggestions = append(suggestions, s)
	}
	return suggestions
}

var defaultEngine = NewEngine()

// Analyze runs the built-in rule set.
func Analyze(part PartDescriptor) []Suggestion {
	return defaultEngine.Analyze(part)
}
