package rates

// ScopeID identifies a project archetype.
type ScopeID string

const (
	ScopeFullProject   ScopeID = "full-project"
	ScopeFullLandscape ScopeID = "full-landscape"
	ScopeCoreShell     ScopeID = "core-shell"
	ScopeInteriorOnly  ScopeID = "interior-only"
	ScopeRenovation    ScopeID = "renovation"
)

// DefaultScope is the scope of a freshly created estimate.
const DefaultScope = ScopeFullProject

// ReferenceScopeRate is the base rate of a full new-build scope. A scope's structural
// share is its BaseRatePerArea relative to this value.
const ReferenceScopeRate = 850.0

// Scope is a contractual scope of work.
type Scope struct {
	ID              ScopeID
	Label           string
	Description     string
	BaseRatePerArea float64
	// BaseMonths overrides the building-use timeline baseline when non-zero.
	BaseMonths int
	Excluded   map[Component]bool
}

// Excludes reports whether c is forced to zero cost under this scope.
func (s Scope) Excludes(c Component) bool {
	return s.Excluded[c]
}

// StructuralFactor scales the location base rate for this scope.
func (s Scope) StructuralFactor() float64 {
	return s.BaseRatePerArea / ReferenceScopeRate
}

// ExcludedComponents returns the exclusion set in pricing order.
func (s Scope) ExcludedComponents() []Component {
	out := make([]Component, 0, len(s.Excluded))
	for _, c := range Components {
		if s.Excluded[c] {
			out = append(out, c)
		}
	}
	return out
}

func excluding(cs ...Component) map[Component]bool {
	m := make(map[Component]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}
	return m
}
