package rates

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ComponentRates is the cost per square meter of a component at each priced level.
type ComponentRates struct {
	Standard float64 `json:"standard"`
	Premium  float64 `json:"premium"`
	Luxury   float64 `json:"luxury"`
}

// For returns the rate at q; none (or empty) is always 0.
func (r ComponentRates) For(q QualityLevel) float64 {
	switch q {
	case QualityStandard:
		return r.Standard
	case QualityPremium:
		return r.Premium
	case QualityLuxury:
		return r.Luxury
	default:
		return 0
	}
}

// TablesData is the raw input to NewTables.
type TablesData struct {
	Locations  []LocationRate
	Fallback   LocationRate
	Components map[Component]ComponentRates
	Inclusions map[Component]map[QualityLevel][]string
	Scopes     []Scope
}

// Tables is the immutable rate reference. It is safe for concurrent use because nothing
// mutates it after NewTables returns.
type Tables struct {
	locations  map[string]LocationRate
	locOrder   []LocationRate
	fallback   LocationRate
	components map[Component]ComponentRates
	inclusions map[Component]map[QualityLevel][]string
	scopes     map[ScopeID]Scope
	scopeOrder []ScopeID
}

// NewTables validates data and returns tables owning private copies of it.
func NewTables(data TablesData) (*Tables, error) {
	if data.Fallback.Band.Standard <= 0 {
		return nil, errors.New("rate tables: default location band is missing")
	}
	if len(data.Scopes) == 0 {
		return nil, errors.New("rate tables: no project scopes")
	}

	t := &Tables{
		locations:  make(map[string]LocationRate, len(data.Locations)),
		locOrder:   make([]LocationRate, 0, len(data.Locations)),
		fallback:   data.Fallback,
		components: make(map[Component]ComponentRates, len(Components)),
		inclusions: make(map[Component]map[QualityLevel][]string, len(data.Inclusions)),
		scopes:     make(map[ScopeID]Scope, len(data.Scopes)),
	}

	for _, loc := range data.Locations {
		key := locationKey(loc.Name)
		if key == "" {
			return nil, errors.New("rate tables: location with empty name")
		}
		if _, dup := t.locations[key]; dup {
			return nil, fmt.Errorf("rate tables: duplicate location %q", loc.Name)
		}
		t.locations[key] = loc
		t.locOrder = append(t.locOrder, loc)
	}

	for c, r := range data.Components {
		if !c.Valid() {
			return nil, fmt.Errorf("rate tables: %w", configErr("component", string(c)))
		}
		t.components[c] = r
	}
	for _, c := range Components {
		if _, ok := t.components[c]; !ok {
			return nil, fmt.Errorf("rate tables: no rates for component %q", c)
		}
	}

	for c, levels := range data.Inclusions {
		inner := make(map[QualityLevel][]string, len(levels))
		for q, items := range levels {
			inner[q] = slices.Clone(items)
		}
		t.inclusions[c] = inner
	}

	for _, s := range data.Scopes {
		if s.ID == "" {
			return nil, errors.New("rate tables: scope with empty id")
		}
		if _, dup := t.scopes[s.ID]; dup {
			return nil, fmt.Errorf("rate tables: duplicate scope %q", s.ID)
		}
		for c := range s.Excluded {
			if !c.Valid() {
				return nil, fmt.Errorf("rate tables: scope %q: %w", s.ID, configErr("component", string(c)))
			}
		}
		s.Excluded = maps.Clone(s.Excluded)
		if s.Excluded == nil {
			s.Excluded = map[Component]bool{}
		}
		t.scopes[s.ID] = s
		t.scopeOrder = append(t.scopeOrder, s.ID)
	}

	return t, nil
}

// ResolveLocationRate looks up a market by name. Unrecognized or empty names resolve to
// the default tier; this never fails.
func (t *Tables) ResolveLocationRate(location string) LocationRate {
	if loc, ok := t.locations[locationKey(location)]; ok {
		return loc
	}
	return t.fallback
}

// ResolveComponentRate returns the cost per square meter of c at q.
func (t *Tables) ResolveComponentRate(c Component, q QualityLevel) (float64, error) {
	r, ok := t.components[c]
	if !ok {
		return 0, configErr("component", string(c))
	}
	if q != "" && !q.Valid() {
		return 0, configErr("quality level", string(q))
	}
	return r.For(q), nil
}

// ResolveScope returns the scope's base rate and exclusion set.
func (t *Tables) ResolveScope(id ScopeID) (Scope, error) {
	s, ok := t.scopes[id]
	if !ok {
		return Scope{}, configErr("project scope", string(id))
	}
	s.Excluded = maps.Clone(s.Excluded)
	return s, nil
}

// Locations returns every named location in table order.
func (t *Tables) Locations() []LocationRate {
	return slices.Clone(t.locOrder)
}

// Fallback returns the default-tier location rate.
func (t *Tables) Fallback() LocationRate {
	return t.fallback
}

// ComponentRates returns the rate row of c.
func (t *Tables) ComponentRates(c Component) (ComponentRates, bool) {
	r, ok := t.components[c]
	return r, ok
}

// Scopes returns every scope in table order.
func (t *Tables) Scopes() []Scope {
	out := make([]Scope, 0, len(t.scopeOrder))
	for _, id := range t.scopeOrder {
		s := t.scopes[id]
		s.Excluded = maps.Clone(s.Excluded)
		out = append(out, s)
	}
	return out
}

// Inclusions lists what a component includes at a quality level.
func (t *Tables) Inclusions(c Component, q QualityLevel) []string {
	return slices.Clone(t.inclusions[c][q])
}
