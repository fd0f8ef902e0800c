package rates

import (
	"errors"
	"testing"
)

func TestResolveLocationRate_KnownAndFallback(t *testing.T) {
	tables := Default()

	mumbai := tables.ResolveLocationRate("Mumbai")
	if mumbai.Tier != TierMetro || mumbai.Band.Standard != 3000 {
		t.Fatalf("unexpected Mumbai rate: %+v", mumbai)
	}

	if got := tables.ResolveLocationRate("  navi   MUMBAI "); got.Name != "Navi Mumbai" {
		t.Fatalf("expected normalized lookup to find Navi Mumbai, got %+v", got)
	}

	for _, name := range []string{"", "Atlantis", "mumbaii"} {
		got := tables.ResolveLocationRate(name)
		if got.Tier != TierOther || got.Band != (Band{1350, 1750, 2250, 3000}) {
			t.Fatalf("location %q: expected default tier, got %+v", name, got)
		}
	}
}

func TestResolveComponentRate_NoneIsAlwaysZero(t *testing.T) {
	tables := Default()

	for _, c := range Components {
		for _, q := range []QualityLevel{QualityNone, ""} {
			rate, err := tables.ResolveComponentRate(c, q)
			if err != nil {
				t.Fatalf("%s/%q: unexpected error %v", c, q, err)
			}
			if rate != 0 {
				t.Fatalf("%s/%q: rate = %v, want 0", c, q, rate)
			}
		}
	}
}

func TestResolveComponentRate_MonotonicInQuality(t *testing.T) {
	tables := Default()

	for _, c := range Components {
		prev := -1.0
		for _, q := range QualityLevels {
			rate, err := tables.ResolveComponentRate(c, q)
			if err != nil {
				t.Fatalf("%s/%s: %v", c, q, err)
			}
			if rate < prev {
				t.Fatalf("%s: rate at %s (%v) below lower level (%v)", c, q, rate, prev)
			}
			prev = rate
		}
	}
}

func TestResolveComponentRate_UnknownKeys(t *testing.T) {
	tables := Default()

	_, err := tables.ResolveComponentRate(Component("pool"), QualityStandard)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != "component" || cfgErr.Key != "pool" {
		t.Fatalf("expected component configuration error, got %v", err)
	}

	_, err = tables.ResolveComponentRate(Plumbing, QualityLevel("gold"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for quality, got %v", err)
	}
}

func TestResolveScope(t *testing.T) {
	tables := Default()

	s, err := tables.ResolveScope(ScopeInteriorOnly)
	if err != nil {
		t.Fatalf("ResolveScope: %v", err)
	}
	if s.BaseRatePerArea != 0 || s.BaseMonths != 4 {
		t.Fatalf("unexpected interior-only scope: %+v", s)
	}
	for _, c := range []Component{CivilQuality, Plumbing, Electrical, BuildingEnvelope, Elevator} {
		if !s.Excludes(c) {
			t.Fatalf("interior-only should exclude %s", c)
		}
	}
	if s.Excludes(Lighting) {
		t.Fatalf("interior-only should not exclude lighting")
	}

	s.Excluded[Lighting] = true
	again, _ := tables.ResolveScope(ScopeInteriorOnly)
	if again.Excludes(Lighting) {
		t.Fatalf("mutating a resolved scope leaked into the tables")
	}

	if _, err := tables.ResolveScope("villa"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error for unknown scope, got %v", err)
	}
}

func TestCategoryAssignmentIsExhaustive(t *testing.T) {
	counts := map[Category]int{}
	for _, c := range Components {
		counts[c.Category()]++
	}

	want := map[Category]int{
		CategoryConstruction: 1,
		CategoryCore:         4,
		CategoryFinishes:     5,
		CategoryInteriors:    5,
		CategoryLandscape:    1,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Fatalf("category %s has %d components, want %d", cat, counts[cat], n)
		}
	}
}

func TestParseQualityLevel(t *testing.T) {
	cases := map[string]QualityLevel{
		"":          QualityNone,
		"none":      QualityNone,
		" Premium ": QualityPremium,
		"LUXURY":    QualityLuxury,
	}
	for raw, want := range cases {
		got, err := ParseQualityLevel(raw)
		if err != nil || got != want {
			t.Fatalf("ParseQualityLevel(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}

	if _, err := ParseQualityLevel("economy"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestNewTables_Validation(t *testing.T) {
	data := DefaultData()
	data.Fallback = LocationRate{}
	if _, err := NewTables(data); err == nil {
		t.Fatalf("expected error when default location is missing")
	}

	data = DefaultData()
	delete(data.Components, Landscape)
	if _, err := NewTables(data); err == nil {
		t.Fatalf("expected error when a component has no rates")
	}

	data = DefaultData()
	data.Scopes = append(data.Scopes, data.Scopes[0])
	if _, err := NewTables(data); err == nil {
		t.Fatalf("expected error on duplicate scope")
	}
}
