// Package estimator turns project selections into an itemized construction cost
// estimate, category and phase breakdowns, and a timeline.
//
// Calculate is a pure function of its input record and the rate tables: it performs no
// I/O, keeps no state between calls, and returns bit-identical output for identical input.
package estimator

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/vsstudio/estimator/internal/rates"
)

const (
	// NeutralComplexity is the complexity score with multiplier 1.0.
	NeutralComplexity = 5
	// ComplexityStep is the multiplier shift per point away from NeutralComplexity.
	ComplexityStep = 0.03

	// PlanningCostShare is the fraction of total cost attributed to design and approvals.
	PlanningCostShare = 0.10

	planningTimeShare     = 0.15
	constructionTimeShare = 0.55
	interiorsTimeShare    = 0.30
)

// Calculator computes estimates against a fixed set of rate tables.
type Calculator struct {
	tables *rates.Tables
}

// New returns a calculator over tables. A nil tables uses rates.Default().
func New(tables *rates.Tables) *Calculator {
	if tables == nil {
		tables = rates.Default()
	}
	return &Calculator{tables: tables}
}

// Calculate runs the default calculator.
func Calculate(in ProjectEstimate) (ProjectEstimate, error) {
	return New(nil).Calculate(in)
}

// Calculate returns a copy of in with every derived field replaced. Input fields are
// carried over untouched. A *rates.ConfigurationError is returned, with no partial
// result, when the scope, building use, area unit, a component key or a quality level is
// not recognized.
func (c *Calculator) Calculate(in ProjectEstimate) (ProjectEstimate, error) {
	scope, err := c.tables.ResolveScope(in.ProjectType)
	if err != nil {
		return ProjectEstimate{}, fmt.Errorf("calculate estimate: %w", err)
	}
	use, err := ParseBuildingUse(string(in.BuildingType))
	if err != nil {
		return ProjectEstimate{}, fmt.Errorf("calculate estimate: %w", err)
	}
	unit, err := ParseAreaUnit(string(in.AreaUnit))
	if err != nil {
		return ProjectEstimate{}, fmt.Errorf("calculate estimate: %w", err)
	}
	if err := validateSelections(in.Components); err != nil {
		return ProjectEstimate{}, fmt.Errorf("calculate estimate: %w", err)
	}

	out := in.Inputs()
	out.ComponentCosts = map[rates.Component]float64{}

	areaSqM := ToSqM(in.Area, unit)
	if areaSqM <= 0 {
		return out, nil
	}
	out.AreaSqM = areaSqM

	// Excluded components count as unselected everywhere below, so their selection can
	// never influence the result.
	selected := func(comp rates.Component) rates.QualityLevel {
		if scope.Excludes(comp) {
			return rates.QualityNone
		}
		return in.Quality(comp)
	}
	if nothingSelected(selected) {
		return out, nil
	}

	overall := overallQuality(selected)
	cx := complexityMultiplier(in.Complexity)
	location := c.tables.ResolveLocationRate(in.City)

	structural := location.Band.For(overall) * areaSqM * use.CostMultiplier() * cx * scope.StructuralFactor()

	var cats CategoryBreakdown
	cats.Construction = structural
	for _, comp := range rates.Components {
		q := selected(comp)
		if q.IsNone() {
			continue
		}
		rate, err := c.tables.ResolveComponentRate(comp, q)
		if err != nil {
			return ProjectEstimate{}, fmt.Errorf("calculate estimate: %w", err)
		}
		cost := rate * areaSqM
		if cost == 0 {
			continue
		}
		cats.add(comp.Category(), cost)
		out.ComponentCosts[comp] = cost
	}

	total := cats.Sum()

	out.OverallQuality = overall
	out.StructuralCost = structural
	out.Subtotal = total
	out.TotalCost = total
	out.CategoryBreakdown = cats
	out.PhaseBreakdown = phaseCosts(total, cats)
	out.Timeline = timeline(scope, use, cx)
	return out, nil
}

func validateSelections(sel map[rates.Component]rates.QualityLevel) error {
	for _, comp := range slices.Sorted(maps.Keys(sel)) {
		if _, err := rates.ParseComponent(string(comp)); err != nil {
			return err
		}
		if q := sel[comp]; q != "" && !q.Valid() {
			return &rates.ConfigurationError{Kind: "quality level", Key: string(q)}
		}
	}
	return nil
}

func nothingSelected(selected func(rates.Component) rates.QualityLevel) bool {
	for _, comp := range rates.Components {
		if !selected(comp).IsNone() {
			return false
		}
	}
	return true
}

// overallQuality derives the dominant tier across the structural components: any luxury
// wins, two or more premium give premium, otherwise standard. AC only counts when selected.
func overallQuality(selected func(rates.Component) rates.QualityLevel) rates.QualityLevel {
	levels := []rates.QualityLevel{
		selected(rates.CivilQuality),
		selected(rates.Plumbing),
		selected(rates.Electrical),
	}
	if ac := selected(rates.AC); !ac.IsNone() {
		levels = append(levels, ac)
	}

	premium := 0
	for _, q := range levels {
		switch q {
		case rates.QualityLuxury:
			return rates.QualityLuxury
		case rates.QualityPremium:
			premium++
		}
	}
	if premium >= 2 {
		return rates.QualityPremium
	}
	return rates.QualityStandard
}

// complexityMultiplier is linear around the neutral score. Zero means unset and is
// treated as neutral; other values are not clamped.
func complexityMultiplier(score int) float64 {
	if score == 0 {
		return 1
	}
	return 1 + float64(score-NeutralComplexity)*ComplexityStep
}

func phaseCosts(total float64, cats CategoryBreakdown) PhaseBreakdown {
	planning := total * PlanningCostShare
	rest := total - planning

	build := cats.Construction + cats.Core
	fitout := cats.Finishes + cats.Interiors + cats.Landscape
	if build+fitout <= 0 {
		return PhaseBreakdown{}
	}

	construction := rest * build / (build + fitout)
	return PhaseBreakdown{
		Planning:     planning,
		Construction: construction,
		Interiors:    rest - construction,
	}
}

func timeline(scope rates.Scope, use BuildingUse, cx float64) Timeline {
	base := scope.BaseMonths
	if base <= 0 {
		base = use.BaseMonths()
	}
	months := float64(base)

	phases := PhaseMonths{
		Planning:     wholeMonths(months * planningTimeShare),
		Construction: wholeMonths(months * constructionTimeShare * cx),
		Interiors:    wholeMonths(months * interiorsTimeShare * cx),
	}
	return Timeline{
		TotalMonths: phases.Planning + phases.Construction + phases.Interiors,
		Phases:      phases,
	}
}

// wholeMonths rounds up to a whole month with a floor of one. The epsilon keeps products
// like 10*0.3 from rounding up to an extra month.
func wholeMonths(v float64) int {
	m := int(math.Ceil(v - 1e-9))
	if m < 1 {
		return 1
	}
	return m
}
