package estimator

import (
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/vsstudio/estimator/internal/rates"
)

// SqFtToSqM converts square feet to square meters.
const SqFtToSqM = 0.092903

// BuildingUse is the building-use category of a project.
type BuildingUse string

const (
	Residential BuildingUse = "residential"
	Commercial  BuildingUse = "commercial"
	MixedUse    BuildingUse = "mixed-use"
)

// ParseBuildingUse resolves a building use; empty means residential.
func ParseBuildingUse(raw string) (BuildingUse, error) {
	switch u := BuildingUse(strings.ToLower(strings.TrimSpace(raw))); u {
	case "":
		return Residential, nil
	case Residential, Commercial, MixedUse:
		return u, nil
	}
	return "", &rates.ConfigurationError{Kind: "building use", Key: raw}
}

// CostMultiplier scales the structural base rate.
func (u BuildingUse) CostMultiplier() float64 {
	switch u {
	case Commercial:
		return 1.10
	case MixedUse:
		return 1.15
	default:
		return 1.00
	}
}

// BaseMonths is the unadjusted project duration for this use.
func (u BuildingUse) BaseMonths() int {
	switch u {
	case Commercial:
		return 10
	case MixedUse:
		return 12
	default:
		return 8
	}
}

// AreaUnit is the unit the floor area was entered in.
type AreaUnit string

const (
	SqFt AreaUnit = "sqft"
	SqM  AreaUnit = "sqm"
)

// ParseAreaUnit resolves an area unit; empty means square meters.
func ParseAreaUnit(raw string) (AreaUnit, error) {
	switch u := AreaUnit(strings.ToLower(strings.TrimSpace(raw))); u {
	case "":
		return SqM, nil
	case SqFt, SqM:
		return u, nil
	}
	return "", &rates.ConfigurationError{Kind: "area unit", Key: raw}
}

// ToSqM converts area expressed in u to square meters.
func ToSqM(area float64, u AreaUnit) float64 {
	if u == SqFt {
		return area * SqFtToSqM
	}
	return area
}

// FromSqM converts square meters back to u for display.
func FromSqM(areaSqM float64, u AreaUnit) float64 {
	if u == SqFt {
		return areaSqM / SqFtToSqM
	}
	return areaSqM
}

// CategoryBreakdown splits the total cost into cost categories.
type CategoryBreakdown struct {
	Construction float64 `json:"construction"`
	Core         float64 `json:"core"`
	Finishes     float64 `json:"finishes"`
	Interiors    float64 `json:"interiors"`
	Landscape    float64 `json:"landscape"`
}

// Sum adds every category.
func (b CategoryBreakdown) Sum() float64 {
	return b.Construction + b.Core + b.Finishes + b.Interiors + b.Landscape
}

func (b *CategoryBreakdown) add(cat rates.Category, cost float64) {
	switch cat {
	case rates.CategoryConstruction:
		b.Construction += cost
	case rates.CategoryCore:
		b.Core += cost
	case rates.CategoryFinishes:
		b.Finishes += cost
	case rates.CategoryInteriors:
		b.Interiors += cost
	case rates.CategoryLandscape:
		b.Landscape += cost
	}
}

// PhaseBreakdown splits the total cost across time phases.
type PhaseBreakdown struct {
	Planning     float64 `json:"planning"`
	Construction float64 `json:"construction"`
	Interiors    float64 `json:"interiors"`
}

// PhaseMonths holds whole-month durations per phase.
type PhaseMonths struct {
	Planning     int `json:"planning"`
	Construction int `json:"construction"`
	Interiors    int `json:"interiors"`
}

// Timeline is the derived project duration.
type Timeline struct {
	TotalMonths int         `json:"totalMonths"`
	Phases      PhaseMonths `json:"phases"`
}

// ProjectEstimate is the record owned by the form-state holder. Input fields are set by
// the caller; derived fields are replaced wholesale by Calculate and ignored on input.
type ProjectEstimate struct {
	ID           string                                `json:"id"`
	State        string                                `json:"state"`
	City         string                                `json:"city"`
	ProjectType  rates.ScopeID                         `json:"projectType"`
	BuildingType BuildingUse                           `json:"buildingType"`
	Area         float64                               `json:"area"`
	AreaUnit     AreaUnit                              `json:"areaUnit"`
	Complexity   int                                   `json:"complexity"`
	Components   map[rates.Component]rates.QualityLevel `json:"components"`

	AreaSqM           float64                     `json:"areaSqM"`
	OverallQuality    rates.QualityLevel          `json:"overallQuality"`
	StructuralCost    float64                     `json:"structuralCost"`
	Subtotal          float64                     `json:"subtotal"`
	TotalCost         float64                     `json:"totalCost"`
	ComponentCosts    map[rates.Component]float64 `json:"componentCosts"`
	CategoryBreakdown CategoryBreakdown           `json:"categoryBreakdown"`
	PhaseBreakdown    PhaseBreakdown              `json:"phaseBreakdown"`
	Timeline          Timeline                    `json:"timeline"`
}

// NewProjectEstimate returns a record with a fresh id. Only the required components are
// selected, at standard; optional components are left absent.
func NewProjectEstimate() ProjectEstimate {
	return ProjectEstimate{
		ID:           uuid.NewString(),
		ProjectType:  rates.DefaultScope,
		BuildingType: Residential,
		Area:         1000,
		AreaUnit:     SqFt,
		Complexity:   NeutralComplexity,
		Components: map[rates.Component]rates.QualityLevel{
			rates.CivilQuality: rates.QualityStandard,
			rates.Plumbing:     rates.QualityStandard,
			rates.Electrical:   rates.QualityStandard,
		},
	}
}

// Reset discards the record and starts a new one with defaults.
func (e ProjectEstimate) Reset() ProjectEstimate {
	return NewProjectEstimate()
}

// Quality returns the selection for c; absent components are none.
func (e ProjectEstimate) Quality(c rates.Component) rates.QualityLevel {
	if q, ok := e.Components[c]; ok && q != "" {
		return q
	}
	return rates.QualityNone
}

// WithQuality returns a copy of e with c set to q. The receiver is not modified.
func (e ProjectEstimate) WithQuality(c rates.Component, q rates.QualityLevel) ProjectEstimate {
	e.Components = maps.Clone(e.Components)
	if e.Components == nil {
		e.Components = make(map[rates.Component]rates.QualityLevel, 1)
	}
	e.Components[c] = q
	return e
}

// Inputs returns a copy of e with every derived field cleared.
func (e ProjectEstimate) Inputs() ProjectEstimate {
	return ProjectEstimate{
		ID:           e.ID,
		State:        e.State,
		City:         e.City,
		ProjectType:  e.ProjectType,
		BuildingType: e.BuildingType,
		Area:         e.Area,
		AreaUnit:     e.AreaUnit,
		Complexity:   e.Complexity,
		Components:   maps.Clone(e.Components),
	}
}
