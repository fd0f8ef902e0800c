package rates

// Component is one priced building element with an independent quality selection.
type Component string

const (
	CivilQuality     Component = "civilQuality"
	Plumbing         Component = "plumbing"
	Electrical       Component = "electrical"
	AC               Component = "ac"
	Elevator         Component = "elevator"
	BuildingEnvelope Component = "buildingEnvelope"
	Lighting         Component = "lighting"
	Windows          Component = "windows"
	Ceiling          Component = "ceiling"
	Surfaces         Component = "surfaces"
	FixedFurniture   Component = "fixedFurniture"
	LooseFurniture   Component = "looseFurniture"
	Furnishings      Component = "furnishings"
	Appliances       Component = "appliances"
	Artefacts        Component = "artefacts"
	Landscape        Component = "landscape"
)

// Components lists every component in pricing order. Calculations iterate this slice,
// never a map, so float sums are reproducible.
var Components = []Component{
	CivilQuality,
	Plumbing,
	Electrical,
	AC,
	Elevator,
	BuildingEnvelope,
	Lighting,
	Windows,
	Ceiling,
	Surfaces,
	FixedFurniture,
	LooseFurniture,
	Furnishings,
	Appliances,
	Artefacts,
	Landscape,
}

// ParseComponent resolves a component key.
func ParseComponent(raw string) (Component, error) {
	c := Component(raw)
	if !c.Valid() {
		return "", configErr("component", raw)
	}
	return c, nil
}

func (c Component) Valid() bool {
	_, ok := c.category()
	return ok
}

// Required components are always priced unless the scope excludes them.
func (c Component) Required() bool {
	switch c {
	case CivilQuality, Plumbing, Electrical:
		return true
	}
	return false
}

// Category is the breakdown bucket a component's cost is accumulated into.
type Category string

const (
	CategoryConstruction Category = "construction"
	CategoryCore         Category = "core"
	CategoryFinishes     Category = "finishes"
	CategoryInteriors    Category = "interiors"
	CategoryLandscape    Category = "landscape"
)

// Category returns the bucket for c. It panics on an unknown component; callers
// validate keys with ParseComponent first.
func (c Component) Category() Category {
	cat, ok := c.category()
	if !ok {
		panic("rates: no category for component " + string(c))
	}
	return cat
}

func (c Component) category() (Category, bool) {
	switch c {
	case CivilQuality:
		return CategoryConstruction, true
	case Plumbing, Electrical, AC, Elevator:
		return CategoryCore, true
	case BuildingEnvelope, Lighting, Windows, Ceiling, Surfaces:
		return CategoryFinishes, true
	case FixedFurniture, LooseFurniture, Furnishings, Appliances, Artefacts:
		return CategoryInteriors, true
	case Landscape:
		return CategoryLandscape, true
	}
	return "", false
}
