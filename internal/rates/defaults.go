package rates

import "sync"

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in rate tables. The result is shared and read-only.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := NewTables(DefaultData())
		if err != nil {
			panic("rates: built-in tables are invalid: " + err.Error())
		}
		defaultTables = t
	})
	return defaultTables
}

// DefaultData returns a fresh copy of the built-in table contents (INR per square meter).
func DefaultData() TablesData {
	return TablesData{
		Locations: []LocationRate{
			{Name: "Mumbai", Tier: TierMetro, Band: Band{2000, 3000, 4250, 5500}},
			{Name: "Navi Mumbai", Tier: TierMetro, Band: Band{1900, 2900, 4000, 5200}},
			{Name: "Thane", Tier: TierMetro, Band: Band{1850, 2800, 3900, 5000}},
			{Name: "Delhi", Tier: TierMetro, Band: Band{1900, 2900, 4000, 5300}},
			{Name: "New Delhi", Tier: TierMetro, Band: Band{2000, 3000, 4250, 5500}},
			{Name: "Gurgaon", Tier: TierMetro, Band: Band{2000, 3100, 4300, 5600}},
			{Name: "Noida", Tier: TierMetro, Band: Band{1850, 2850, 4000, 5200}},
			{Name: "Bangalore", Tier: TierMetro, Band: Band{1900, 2900, 4100, 5400}},
			{Name: "Bengaluru", Tier: TierMetro, Band: Band{1900, 2900, 4100, 5400}},
			{Name: "Hyderabad", Tier: TierMetro, Band: Band{1800, 2700, 3800, 5000}},
			{Name: "Chennai", Tier: TierMetro, Band: Band{1800, 2700, 3900, 5100}},
			{Name: "Pune", Tier: TierMetro, Band: Band{1850, 2800, 3900, 5200}},

			{Name: "Ahmedabad", Tier: TierSecondary, Band: Band{1550, 2150, 3000, 4000}},
			{Name: "Surat", Tier: TierSecondary, Band: Band{1500, 2100, 2900, 3800}},
			{Name: "Jaipur", Tier: TierSecondary, Band: Band{1550, 2200, 3000, 4000}},
			{Name: "Kochi", Tier: TierSecondary, Band: Band{1500, 2100, 2900, 3900}},
			{Name: "Coimbatore", Tier: TierSecondary, Band: Band{1450, 2000, 2800, 3700}},
			{Name: "Indore", Tier: TierSecondary, Band: Band{1500, 2100, 2900, 3800}},
			{Name: "Chandigarh", Tier: TierSecondary, Band: Band{1600, 2250, 3100, 4100}},
			{Name: "Lucknow", Tier: TierSecondary, Band: Band{1450, 2000, 2850, 3700}},
			{Name: "Visakhapatnam", Tier: TierSecondary, Band: Band{1450, 2000, 2800, 3600}},
			{Name: "Nagpur", Tier: TierSecondary, Band: Band{1450, 2000, 2850, 3700}},
			{Name: "Vadodara", Tier: TierSecondary, Band: Band{1500, 2100, 2900, 3800}},
		},
		Fallback: LocationRate{Name: "default", Tier: TierOther, Band: Band{1350, 1750, 2250, 3000}},
		Components: map[Component]ComponentRates{
			CivilQuality:     {850, 1150, 1530},
			Plumbing:         {180, 350, 700},
			Electrical:       {150, 300, 600},
			AC:               {400, 750, 1400},
			Elevator:         {180, 380, 850},
			BuildingEnvelope: {150, 320, 650},
			Lighting:         {120, 280, 600},
			Windows:          {220, 450, 950},
			Ceiling:          {130, 270, 580},
			Surfaces:         {280, 550, 1100},
			FixedFurniture:   {400, 750, 1400},
			LooseFurniture:   {280, 550, 1200},
			Furnishings:      {90, 220, 500},
			Appliances:       {180, 380, 850},
			Artefacts:        {70, 180, 450},
			Landscape:        {120, 280, 650},
		},
		Inclusions: defaultInclusions(),
		Scopes: []Scope{
			{
				ID:              ScopeFullProject,
				Label:           "Full Project (No Landscape)",
				Description:     "Complete construction and interiors",
				BaseRatePerArea: 850,
				Excluded:        excluding(Landscape),
			},
			{
				ID:              ScopeFullLandscape,
				Label:           "Full Project with Landscape",
				Description:     "Everything including outdoor spaces",
				BaseRatePerArea: 850,
				Excluded:        excluding(),
			},
			{
				ID:              ScopeCoreShell,
				Label:           "Core & Shell",
				Description:     "Structure, MEP systems, basic envelope",
				BaseRatePerArea: 850,
				Excluded:        excluding(FixedFurniture, LooseFurniture, Furnishings, Appliances, Artefacts, Landscape),
			},
			{
				ID:              ScopeInteriorOnly,
				Label:           "Interior Design Only",
				Description:     "Interior finishing, furniture, and styling",
				BaseRatePerArea: 0,
				BaseMonths:      4,
				Excluded:        excluding(CivilQuality, Plumbing, Electrical, BuildingEnvelope, Elevator),
			},
			{
				ID:              ScopeRenovation,
				Label:           "Renovation/Remodel",
				Description:     "Updating existing structure",
				BaseRatePerArea: 700,
				BaseMonths:      6,
				Excluded:        excluding(Elevator),
			},
		},
	}
}

func defaultInclusions() map[Component]map[QualityLevel][]string {
	return map[Component]map[QualityLevel][]string{
		CivilQuality: {
			QualityStandard: {"Basic foundation", "Standard bricks", "Regular cement", "Basic plastering", "Standard waterproofing"},
			QualityPremium:  {"Enhanced foundation", "Premium bricks", "High-grade cement", "Fine plastering", "Advanced waterproofing", "Seismic considerations"},
			QualityLuxury:   {"Premium foundation", "Luxury bricks/blocks", "Superior cement", "Expert plastering", "Top-grade waterproofing", "Full seismic design", "Thermal insulation"},
		},
		Plumbing: {
			QualityStandard: {"CPVC pipes", "Standard fixtures", "Basic fittings", "Standard drainage"},
			QualityPremium:  {"Premium CPVC", "Mid-range fixtures", "Quality fittings", "Enhanced drainage", "Water purifier points"},
			QualityLuxury:   {"Copper/PPR pipes", "Luxury fixtures", "Designer fittings", "Advanced drainage", "Water treatment system", "Hot water circulation"},
		},
		Electrical: {
			QualityStandard: {"Standard wiring", "Basic switches", "Regular outlets", "MCB panel"},
			QualityPremium:  {"Premium wiring", "Modular switches", "Multiple outlets", "RCCB protection", "Smart home ready"},
			QualityLuxury:   {"Armoured cables", "Designer switches", "Abundant outlets", "Full automation", "Home automation", "Backup systems"},
		},
		AC: {
			QualityStandard: {"Split AC provision", "Basic ducting", "Standard vents"},
			QualityPremium:  {"VRF ready", "Concealed ducting", "Premium vents", "Zoned cooling"},
			QualityLuxury:   {"VRF/Cassette system", "Full concealment", "Designer grilles", "Multi-zone control", "Air purification"},
		},
		Elevator: {
			QualityStandard: {"Basic elevator shaft", "Standard lift", "4-6 person capacity"},
			QualityPremium:  {"Enhanced shaft", "Mid-range lift", "6-8 person capacity", "Automatic doors"},
			QualityLuxury:   {"Premium shaft", "Luxury elevator", "8-13 person capacity", "Smart controls", "Designer cabin"},
		},
		BuildingEnvelope: {
			QualityStandard: {"Basic exterior paint", "Standard weather coating", "Basic insulation"},
			QualityPremium:  {"Textured exterior", "Premium weather coating", "Enhanced insulation", "Decorative elements"},
			QualityLuxury:   {"Designer facade", "High-performance coating", "Superior insulation", "Architectural features", "Cladding options"},
		},
		Lighting: {
			QualityStandard: {"LED fixtures", "Basic design", "Standard switches"},
			QualityPremium:  {"Designer LED", "Ambient lighting", "Dimmer controls", "Cove lighting"},
			QualityLuxury:   {"Premium fixtures", "Layered lighting", "Smart controls", "Feature lighting", "Chandelier provisions"},
		},
		Windows: {
			QualityStandard: {"UPVC windows", "Clear glass", "Mosquito nets", "Standard grilles"},
			QualityPremium:  {"Premium UPVC", "Tinted/Reflective glass", "Hidden grilles", "Weather stripping"},
			QualityLuxury:   {"Aluminium/Wood", "Double glazing", "Automated controls", "Designer frames", "Sound insulation"},
		},
		Ceiling: {
			QualityStandard: {"Gypsum board", "POP corners", "Basic design"},
			QualityPremium:  {"Designer gypsum", "POP patterns", "Cove lighting", "Multiple levels"},
			QualityLuxury:   {"Premium materials", "Complex patterns", "Integrated lighting", "Multi-level design", "Acoustic treatment"},
		},
		Surfaces: {
			QualityStandard: {"Vitrified tiles", "Basic marble", "Standard paint", "Regular counters"},
			QualityPremium:  {"Premium tiles", "Italian marble", "Texture paint", "Granite counters", "Feature walls"},
			QualityLuxury:   {"Imported tiles", "Premium marble/Onyx", "Designer finishes", "Quartz counters", "Wood paneling", "Stone cladding"},
		},
		FixedFurniture: {
			QualityStandard: {"Plywood cabinets", "Laminate finish", "Basic hardware", "Standard wardrobes"},
			QualityPremium:  {"Boiling water resistant plywood", "Premium laminate", "Soft-close hardware", "Designer wardrobes", "Kitchen modules"},
			QualityLuxury:   {"Marine plywood", "Veneer/Lacquer finish", "Premium hardware", "Walk-in wardrobes", "Modular kitchen", "Study units"},
		},
		LooseFurniture: {
			QualityStandard: {"Essential furniture", "Standard quality", "Basic design"},
			QualityPremium:  {"Designer furniture", "Quality materials", "Coordinated design", "Upholstery"},
			QualityLuxury:   {"Premium furniture", "Luxury materials", "Custom design", "Premium upholstery", "Branded items"},
		},
		Furnishings: {
			QualityStandard: {"Basic curtains", "Standard blinds", "Regular cushions"},
			QualityPremium:  {"Designer curtains", "Motorized blinds", "Decorative cushions", "Throws"},
			QualityLuxury:   {"Premium drapes", "Automated blinds", "Designer cushions", "Luxury throws", "Rugs", "Wall art"},
		},
		Appliances: {
			QualityStandard: {"Basic kitchen appliances", "Standard brand"},
			QualityPremium:  {"Mid-range appliances", "Good brands", "Built-in options"},
			QualityLuxury:   {"Premium appliances", "International brands", "Fully built-in", "Smart features", "Wine cooler"},
		},
		Artefacts: {
			QualityStandard: {"Basic decor items", "Standard artwork"},
			QualityPremium:  {"Designer decor", "Quality artwork", "Sculptures"},
			QualityLuxury:   {"Premium decor", "Original artwork", "Designer sculptures", "Collectibles", "Feature pieces"},
		},
		Landscape: {
			QualityStandard: {"Basic landscaping", "Lawn", "Border plants", "Simple paving"},
			QualityPremium:  {"Designer landscape", "Themed garden", "Water feature", "Outdoor lighting", "Paved pathways"},
			QualityLuxury:   {"Premium landscape", "Complex design", "Multiple water features", "Gazebo", "Outdoor kitchen", "Irrigation system"},
		},
	}
}
