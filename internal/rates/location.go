package rates

import "strings"

// Tier groups locations by market size.
type Tier int

const (
	TierMetro     Tier = 1
	TierSecondary Tier = 2
	TierOther     Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierMetro:
		return "metro"
	case TierSecondary:
		return "secondary"
	default:
		return "other"
	}
}

// Band holds the structural base rate per square meter for each quality band.
type Band struct {
	Economy  float64 `json:"economy"`
	Standard float64 `json:"standard"`
	Premium  float64 `json:"premium"`
	Luxury   float64 `json:"luxury"`
}

// For picks the band matching an overall quality tier. Anything below premium uses the
// standard band; economy is only reachable directly.
func (b Band) For(q QualityLevel) float64 {
	switch q {
	case QualityPremium:
		return b.Premium
	case QualityLuxury:
		return b.Luxury
	default:
		return b.Standard
	}
}

// LocationRate is the resolved base rate structure of a market.
type LocationRate struct {
	Name string `json:"name"`
	Tier Tier   `json:"tier"`
	Band Band   `json:"band"`
}

// locationKey normalizes free-form location input for lookup.
func locationKey(location string) string {
	return strings.ToLower(strings.Join(strings.Fields(location), " "))
}
