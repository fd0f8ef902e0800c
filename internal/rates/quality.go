package rates

import "strings"

// QualityLevel is the fit-out tier chosen for one component.
type QualityLevel string

const (
	QualityNone     QualityLevel = "none"
	QualityStandard QualityLevel = "standard"
	QualityPremium  QualityLevel = "premium"
	QualityLuxury   QualityLevel = "luxury"
)

// QualityLevels lists every level from lowest to highest.
var QualityLevels = []QualityLevel{QualityNone, QualityStandard, QualityPremium, QualityLuxury}

// ParseQualityLevel accepts the canonical names case-insensitively. An empty value is none.
func ParseQualityLevel(raw string) (QualityLevel, error) {
	v := QualityLevel(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return QualityNone, nil
	}
	if !v.Valid() {
		return "", configErr("quality level", raw)
	}
	return v, nil
}

func (q QualityLevel) Valid() bool {
	switch q {
	case QualityNone, QualityStandard, QualityPremium, QualityLuxury:
		return true
	}
	return false
}

// Rank orders levels so that none < standard < premium < luxury. The empty value ranks as none.
func (q QualityLevel) Rank() int {
	switch q {
	case QualityStandard:
		return 1
	case QualityPremium:
		return 2
	case QualityLuxury:
		return 3
	default:
		return 0
	}
}

// IsNone reports whether the component is not selected at all.
func (q QualityLevel) IsNone() bool {
	return q == "" || q == QualityNone
}
