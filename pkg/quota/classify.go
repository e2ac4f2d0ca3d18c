// Package quota derives display state from used/limit quota counters.
package quota

type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

const (
	WarningThreshold  = 75.0
	CriticalThreshold = 90.0
)

// Ratio returns used/limit*100 without clamping. A zero or negative limit
// yields 0 so the result is always finite.
func Ratio(used, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(used) / float64(limit) * 100
}

// Percentage is Ratio clamped to [0, 100] for progress indicators.
func Percentage(used, limit int64) float64 {
	r := Ratio(used, limit)
	if r > 100 {
		return 100
	}
	if r < 0 {
		return 0
	}
	return r
}

// Classify maps a counter to its severity tier.
func Classify(used, limit int64) Severity {
	r := Ratio(used, limit)
	switch {
	case r >= CriticalThreshold:
		return SeverityCritical
	case r >= WarningThreshold:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Exceeded reports whether used is above a positive limit.
func Exceeded(used, limit int64) bool {
	return limit > 0 && used > limit
}

// Variant is the badge/progress styling used by the billing and dashboard views.
func (s Severity) Variant() string {
	switch s {
	case SeverityCritical:
		return "danger"
	case SeverityWarning:
		return "warning"
	default:
		return "success"
	}
}

// Indicator is the complete derived state of one counter.
type Indicator struct {
	Used       int64
	Limit      int64
	Percentage float64
	Severity   Severity
	Exceeded   bool
}

func NewIndicator(used, limit int64) Indicator {
	return Indicator{
		Used:       used,
		Limit:      limit,
		Percentage: Percentage(used, limit),
		Severity:   Classify(used, limit),
		Exceeded:   Exceeded(used, limit),
	}
}
