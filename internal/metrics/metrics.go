// Package metrics derives per-topic summary statistics. All functions
// are pure and total over any well-formed topic.
package metrics

import (
	"fmt"

	"github.com/studykeep/studykeep/internal/model"
)

// Recommendation policy constants. Tunable thresholds, not derived
// values: a topic averaging below MinAvgGrade needs more study time;
// above it, an efficiency below MinEfficiency suggests a technique
// change.
const (
	MinAvgGrade   = 70.0
	MinEfficiency = 5.0
)

// Canonical recommendation strings.
const (
	RecommendLogMoreData   = "Log more data to get recommendations"
	RecommendMoreStudyTime = "Consider increasing study time for this topic"
	RecommendNewTechniques = "Try different study techniques to improve efficiency"
	RecommendKeepItUp      = "You're doing well! Maintain your current approach"
)

// Metric is a derived value that may be unavailable (e.g. no grades
// logged yet). Callers must check Valid before using Value, so the
// "N/A" case cannot be mistaken for a number.
type Metric struct {
	Value float64
	Valid bool
}

// Available wraps a computed value.
func Available(v float64) Metric { return Metric{Value: v, Valid: true} }

// Unavailable is the "N/A" outcome.
var Unavailable = Metric{}

// String renders the value to two decimals, or "N/A" when unavailable.
func (m Metric) String() string {
	if !m.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", m.Value)
}

// TotalHours sums the hours over a topic's time entries. Zero for an
// empty log is a legitimate value, not an unavailable one.
func TotalHours(t model.Topic) float64 {
	var total float64
	for _, e := range t.TimeEntries {
		total += e.Hours
	}
	return total
}

// LatestGrade returns the value of the chronologically latest grade.
// When several grades share the maximum date the first inserted wins;
// dates compare lexically, which matches chronology for YYYY-MM-DD.
func LatestGrade(t model.Topic) Metric {
	if len(t.Grades) == 0 {
		return Unavailable
	}
	latest := t.Grades[0]
	for _, g := range t.Grades[1:] {
		if g.Date > latest.Date {
			latest = g
		}
	}
	return Available(latest.Value)
}

// Efficiency is the average grade divided by total hours, a rough
// proxy for learning return per hour. Unavailable when either log is
// empty, and also when total hours is zero with grades present: hours
// and grades are logged independently, so the division must be
// guarded rather than produce +Inf.
func Efficiency(t model.Topic) Metric {
	if len(t.Grades) == 0 || len(t.TimeEntries) == 0 {
		return Unavailable
	}
	hours := TotalHours(t)
	if hours == 0 {
		return Unavailable
	}
	return Available(averageGrade(t) / hours)
}

// Recommendation maps the topic's averages onto one of the canonical
// suggestion strings.
func Recommendation(t model.Topic) string {
	if len(t.Grades) == 0 || len(t.TimeEntries) == 0 {
		return RecommendLogMoreData
	}
	if averageGrade(t) < MinAvgGrade {
		return RecommendMoreStudyTime
	}
	if eff := Efficiency(t); eff.Valid && eff.Value < MinEfficiency {
		return RecommendNewTechniques
	}
	return RecommendKeepItUp
}

func averageGrade(t model.Topic) float64 {
	var sum float64
	for _, g := range t.Grades {
		sum += g.Value
	}
	return sum / float64(len(t.Grades))
}
