package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	metersPerKm      = 1000
)

// FormatDuration renders seconds as minutes and seconds once a full minute is
// reached. Durations of an hour or more still render in minutes: 3665 becomes
// "61m 5s".
func FormatDuration(seconds int) string {
	if seconds >= secondsPerMinute {
		return fmt.Sprintf("%dm %ds", seconds/secondsPerMinute, seconds%secondsPerMinute)
	}
	return fmt.Sprintf("%ds", seconds)
}

// FormatDistance renders meters as kilometers with exactly two decimals from
// 1000m upward ("2.50km"), and as whole meters below that ("500m").
func FormatDistance(meters float64) string {
	if meters >= metersPerKm {
		return fmt.Sprintf("%.2fkm", meters/metersPerKm)
	}
	return fmt.Sprintf("%.0fm", meters)
}

// FormatWeight renders kilograms rounded to one decimal with a trailing ".0"
// trimmed: 100.0 becomes "100kg", 67.25 becomes "67.3kg".
func FormatWeight(kg float64) string {
	return trimFloat(kg) + "kg"
}

// DisplayString renders the set's logged metrics for the UI: reps with or
// without weight, then duration, then distance. A set with no positive metric
// renders as "Empty set".
func (s SetEvent) DisplayString() string {
	if s.IsEmpty() {
		return "Empty set"
	}
	var parts []string
	switch {
	case s.Reps != nil && *s.Reps > 0 && s.WeightKg != nil && *s.WeightKg > 0:
		parts = append(parts, fmt.Sprintf("%d x %s", *s.Reps, FormatWeight(*s.WeightKg)))
	case s.Reps != nil && *s.Reps > 0:
		parts = append(parts, fmt.Sprintf("%d reps", *s.Reps))
	case s.WeightKg != nil && *s.WeightKg > 0:
		parts = append(parts, FormatWeight(*s.WeightKg))
	}
	if s.DurationSeconds != nil && *s.DurationSeconds > 0 {
		parts = append(parts, FormatDuration(*s.DurationSeconds))
	}
	if s.DistanceMeters != nil && *s.DistanceMeters > 0 {
		parts = append(parts, FormatDistance(*s.DistanceMeters))
	}
	return strings.Join(parts, ", ")
}

// trimFloat rounds to one decimal, half away from zero, and drops a trailing
// ".0" so whole numbers render bare.
func trimFloat(v float64) string {
	rounded := math.Round(v*10) / 10 //nolint:mnd // one decimal place
	s := strconv.FormatFloat(rounded, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
