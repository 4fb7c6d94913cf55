package stats

// Intensity is one of five ordered severity levels derived from a per-day
// activity count.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
	IntensityVeryHigh
)

// IntensityForCount buckets a non-negative activity count into an intensity
// level. Boundaries are closed on both ends: 0, 1-5, 6-15, 16-25, 26+.
func IntensityForCount(count int) Intensity {
	switch {
	case count <= 0:
		return IntensityNone
	case count <= 5:
		return IntensityLow
	case count <= 15:
		return IntensityMedium
	case count <= 25:
		return IntensityHigh
	default:
		return IntensityVeryHigh
	}
}

// Label returns the human-readable description of the intensity level.
func (i Intensity) Label() string {
	switch i {
	case IntensityNone:
		return "No activity"
	case IntensityLow:
		return "Light activity"
	case IntensityMedium:
		return "Moderate activity"
	case IntensityHigh:
		return "High activity"
	case IntensityVeryHigh:
		return "Very high activity"
	}
	return "No activity"
}

func (i Intensity) String() string {
	switch i {
	case IntensityNone:
		return "none"
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	case IntensityVeryHigh:
		return "very_high"
	}
	return "none"
}
