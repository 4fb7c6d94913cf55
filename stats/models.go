// Package stats computes derived fitness-tracking analytics from raw workout
// history: aggregate totals over a date window, an activity heatmap with
// streak detection, and personal-record display formatting.
//
// Every operation is a pure transformation from in-memory record lists to
// freshly constructed value objects. The package performs no I/O and holds no
// shared state, so concurrent invocations are independently safe.
package stats

import "time"

// ExerciseType classifies the tracking shape of an exercise.
type ExerciseType string

const (
	ExerciseTypeStrength   ExerciseType = "strength"
	ExerciseTypeCardio     ExerciseType = "cardio"
	ExerciseTypeBodyweight ExerciseType = "bodyweight"
	ExerciseTypeCustom     ExerciseType = "custom"
	ExerciseTypeTimeBased  ExerciseType = "time_based"
)

// WorkoutEvent is a raw workout record supplied by the persistence layer.
// CreatedAt is the sole temporal anchor used for heatmap bucketing and
// date-window membership.
type WorkoutEvent struct {
	ID        string
	Name      string
	Order     int
	CreatedAt time.Time
	UserID    string
	WeekID    string
	ProgramID string
}

// ExerciseEvent is a raw exercise record belonging to a workout.
type ExerciseEvent struct {
	ID        string
	Name      string
	Type      ExerciseType
	Order     int
	UserID    string
	WorkoutID string
	WeekID    string
	ProgramID string
}

// SetEvent is a raw set record belonging to an exercise. The numeric metrics
// are optional; a nil pointer means the field was never logged.
type SetEvent struct {
	ID              string
	SetNumber       int
	Reps            *int
	WeightKg        *float64
	DurationSeconds *int
	DistanceMeters  *float64
	RestSeconds     *int
	Checked         bool
	Notes           *string
	UserID          string
	ExerciseID      string
	WorkoutID       string
	WeekID          string
	ProgramID       string
}

// IsEmpty reports whether the set carries no positive metric at all.
func (s SetEvent) IsEmpty() bool {
	if s.Reps != nil && *s.Reps > 0 {
		return false
	}
	if s.WeightKg != nil && *s.WeightKg > 0 {
		return false
	}
	if s.DurationSeconds != nil && *s.DurationSeconds > 0 {
		return false
	}
	if s.DistanceMeters != nil && *s.DistanceMeters > 0 {
		return false
	}
	return true
}

// HasValidNumericValues reports whether every populated numeric field is
// non-negative. The aggregation engines fold whatever numbers they are given;
// callers reject bad data with this predicate before feeding them.
func (s SetEvent) HasValidNumericValues() bool {
	if s.Reps != nil && *s.Reps < 0 {
		return false
	}
	if s.WeightKg != nil && *s.WeightKg < 0 {
		return false
	}
	if s.DurationSeconds != nil && *s.DurationSeconds < 0 {
		return false
	}
	if s.DistanceMeters != nil && *s.DistanceMeters < 0 {
		return false
	}
	if s.RestSeconds != nil && *s.RestSeconds < 0 {
		return false
	}
	return true
}

// IsValidForExerciseType reports whether the set carries the metrics the given
// exercise type tracks: reps for strength and bodyweight work, duration or
// distance for cardio, duration for time-based work. Custom exercises accept
// any set with at least one positive metric.
func (s SetEvent) IsValidForExerciseType(t ExerciseType) bool {
	if !s.HasValidNumericValues() {
		return false
	}
	switch t {
	case ExerciseTypeStrength, ExerciseTypeBodyweight:
		return s.Reps != nil && *s.Reps > 0
	case ExerciseTypeCardio:
		return (s.DurationSeconds != nil && *s.DurationSeconds > 0) ||
			(s.DistanceMeters != nil && *s.DistanceMeters > 0)
	case ExerciseTypeTimeBased:
		return s.DurationSeconds != nil && *s.DurationSeconds > 0
	case ExerciseTypeCustom:
		return !s.IsEmpty()
	}
	return false
}
