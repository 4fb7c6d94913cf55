package stats

import (
	"fmt"
	"time"

	"github.com/liftlog/analytics/internal/ptr"
)

// PRType classifies a personal record.
type PRType string

const (
	PRTypeMaxWeight   PRType = "max_weight"
	PRTypeMaxReps     PRType = "max_reps"
	PRTypeMaxDuration PRType = "max_duration"
	PRTypeMaxDistance PRType = "max_distance"
	PRTypeMaxVolume   PRType = "max_volume"
	PRTypeOneRepMax   PRType = "one_rep_max"
)

// PersonalRecord is a best-ever value for one exercise and record kind.
// PreviousValue is nil for a first-ever record.
type PersonalRecord struct {
	ID            string
	UserID        string
	ExerciseID    string
	ExerciseName  string
	ExerciseType  ExerciseType
	Type          PRType
	Value         float64
	PreviousValue *float64
	AchievedAt    time.Time
	WorkoutID     string
	SetID         string
}

// Improvement is the delta over the previous record. A first-ever record
// counts its full value as the improvement.
func (r PersonalRecord) Improvement() float64 {
	return r.Value - ptr.Deref(r.PreviousValue)
}

// ImprovementString renders the improvement for display: "New PR!" for a
// first-ever record, otherwise the signed delta with an explicit "+" for
// positive values and no sign for exactly zero.
func (r PersonalRecord) ImprovementString() string {
	if r.PreviousValue == nil {
		return "New PR!"
	}
	delta := r.Improvement()
	s := trimFloat(delta)
	if delta > 0 {
		return "+" + s
	}
	return s
}

// DisplayValue renders the record value according to its kind.
func (r PersonalRecord) DisplayValue() string {
	switch r.Type {
	case PRTypeMaxWeight:
		return FormatWeight(r.Value)
	case PRTypeMaxReps:
		return trimFloat(r.Value) + " reps"
	case PRTypeMaxDuration:
		return FormatDuration(int(r.Value))
	case PRTypeMaxDistance:
		return FormatDistance(r.Value)
	case PRTypeMaxVolume:
		return trimFloat(r.Value) + " vol"
	case PRTypeOneRepMax:
		return fmt.Sprintf("%s (1RM)", FormatWeight(r.Value))
	}
	return trimFloat(r.Value)
}
