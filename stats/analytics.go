package stats

// Summary aggregates a user's workouts, exercises and sets inside a date
// window into totals the presentation layer renders directly.
type Summary struct {
	UserID        string
	Range         DateRange
	TotalWorkouts int
	TotalSets     int
	// TotalVolume is the sum of reps x weight over sets that carry both.
	TotalVolume float64
	// TotalDuration is the summed set duration in seconds.
	TotalDuration         int
	ExerciseTypeBreakdown map[ExerciseType]int
	// MostUsedExerciseType is nil when no exercises fall inside the window.
	// Ties resolve to the type seen first in the exercise list.
	MostUsedExerciseType *ExerciseType
	CompletedWorkoutIDs  []string
}

// NewSummary folds raw records into a Summary. Workouts are retained when
// their creation instant falls inside r; exercises and sets are retained when
// they belong to a retained workout. Empty or fully out-of-range input yields
// a summary with zero totals, never an error.
func NewSummary(userID string, r DateRange, workouts []WorkoutEvent, exercises []ExerciseEvent, sets []SetEvent) Summary {
	summary := Summary{
		UserID:                userID,
		Range:                 r,
		TotalWorkouts:         0,
		TotalSets:             0,
		TotalVolume:           0,
		TotalDuration:         0,
		ExerciseTypeBreakdown: make(map[ExerciseType]int),
		MostUsedExerciseType:  nil,
		CompletedWorkoutIDs:   []string{},
	}

	retained := make(map[string]struct{}, len(workouts))
	for _, w := range workouts {
		if !r.Contains(w.CreatedAt) {
			continue
		}
		retained[w.ID] = struct{}{}
		summary.TotalWorkouts++
		summary.CompletedWorkoutIDs = append(summary.CompletedWorkoutIDs, w.ID)
	}

	// Track the order types first appear in so ties break deterministically.
	var firstSeen []ExerciseType
	for _, e := range exercises {
		if _, ok := retained[e.WorkoutID]; !ok {
			continue
		}
		if _, ok := summary.ExerciseTypeBreakdown[e.Type]; !ok {
			firstSeen = append(firstSeen, e.Type)
		}
		summary.ExerciseTypeBreakdown[e.Type]++
	}
	for _, t := range firstSeen {
		if summary.MostUsedExerciseType == nil ||
			summary.ExerciseTypeBreakdown[t] > summary.ExerciseTypeBreakdown[*summary.MostUsedExerciseType] {
			usedType := t
			summary.MostUsedExerciseType = &usedType
		}
	}

	for _, s := range sets {
		if _, ok := retained[s.WorkoutID]; !ok {
			continue
		}
		summary.TotalSets++
		if s.Reps != nil && s.WeightKg != nil {
			summary.TotalVolume += float64(*s.Reps) * *s.WeightKg
		}
		if s.DurationSeconds != nil {
			summary.TotalDuration += *s.DurationSeconds
		}
	}

	return summary
}
