package stats_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/liftlog/analytics/stats"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// workoutAt builds a workout event created at the given instant.
func workoutAt(id, userID string, createdAt time.Time) stats.WorkoutEvent {
	return stats.WorkoutEvent{
		ID:        id,
		Name:      "Workout " + id,
		Order:     0,
		CreatedAt: createdAt,
		UserID:    userID,
		WeekID:    "week-1",
		ProgramID: "program-1",
	}
}

func exerciseIn(id, workoutID string, exerciseType stats.ExerciseType) stats.ExerciseEvent {
	return stats.ExerciseEvent{
		ID:        id,
		Name:      "Exercise " + id,
		Type:      exerciseType,
		Order:     0,
		UserID:    "user-1",
		WorkoutID: workoutID,
		WeekID:    "week-1",
		ProgramID: "program-1",
	}
}

func setIn(id, workoutID string, reps *int, weightKg *float64, durationSeconds *int) stats.SetEvent {
	return stats.SetEvent{
		ID:              id,
		SetNumber:       1,
		Reps:            reps,
		WeightKg:        weightKg,
		DurationSeconds: durationSeconds,
		DistanceMeters:  nil,
		RestSeconds:     nil,
		Checked:         false,
		Notes:           nil,
		UserID:          "user-1",
		ExerciseID:      "exercise-" + id,
		WorkoutID:       workoutID,
		WeekID:          "week-1",
		ProgramID:       "program-1",
	}
}

// TestConcurrentComputations runs the engines from several goroutines over
// shared input slices. Every invocation must produce the same result because
// no call mutates its input or shares state with another call.
func TestConcurrentComputations(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	window := stats.Last30Days(now)

	var workouts []stats.WorkoutEvent
	var sets []stats.SetEvent
	for day := 0; day < 20; day++ {
		id := string(rune('a' + day))
		created := now.AddDate(0, 0, -day)
		workouts = append(workouts, workoutAt(id, "user-1", created))
		reps := 8 + day
		weight := 60.0 + float64(day)
		sets = append(sets, setIn(id+"-1", id, &reps, &weight, nil))
	}

	baselineSummary := stats.NewSummary("user-1", window, workouts, nil, sets)
	baselineHeatmap := stats.NewHeatmap("user-1", now.Year(), workouts, now)

	var g errgroup.Group
	for n := 0; n < 8; n++ {
		g.Go(func() error {
			summary := stats.NewSummary("user-1", window, workouts, nil, sets)
			if diff := cmp.Diff(baselineSummary, summary); diff != "" {
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
			heatmap := stats.NewHeatmap("user-1", now.Year(), workouts, now)
			if diff := cmp.Diff(baselineHeatmap, heatmap); diff != "" {
				t.Errorf("heatmap mismatch (-want +got):\n%s", diff)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent computation failed: %v", err)
	}
}
