package stats_test

import (
	"testing"

	"github.com/liftlog/analytics/internal/ptr"
	"github.com/liftlog/analytics/stats"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "0s"},
		{seconds: 45, want: "45s"},
		{seconds: 59, want: "59s"},
		{seconds: 60, want: "1m 0s"},
		{seconds: 1800, want: "30m 0s"},
		// No hour unit: long durations stay in minutes.
		{seconds: 3665, want: "61m 5s"},
	}

	for _, tt := range tests {
		if got := stats.FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{meters: 0, want: "0m"},
		{meters: 500, want: "500m"},
		{meters: 800, want: "800m"},
		{meters: 999, want: "999m"},
		{meters: 1000, want: "1.00km"},
		{meters: 2500, want: "2.50km"},
		{meters: 5000, want: "5.00km"},
		{meters: 21097.5, want: "21.10km"},
	}

	for _, tt := range tests {
		if got := stats.FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%f) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{kg: 100.0, want: "100kg"},
		{kg: 67.25, want: "67.3kg"},
		{kg: 82.5, want: "82.5kg"},
		{kg: 0, want: "0kg"},
	}

	for _, tt := range tests {
		if got := stats.FormatWeight(tt.kg); got != tt.want {
			t.Errorf("FormatWeight(%f) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}

func TestSetDisplayString(t *testing.T) {
	tests := []struct {
		name string
		set  stats.SetEvent
		want string
	}{
		{
			name: "reps and weight",
			set:  stats.SetEvent{Reps: ptr.Ref(10), WeightKg: ptr.Ref(100.0)},
			want: "10 x 100kg",
		},
		{
			name: "reps only",
			set:  stats.SetEvent{Reps: ptr.Ref(15)},
			want: "15 reps",
		},
		{
			name: "duration only",
			set:  stats.SetEvent{DurationSeconds: ptr.Ref(90)},
			want: "1m 30s",
		},
		{
			name: "distance only",
			set:  stats.SetEvent{DistanceMeters: ptr.Ref(5000.0)},
			want: "5.00km",
		},
		{
			name: "cardio set with duration and distance",
			set:  stats.SetEvent{DurationSeconds: ptr.Ref(1800), DistanceMeters: ptr.Ref(5000.0)},
			want: "30m 0s, 5.00km",
		},
		{
			name: "no positive metric",
			set:  stats.SetEvent{},
			want: "Empty set",
		},
		{
			name: "zero values still count as empty",
			set:  stats.SetEvent{Reps: ptr.Ref(0), WeightKg: ptr.Ref(0.0)},
			want: "Empty set",
		},
		{
			name: "rest time alone does not make a set",
			set:  stats.SetEvent{RestSeconds: ptr.Ref(120)},
			want: "Empty set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.DisplayString(); got != tt.want {
				t.Errorf("DisplayString() = %q, want %q", got, tt.want)
			}
		})
	}
}
