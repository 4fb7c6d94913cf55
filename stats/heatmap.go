package stats

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar day without time-of-day or location. It keys the
// per-day activity counts so that two instants on the same wall-clock day
// always land in the same bucket.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates an instant to its calendar day as observed by the instant
// itself, ignoring the time zone entirely.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC of the calendar day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar day n days later, rolling over month and year
// boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Day is one calendar day of a heatmap year with its activity count and
// derived intensity.
type Day struct {
	Date          Date
	ActivityCount int
	Intensity     Intensity
}

// Heatmap holds per-day activity counts for a user's whole workout history
// together with streak information. Year selects which calendar year Days
// materializes; counts and streaks always cover the full history.
type Heatmap struct {
	UserID        string
	Year          int
	DailyCounts   map[Date]int
	TotalCount    int
	CurrentStreak int
	LongestStreak int
}

// NewHeatmap folds workout events into a heatmap, counting one activity per
// workout on its creation day. Streak liveness is judged against now: a
// streak is current while it reaches today or ended yesterday.
func NewHeatmap(userID string, year int, workouts []WorkoutEvent, now time.Time) *Heatmap {
	counts := make(map[Date]int, len(workouts))
	for _, w := range workouts {
		counts[DateOf(w.CreatedAt)]++
	}
	return newHeatmap(userID, year, counts, now)
}

// NewHeatmapFromSets folds workout events into a heatmap at set granularity:
// each set contributes one activity on its parent workout's creation day.
// Sets whose workout is not in workouts are ignored.
func NewHeatmapFromSets(userID string, year int, workouts []WorkoutEvent, sets []SetEvent, now time.Time) *Heatmap {
	dayByWorkout := make(map[string]Date, len(workouts))
	for _, w := range workouts {
		dayByWorkout[w.ID] = DateOf(w.CreatedAt)
	}
	counts := make(map[Date]int, len(workouts))
	for _, s := range sets {
		day, ok := dayByWorkout[s.WorkoutID]
		if !ok {
			continue
		}
		counts[day]++
	}
	return newHeatmap(userID, year, counts, now)
}

func newHeatmap(userID string, year int, counts map[Date]int, now time.Time) *Heatmap {
	total := 0
	for _, c := range counts {
		total += c
	}
	current, longest := computeStreaks(counts, DateOf(now))
	return &Heatmap{
		UserID:        userID,
		Year:          year,
		DailyCounts:   counts,
		TotalCount:    total,
		CurrentStreak: current,
		LongestStreak: longest,
	}
}

// Days returns one entry per calendar day of the heatmap year in ascending
// order: 365 entries, or 366 including Feb 29 when the year is a leap year.
// Days without activity carry count 0 and IntensityNone.
func (h *Heatmap) Days() []Day {
	days := make([]Day, 0, daysInYear(h.Year))
	for d := (Date{Year: h.Year, Month: time.January, Day: 1}); d.Year == h.Year; d = d.AddDays(1) {
		count := h.DailyCounts[d]
		days = append(days, Day{
			Date:          d,
			ActivityCount: count,
			Intensity:     IntensityForCount(count),
		})
	}
	return days
}

// CountForDate returns the activity count bucketed on the given day. Any day
// is answerable, in or out of the heatmap year; absent days report 0.
func (h *Heatmap) CountForDate(d Date) int {
	return h.DailyCounts[d]
}

// IntensityForDate returns the intensity bucket for the given day.
func (h *Heatmap) IntensityForDate(d Date) Intensity {
	return IntensityForCount(h.DailyCounts[d])
}

// computeStreaks finds maximal runs of calendar-consecutive active days.
// longest spans the whole history. current is the length of the run that is
// still live: the run containing today, or the run ending yesterday, so a
// rest day today does not yet break an in-progress streak.
func computeStreaks(counts map[Date]int, today Date) (current, longest int) {
	active := make([]Date, 0, len(counts))
	for d, c := range counts {
		if c > 0 {
			active = append(active, d)
		}
	}
	if len(active) == 0 {
		return 0, 0
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Time().Before(active[j].Time())
	})

	yesterday := today.AddDays(-1)
	runStart := 0
	for i := 1; i <= len(active); i++ {
		if i < len(active) && active[i] == active[i-1].AddDays(1) {
			continue
		}
		length := i - runStart
		if length > longest {
			longest = length
		}
		first, last := active[runStart], active[i-1]
		containsToday := !today.Time().Before(first.Time()) && !today.Time().After(last.Time())
		if containsToday || last == yesterday {
			current = length
		}
		runStart = i
	}
	return current, longest
}
