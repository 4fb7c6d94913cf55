package stats

import (
	"math"
	"time"
)

const hoursPerDay = 24

// DateRange is an inclusive interval of instants. Start is allowed to be
// after End; such an inverted range is passed through as-is, reporting a
// negative duration and containing nothing.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// DurationInDays returns the number of days the range spans, rounded up.
// A forward range always reports at least 1 day, even for sub-day spans.
// An inverted range reports the raw (non-positive) value.
func (r DateRange) DurationInDays() int {
	days := int(math.Ceil(r.End.Sub(r.Start).Hours() / hoursPerDay))
	if r.End.Before(r.Start) {
		return days
	}
	if days < 1 {
		return 1
	}
	return days
}

// ThisWeek returns the Monday-to-Sunday week containing now, from Monday
// 00:00:00 through Sunday 23:59:59. The span is always seven days regardless
// of which weekday now falls on.
func ThisWeek(now time.Time) DateRange {
	offset := int(time.Monday - now.Weekday())
	if offset > 0 {
		offset = -6 // Sunday counts as part of the preceding week.
	}
	monday := now.AddDate(0, 0, offset)
	return DateRange{
		Start: startOfDay(monday),
		End:   endOfDay(monday.AddDate(0, 0, 6)),
	}
}

// ThisMonth returns the calendar month containing now, from day 1 through the
// last day of the month.
func ThisMonth(now time.Time) DateRange {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	// Day zero of the next month normalizes to the last day of this month.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location())
	return DateRange{Start: first, End: endOfDay(last)}
}

// ThisYear returns the calendar year containing now, Jan 1 through Dec 31.
func ThisYear(now time.Time) DateRange {
	year := now.Year()
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()),
		End:   endOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location())),
	}
}

// Last30Days returns the 30-day inclusive rolling window ending today: from
// 29 days ago at 00:00:00 through today at 23:59:59.
func Last30Days(now time.Time) DateRange {
	return DateRange{
		Start: startOfDay(now.AddDate(0, 0, -29)),
		End:   endOfDay(now),
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, t.Location())
}
