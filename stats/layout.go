package stats

import (
	"github.com/liftlog/analytics/internal/errors"
	"github.com/liftlog/analytics/internal/ptr"
	"log/slog"
	"time"
)

// Timeframe selects the date span a heatmap grid covers.
type Timeframe string

const (
	TimeframeThisWeek   Timeframe = "this_week"
	TimeframeThisMonth  Timeframe = "this_month"
	TimeframeLast30Days Timeframe = "last_30_days"
	TimeframeThisYear   Timeframe = "this_year"
)

// ErrUnknownTimeframe is returned for a timeframe outside the defined set.
var ErrUnknownTimeframe = errors.NewSentinel("unknown timeframe")

// heatmapColumns is the fixed Monday-first week layout shared by every
// timeframe.
const heatmapColumns = 7

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// yearMaxVisibleRows caps how many week rows of a year view are shown before
// the caller must scroll.
const yearMaxVisibleRows = 10

// Layout describes the calendar grid geometry needed to render a heatmap for
// a timeframe, without producing any day data.
type Layout struct {
	Timeframe            Timeframe
	Rows                 int
	Columns              int
	ColumnLabels         []string
	StartDate            time.Time
	EndDate              time.Time
	ShowMonthLabels      bool
	EnableVerticalScroll bool
	MaxVisibleRows       *int
}

// LayoutForTimeframe computes the grid geometry for the given timeframe
// relative to now. Rows count Monday-aligned weeks: a single row for the week
// view, 4-6 for a month, a fixed 5 for the rolling 30-day window, and 52-54
// for a full year.
func LayoutForTimeframe(tf Timeframe, now time.Time) (Layout, error) {
	layout := Layout{
		Timeframe:            tf,
		Columns:              heatmapColumns,
		ColumnLabels:         weekdayLabels,
		ShowMonthLabels:      false,
		EnableVerticalScroll: false,
		MaxVisibleRows:       nil,
		Rows:                 0,
		StartDate:            time.Time{},
		EndDate:              time.Time{},
	}

	switch tf {
	case TimeframeThisWeek:
		bounds := ThisWeek(now)
		layout.StartDate, layout.EndDate = bounds.Start, bounds.End
		layout.Rows = 1
	case TimeframeThisMonth:
		bounds := ThisMonth(now)
		layout.StartDate, layout.EndDate = bounds.Start, bounds.End
		layout.Rows = mondayAlignedWeeks(bounds.Start, bounds.End.Day())
	case TimeframeLast30Days:
		bounds := Last30Days(now)
		layout.StartDate, layout.EndDate = bounds.Start, bounds.End
		layout.Rows = (bounds.DurationInDays() + heatmapColumns - 1) / heatmapColumns
	case TimeframeThisYear:
		bounds := ThisYear(now)
		layout.StartDate, layout.EndDate = bounds.Start, bounds.End
		layout.Rows = mondayAlignedWeeks(bounds.Start, daysInYear(now.Year()))
		layout.ShowMonthLabels = true
		layout.EnableVerticalScroll = true
		layout.MaxVisibleRows = ptr.Ref(yearMaxVisibleRows)
	default:
		return Layout{}, errors.Wrap(ErrUnknownTimeframe, "compute heatmap layout",
			slog.String("timeframe", string(tf)))
	}

	return layout, nil
}

// mondayAlignedWeeks returns how many Monday-started week rows are needed to
// cover spanDays consecutive days beginning at first.
func mondayAlignedWeeks(first time.Time, spanDays int) int {
	lead := mondayIndex(first.Weekday())
	return (lead + spanDays + heatmapColumns - 1) / heatmapColumns
}

// mondayIndex maps a weekday to its offset in a Monday-first week: Mon=0 ... Sun=6.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % heatmapColumns
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// isLeapYear implements the Gregorian rule: divisible by 4, except centuries
// not divisible by 400.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
