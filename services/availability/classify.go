package availability

import (
	"time"

	"venuebook/models"
)

// DayContext carries everything the classifier needs for one package's
// calendar. All sets are keyed by DateKey strings and owned by the caller.
type DayContext struct {
	Today         time.Time
	Selected      time.Time // zero when no date is chosen
	FullClosures  map[string]models.DayOffInstance
	Partials      map[string]models.DayOffInstance // partial closures applying to this package
	Breaks        []models.BreakWindow
	BookableDates map[string]bool
}

// ClassifyDay maps a date to its display state. Precedence is fixed and the
// first matching state wins: Past, FullClosure, Selected, PartialClosure,
// BreakNoted, then Available/Unavailable. Selected comes before
// PartialClosure on purpose: a chosen date bound to an exception still
// renders as chosen, since the exception only narrows slot choices.
func ClassifyDay(date time.Time, ctx DayContext) models.DayState {
	d := Midnight(date)
	key := DateKey(d)

	if d.Before(Midnight(ctx.Today)) {
		return models.DayPast
	}
	if _, ok := ctx.FullClosures[key]; ok {
		return models.DayFullClosure
	}
	if !ctx.Selected.IsZero() && d.Equal(Midnight(ctx.Selected)) {
		return models.DaySelected
	}
	if _, ok := ctx.Partials[key]; ok {
		return models.DayPartialClosure
	}
	if ctx.BookableDates[key] && breakMatches(d, ctx.Breaks) {
		return models.DayBreakNoted
	}
	if ctx.BookableDates[key] {
		return models.DayAvailable
	}
	return models.DayUnavailable
}

// breakMatches reports whether an informational break window falls on the
// date's weekday. Breaks with no day list apply every day.
func breakMatches(date time.Time, breaks []models.BreakWindow) bool {
	for _, b := range breaks {
		if len(b.Days) == 0 {
			return true
		}
		name := weekdayName(date)
		for _, day := range b.Days {
			if day == name {
				return true
			}
		}
	}
	return false
}
