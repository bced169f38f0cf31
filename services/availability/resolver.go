package availability

import (
	"time"

	"venuebook/models"
)

// DefaultMaxDaysAhead is the ceiling applied when a booking window does not
// set its own horizon.
const DefaultMaxDaysAhead = 730

// ResolveDates computes the sorted set of bookable calendar dates for one
// package: every date within the booking window that clears the minimum
// notice (at midnight granularity; slot-level notice is enforced again in
// FilterSlots), is not fully closed, and matches at least one active rule.
//
// The resolver is pure. A caller that must keep an already-confirmed
// booking's date visible (edited bookings) unions it back in itself.
func ResolveDates(rules []models.RecurrenceRule, dayOffs []models.DayOffInstance, window models.BookingWindow, today time.Time) []time.Time {
	maxDays := DefaultMaxDaysAhead
	if window.MaxDaysAhead != nil && *window.MaxDaysAhead > 0 {
		maxDays = *window.MaxDaysAhead
	}

	todayMid := Midnight(today)
	minDate := Midnight(todayMid.Add(noticeDuration(window.MinNoticeHours)))

	fullClosures, _ := PartitionDayOffs(dayOffs)

	var dates []time.Time
	for i := 0; i < maxDays; i++ {
		d := todayMid.AddDate(0, 0, i)
		if d.Before(minDate) {
			continue
		}
		if _, closed := fullClosures[DateKey(d)]; closed {
			continue
		}
		if AnyRuleMatches(d, rules) {
			dates = append(dates, d)
		}
	}
	return dates
}
