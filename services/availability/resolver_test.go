package availability

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"venuebook/models"
)

func intPtr(v int) *int { return &v }

func weeklyRule(days ...string) []models.RecurrenceRule {
	return []models.RecurrenceRule{
		{Type: models.RecurrenceWeekly, DayConfig: days, IsActive: true},
	}
}

func TestResolveDatesWeeklyWindow(t *testing.T) {
	// Wednesday June 4, 2025; mondays and fridays over a 14-day window.
	today := date(2025, time.June, 4)
	window := models.BookingWindow{MaxDaysAhead: intPtr(14)}

	dates := ResolveDates(weeklyRule("monday", "friday"), nil, window, today)

	want := []string{"2025-06-06", "2025-06-09", "2025-06-13", "2025-06-16"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(dates), dates)
	}
	for i, d := range dates {
		if DateKey(d) != want[i] {
			t.Fatalf("at %d: expected %s, got %s", i, want[i], DateKey(d))
		}
	}
}

func TestResolveDatesDropsFullClosures(t *testing.T) {
	today := date(2025, time.June, 4)
	window := models.BookingWindow{MaxDaysAhead: intPtr(14)}
	records := []models.DayOffRecord{{ID: "maint", Date: "2025-06-09"}} // a Monday

	instances := ExpandDayOffs(records, today, today.AddDate(1, 0, 0), zap.NewNop())
	dates := ResolveDates(weeklyRule("monday", "friday"), instances, window, today)

	for _, d := range dates {
		if DateKey(d) == "2025-06-09" {
			t.Fatal("fully closed monday must not resolve")
		}
	}
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates after closure, got %d", len(dates))
	}
}

func TestResolveDatesPartialClosureKeepsDate(t *testing.T) {
	today := date(2025, time.June, 4)
	window := models.BookingWindow{MaxDaysAhead: intPtr(14)}
	// Timed and scoped records restrict slots only; the date stays bookable.
	records := []models.DayOffRecord{
		{ID: "short-day", Date: "2025-06-09", TimeStart: "16:00"},
		{ID: "private", Date: "2025-06-13", PackageScope: []string{"pkg-a"}},
	}

	instances := ExpandDayOffs(records, today, today.AddDate(1, 0, 0), zap.NewNop())
	dates := ResolveDates(weeklyRule("monday", "friday"), instances, window, today)

	if len(dates) != 4 {
		t.Fatalf("partial closures must not remove dates, got %d of 4", len(dates))
	}
}

func TestResolveDatesMinimumNoticeAtDateGranularity(t *testing.T) {
	today := date(2025, time.June, 4)
	window := models.BookingWindow{MaxDaysAhead: intPtr(7), MinNoticeHours: 48}

	dates := ResolveDates(weeklyRule("thursday", "friday"), nil, window, today)

	// 48h from Wednesday midnight lands on Friday midnight: Thursday the
	// 5th is inside the notice window, Friday the 6th is not.
	if len(dates) != 1 || DateKey(dates[0]) != "2025-06-06" {
		t.Fatalf("expected only 2025-06-06, got %v", dates)
	}
}

func TestResolveDatesFractionalNoticeKeepsToday(t *testing.T) {
	today := date(2025, time.June, 4)
	window := models.BookingWindow{MaxDaysAhead: intPtr(3), MinNoticeHours: 2}

	dates := ResolveDates(weeklyRule("wednesday"), nil, window, today)

	// A 2-hour notice truncates back to today's midnight at date
	// granularity; slot-level enforcement happens in FilterSlots.
	if len(dates) != 1 || DateKey(dates[0]) != "2025-06-04" {
		t.Fatalf("expected today to stay resolvable, got %v", dates)
	}
}

func TestResolveDatesDefaultCeiling(t *testing.T) {
	today := date(2025, time.June, 4)

	dates := ResolveDates([]models.RecurrenceRule{{Type: models.RecurrenceDaily, IsActive: true}},
		nil, models.BookingWindow{}, today)

	if len(dates) != DefaultMaxDaysAhead {
		t.Fatalf("nil horizon must fall back to %d days, got %d", DefaultMaxDaysAhead, len(dates))
	}
}

func TestResolveDatesNegativeNoticeDegrades(t *testing.T) {
	today := date(2025, time.June, 4)
	window := models.BookingWindow{MaxDaysAhead: intPtr(3), MinNoticeHours: -5}

	dates := ResolveDates(weeklyRule("wednesday"), nil, window, today)
	if len(dates) != 1 {
		t.Fatalf("negative notice must behave as zero, got %v", dates)
	}
}
