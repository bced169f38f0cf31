package availability

import (
	"reflect"
	"testing"
	"time"

	"venuebook/models"
)

func minuteSlot(start, end int) models.TimeSlot {
	return models.TimeSlot{Start: start, End: end}
}

func TestFilterSlotsClosingSide(t *testing.T) {
	// Closes from 16:00 onward, scoped to package P.
	day := date(2025, time.June, 6) // a Friday
	closures := []models.DayOffInstance{{
		Date:         day,
		StartMin:     16 * 60,
		EndMin:       -1,
		PackageScope: []string{"pkg-p"},
	}}
	slots := []models.TimeSlot{minuteSlot(15*60, 16*60), minuteSlot(16*60, 17*60)}
	now := date(2025, time.June, 1)

	kept := FilterSlots(slots, day, closures, "pkg-p", 0, now)
	if len(kept) != 1 || kept[0].Start != 15*60 {
		t.Fatalf("only the 15:00-16:00 slot may survive, got %v", kept)
	}

	// A package outside the scope keeps both slots.
	other := FilterSlots(slots, day, closures, "pkg-q", 0, now)
	if len(other) != 2 {
		t.Fatalf("unscoped package must keep both slots, got %v", other)
	}
}

func TestFilterSlotsOpeningSide(t *testing.T) {
	// Does not open until 12:00: starts strictly before noon are dropped.
	day := date(2025, time.June, 6)
	closures := []models.DayOffInstance{{Date: day, StartMin: -1, EndMin: 12 * 60}}
	slots := []models.TimeSlot{
		minuteSlot(11*60, 12*60),
		minuteSlot(12*60, 13*60),
	}

	kept := FilterSlots(slots, day, closures, "pkg-p", 0, date(2025, time.June, 1))
	if len(kept) != 1 || kept[0].Start != 12*60 {
		t.Fatalf("expected only the noon slot, got %v", kept)
	}
}

func TestFilterSlotsEmptyScopeRestrictsEveryPackage(t *testing.T) {
	day := date(2025, time.June, 6)
	closures := []models.DayOffInstance{{Date: day, StartMin: 10 * 60, EndMin: -1}}
	slots := []models.TimeSlot{minuteSlot(10*60, 11*60)}

	for _, pkg := range []string{"pkg-a", "pkg-b"} {
		if kept := FilterSlots(slots, day, closures, pkg, 0, date(2025, time.June, 1)); len(kept) != 0 {
			t.Fatalf("location-wide closure must restrict %s, got %v", pkg, kept)
		}
	}
}

func TestFilterSlotsLeadTime(t *testing.T) {
	day := date(2025, time.June, 6)
	now := time.Date(2025, time.June, 6, 8, 0, 0, 0, time.UTC)
	slots := []models.TimeSlot{
		minuteSlot(9*60, 10*60),  // 1h away, inside the 4h notice
		minuteSlot(13*60, 14*60), // 5h away, clears it
	}

	kept := FilterSlots(slots, day, nil, "pkg-p", 4, now)
	if len(kept) != 1 || kept[0].Start != 13*60 {
		t.Fatalf("expected only the 13:00 slot, got %v", kept)
	}

	// Zero notice keeps everything.
	if kept := FilterSlots(slots, day, nil, "pkg-p", 0, now); len(kept) != 2 {
		t.Fatalf("zero notice must keep all slots, got %v", kept)
	}
}

func TestFilterSlotsIgnoresFullClosureInstances(t *testing.T) {
	// A full closure already removed the date from the calendar; the slot
	// filter must not apply it.
	day := date(2025, time.June, 6)
	closures := []models.DayOffInstance{{Date: day, StartMin: -1, EndMin: -1}}
	slots := []models.TimeSlot{minuteSlot(9*60, 10*60)}

	kept := FilterSlots(slots, day, closures, "pkg-p", 0, date(2025, time.June, 1))
	if len(kept) != 1 {
		t.Fatalf("full-closure instances are not slot restrictions, got %v", kept)
	}
}

func TestFilterSlotsOtherDatesUnaffected(t *testing.T) {
	closures := []models.DayOffInstance{{Date: date(2025, time.June, 9), StartMin: 9 * 60, EndMin: -1}}
	slots := []models.TimeSlot{minuteSlot(9*60, 10*60)}

	kept := FilterSlots(slots, date(2025, time.June, 6), closures, "pkg-p", 0, date(2025, time.June, 1))
	if len(kept) != 1 {
		t.Fatalf("closure on another date must not drop slots, got %v", kept)
	}
}

func TestFilterSlotsIdempotent(t *testing.T) {
	day := date(2025, time.June, 6)
	now := time.Date(2025, time.June, 6, 8, 0, 0, 0, time.UTC)
	closures := []models.DayOffInstance{{Date: day, StartMin: 16 * 60, EndMin: -1}}
	slots := []models.TimeSlot{
		minuteSlot(9*60, 10*60),
		minuteSlot(15*60, 16*60),
		minuteSlot(16*60, 17*60),
	}

	once := FilterSlots(slots, day, closures, "pkg-p", 2, now)
	twice := FilterSlots(once, day, closures, "pkg-p", 2, now)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering a filtered list must be a no-op: %v vs %v", once, twice)
	}
}
