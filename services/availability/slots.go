package availability

import (
	"time"

	"venuebook/models"
)

// FilterSlots drops candidate slots that fall inside a partial closure window
// or inside the minimum-notice lead time. It is idempotent and never mutates
// its input. Room-scoped closures are resolved by the external feed before
// slots reach this filter; only time and package scope are evaluated here.
func FilterSlots(slots []models.TimeSlot, date time.Time, dayOffs []models.DayOffInstance, packageID string, minNoticeHours float64, now time.Time) []models.TimeSlot {
	dayMid := Midnight(date)
	cutoff := now.Add(noticeDuration(minNoticeHours))

	var kept []models.TimeSlot
	for _, slot := range slots {
		if slotRestricted(slot, dayMid, dayOffs, packageID) {
			continue
		}
		if minNoticeHours > 0 {
			start := dayMid.Add(time.Duration(slot.Start) * time.Minute)
			if start.Before(cutoff) {
				continue
			}
		}
		kept = append(kept, slot)
	}
	return kept
}

// slotRestricted checks a slot against the partial closures for its date.
// On the closing side a slot starting exactly at the cutoff is dropped; on
// the opening side only starts strictly before the cutoff are dropped.
func slotRestricted(slot models.TimeSlot, day time.Time, dayOffs []models.DayOffInstance, packageID string) bool {
	for _, inst := range dayOffs {
		if inst.IsFullClosure() {
			continue
		}
		if !inst.Date.Equal(day) {
			continue
		}
		if !inst.AppliesToPackage(packageID) {
			continue
		}
		if inst.StartMin >= 0 && (slot.Start >= inst.StartMin || slot.End > inst.StartMin) {
			return true
		}
		if inst.EndMin >= 0 && slot.Start < inst.EndMin {
			return true
		}
	}
	return false
}
