package availability

import (
	"time"

	"go.uber.org/zap"

	"venuebook/models"
)

// ExpandDayOffs turns raw day-off records into concrete per-date instances.
// Annually recurring records get one instance per year from horizonStart's
// year through horizonEnd's year; the first year's occurrence is dropped when
// it already passed, later years are kept unconditionally so the lookahead
// always covers a full year. One-time records emit their literal date only
// when it has not passed. Records with an unparsable date or time window are
// skipped and logged; the rest of the expansion proceeds.
func ExpandDayOffs(records []models.DayOffRecord, horizonStart, horizonEnd time.Time, logger *zap.Logger) []models.DayOffInstance {
	start := Midnight(horizonStart)
	endYear := horizonEnd.Year()
	if endYear <= start.Year() {
		endYear = start.Year() + 1
	}

	var instances []models.DayOffInstance
	for _, rec := range records {
		base, err := ParseDate(rec.Date, start.Location())
		if err != nil {
			logger.Warn("skipping day-off with invalid date",
				zap.String("dayOffID", rec.ID), zap.String("date", rec.Date))
			continue
		}
		startMin, endMin, err := parseWindow(rec)
		if err != nil {
			logger.Warn("skipping day-off with invalid time window",
				zap.String("dayOffID", rec.ID), zap.Error(err))
			continue
		}

		emit := func(date time.Time) {
			instances = append(instances, models.DayOffInstance{
				Date:         date,
				StartMin:     startMin,
				EndMin:       endMin,
				PackageScope: rec.PackageScope,
				RoomScope:    rec.RoomScope,
				Reason:       rec.Reason,
			})
		}

		if rec.RecurringAnnually {
			for year := start.Year(); year <= endYear; year++ {
				occ := time.Date(year, base.Month(), base.Day(), 0, 0, 0, 0, start.Location())
				if occ.Before(start) {
					continue
				}
				emit(occ)
			}
		} else if !base.Before(start) {
			emit(base)
		}
	}
	return instances
}

func parseWindow(rec models.DayOffRecord) (startMin, endMin int, err error) {
	startMin, endMin = -1, -1
	if rec.TimeStart != "" {
		if startMin, err = ParseClock(rec.TimeStart); err != nil {
			return -1, -1, err
		}
	}
	if rec.TimeEnd != "" {
		if endMin, err = ParseClock(rec.TimeEnd); err != nil {
			return -1, -1, err
		}
	}
	return startMin, endMin, nil
}

// PartitionDayOffs splits expanded instances into the full-closure set (keyed
// by date, allowed to blank a date out of the calendar) and the partial or
// scoped instances that only filter slots on matching dates.
func PartitionDayOffs(instances []models.DayOffInstance) (full map[string]models.DayOffInstance, partial []models.DayOffInstance) {
	full = make(map[string]models.DayOffInstance)
	for _, inst := range instances {
		if inst.IsFullClosure() {
			full[DateKey(inst.Date)] = inst
		} else {
			partial = append(partial, inst)
		}
	}
	return full, partial
}
