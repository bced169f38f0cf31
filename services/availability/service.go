package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"venuebook/config"
	"venuebook/models"
	"venuebook/utils"
)

const calendarCacheTTL = 5 * time.Minute

func calendarCacheKey(locationID, packageID string) string {
	return fmt.Sprintf("calendar:%s:%s", locationID, packageID)
}

// loadPackageContext fetches the package, its effective booking window
// (package override or location fallback) and the expanded day-off instances
// for the location, over a one-year horizon from today.
func (s *DefaultService) loadPackageContext(ctx context.Context, locationID, packageID string, today time.Time) (*models.Package, models.BookingWindow, []models.DayOffInstance, error) {
	logger := utils.GetLogger()

	pkg, err := s.PackageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, models.BookingWindow{}, nil, err
	}

	var window models.BookingWindow
	if pkg.Window != nil {
		window = *pkg.Window
	} else {
		loc, err := s.PackageRepo.GetLocation(ctx, locationID)
		if err != nil {
			logger.Error("failed to load location for window fallback",
				zap.String("locationID", locationID), zap.Error(err))
			return nil, models.BookingWindow{}, nil, err
		}
		window = loc.DefaultWindow
	}
	window = effectiveWindow(window)

	records, err := s.DayOffRepo.ListByLocation(ctx, locationID)
	if err != nil {
		// Day-offs unavailable degrades to "no closures" rather than an
		// empty calendar.
		logger.Error("failed to load day-offs",
			zap.String("locationID", locationID), zap.Error(err))
		records = nil
	}

	horizonStart := Midnight(today)
	horizonEnd := horizonStart.AddDate(1, 0, 0)
	instances := ExpandDayOffs(records, horizonStart, horizonEnd, logger)

	return pkg, window, instances, nil
}

// effectiveWindow fills an unset horizon from the configured ceiling, so a
// package or location that never states one still stops at the deployment's
// MAX_BOOKING_DAYS rather than the compiled-in default.
func effectiveWindow(window models.BookingWindow) models.BookingWindow {
	if window.MaxDaysAhead == nil && config.AppConfig.MaxBookingDays > 0 {
		days := config.AppConfig.MaxBookingDays
		window.MaxDaysAhead = &days
	}
	return window
}

func (s *DefaultService) GetBookableDates(ctx context.Context, locationID, packageID string) (*models.AvailabilityResult, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, calendarCacheKey(locationID, packageID)).Result(); err == nil {
			var result models.AvailabilityResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				return &result, nil
			}
		}
	}

	today := time.Now()
	pkg, window, instances, err := s.loadPackageContext(ctx, locationID, packageID, today)
	if err != nil {
		return nil, err
	}

	dates := ResolveDates(pkg.Rules, instances, window, today)
	full, partial := PartitionDayOffs(instances)

	result := &models.AvailabilityResult{
		PackageID:       packageID,
		BookableDates:   make([]string, 0, len(dates)),
		PartialClosures: make(map[string]models.DayOffInstance),
	}
	for _, d := range dates {
		result.BookableDates = append(result.BookableDates, DateKey(d))
	}
	for key := range full {
		result.FullClosureDates = append(result.FullClosureDates, key)
	}
	sort.Strings(result.FullClosureDates)
	for _, inst := range partial {
		if inst.AppliesToPackage(packageID) {
			result.PartialClosures[DateKey(inst.Date)] = inst
		}
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			s.Cache.Set(ctx, calendarCacheKey(locationID, packageID), payload, calendarCacheTTL)
		}
	}
	return result, nil
}

func (s *DefaultService) GetSlotsForDate(ctx context.Context, locationID, packageID, date string) (*models.SlotListResult, error) {
	logger := utils.GetLogger()
	now := time.Now()

	day, err := ParseDate(date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	_, window, instances, err := s.loadPackageContext(ctx, locationID, packageID, now)
	if err != nil {
		return nil, err
	}

	result := &models.SlotListResult{PackageID: packageID, Date: date}

	candidates, err := s.SlotRepo.GetAvailableSlots(ctx, packageID, date)
	if err != nil {
		// The date stays selectable; the client retries or waits for a
		// live push to arrive.
		logger.Warn("slot source unavailable",
			zap.String("packageID", packageID), zap.String("date", date), zap.Error(err))
		result.AvailabilityError = "Slots are unknown for this date"
		return result, nil
	}

	result.Slots = FilterSlots(candidates, day, instances, packageID, window.MinNoticeHours, now)
	if len(result.Slots) == 0 {
		result.AvailabilityError = "No bookable slots remain for this date"
	}
	return result, nil
}

// SlotFilter returns the FilterFunc the live merger applies to each push for
// this package, closing over the current closures and notice window.
func (s *DefaultService) SlotFilter(ctx context.Context, locationID, packageID string) (func(date string, slots []models.TimeSlot) []models.TimeSlot, error) {
	now := time.Now()
	_, window, instances, err := s.loadPackageContext(ctx, locationID, packageID, now)
	if err != nil {
		return nil, err
	}
	return func(date string, slots []models.TimeSlot) []models.TimeSlot {
		day, err := ParseDate(date, now.Location())
		if err != nil {
			return nil
		}
		return FilterSlots(slots, day, instances, packageID, window.MinNoticeHours, time.Now())
	}, nil
}

func (s *DefaultService) GetCalendarView(ctx context.Context, req CalendarViewRequest) ([]models.CalendarDay, error) {
	today := time.Now()
	monthStart, err := time.ParseInLocation("2006-01", req.Month, today.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", req.Month, err)
	}

	pkg, window, instances, err := s.loadPackageContext(ctx, req.LocationID, req.PackageID, today)
	if err != nil {
		return nil, err
	}

	dates := ResolveDates(pkg.Rules, instances, window, today)
	bookable := make(map[string]bool, len(dates))
	for _, d := range dates {
		bookable[DateKey(d)] = true
	}
	// An edited booking keeps its original date visible even when it would
	// no longer validate.
	if req.KeepDate != "" {
		bookable[req.KeepDate] = true
	}

	full, partialList := PartitionDayOffs(instances)
	partials := make(map[string]models.DayOffInstance)
	for _, inst := range partialList {
		if inst.AppliesToPackage(req.PackageID) {
			partials[DateKey(inst.Date)] = inst
		}
	}

	dayCtx := DayContext{
		Today:         today,
		FullClosures:  full,
		Partials:      partials,
		Breaks:        pkg.Breaks,
		BookableDates: bookable,
	}
	if req.Selected != "" {
		if sel, err := ParseDate(req.Selected, today.Location()); err == nil {
			dayCtx.Selected = sel
		}
	}

	monthEnd := monthStart.AddDate(0, 1, 0)
	var days []models.CalendarDay
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		state := ClassifyDay(d, dayCtx)
		day := models.CalendarDay{Date: DateKey(d), State: state}
		switch state {
		case models.DayFullClosure, models.DayPartialClosure:
			if inst, ok := full[DateKey(d)]; ok {
				day.Reason = inst.Reason
			} else if inst, ok := partials[DateKey(d)]; ok {
				day.Reason = inst.Reason
			}
		case models.DayBreakNoted:
			for _, b := range pkg.Breaks {
				if b.Label != "" {
					day.Reason = b.Label
					break
				}
			}
		}
		days = append(days, day)
	}
	return days, nil
}

// InvalidateCalendar drops cached calendars for a location after its
// day-offs or packages change.
func (s *DefaultService) InvalidateCalendar(ctx context.Context, locationID string) error {
	if s.Cache == nil {
		return nil
	}
	iter := s.Cache.Scan(ctx, 0, calendarCacheKey(locationID, "*"), 100).Iterator()
	for iter.Next(ctx) {
		s.Cache.Del(ctx, iter.Val())
	}
	return iter.Err()
}
