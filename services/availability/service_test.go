package availability

import (
	"testing"
	"time"

	"venuebook/config"
	"venuebook/models"
)

func TestEffectiveWindowFillsCeilingFromConfig(t *testing.T) {
	prev := config.AppConfig.MaxBookingDays
	defer func() { config.AppConfig.MaxBookingDays = prev }()
	config.AppConfig.MaxBookingDays = 30

	got := effectiveWindow(models.BookingWindow{MinNoticeHours: 2})
	if got.MaxDaysAhead == nil || *got.MaxDaysAhead != 30 {
		t.Fatalf("expected configured ceiling 30, got %v", got.MaxDaysAhead)
	}
	if got.MinNoticeHours != 2 {
		t.Fatalf("notice hours changed: %v", got.MinNoticeHours)
	}
}

func TestEffectiveWindowKeepsExplicitHorizon(t *testing.T) {
	prev := config.AppConfig.MaxBookingDays
	defer func() { config.AppConfig.MaxBookingDays = prev }()
	config.AppConfig.MaxBookingDays = 30

	got := effectiveWindow(models.BookingWindow{MaxDaysAhead: intPtr(90)})
	if got.MaxDaysAhead == nil || *got.MaxDaysAhead != 90 {
		t.Fatalf("explicit horizon overridden: %v", got.MaxDaysAhead)
	}
}

func TestEffectiveWindowWithoutConfigLeavesWindowOpen(t *testing.T) {
	prev := config.AppConfig.MaxBookingDays
	defer func() { config.AppConfig.MaxBookingDays = prev }()
	config.AppConfig.MaxBookingDays = 0

	got := effectiveWindow(models.BookingWindow{})
	if got.MaxDaysAhead != nil {
		t.Fatalf("expected nil horizon, got %d", *got.MaxDaysAhead)
	}
}

func TestConfiguredCeilingBoundsResolvedDates(t *testing.T) {
	prev := config.AppConfig.MaxBookingDays
	defer func() { config.AppConfig.MaxBookingDays = prev }()
	config.AppConfig.MaxBookingDays = 5

	today := date(2025, time.June, 4)
	rules := []models.RecurrenceRule{{Type: models.RecurrenceDaily, IsActive: true}}
	window := effectiveWindow(models.BookingWindow{})

	dates := ResolveDates(rules, nil, window, today)
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if !dates[len(dates)-1].Equal(date(2025, time.June, 8)) {
		t.Fatalf("last date = %s", DateKey(dates[len(dates)-1]))
	}
}
