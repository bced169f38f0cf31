package availability

import (
	"strings"
	"time"

	"venuebook/models"
)

var ordinalIndex = map[string]int{
	"first":  1,
	"second": 2,
	"third":  3,
	"fourth": 4,
}

// RuleMatches reports whether date satisfies one recurrence rule. Unknown
// types and malformed monthly tokens never match; a bad rule degrades to
// fewer available dates instead of failing the calendar.
func RuleMatches(date time.Time, rule models.RecurrenceRule) bool {
	if !rule.IsActive {
		return false
	}
	switch rule.Type {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		name := weekdayName(date)
		for _, day := range rule.DayConfig {
			if strings.ToLower(day) == name {
				return true
			}
		}
		return false
	case models.RecurrenceMonthly:
		for _, token := range rule.DayConfig {
			if monthlyTokenMatches(date, token) {
				return true
			}
		}
		return false
	}
	return false
}

// AnyRuleMatches reports whether at least one active rule matches; packages
// with several rules OR them together.
func AnyRuleMatches(date time.Time, rules []models.RecurrenceRule) bool {
	for _, rule := range rules {
		if RuleMatches(date, rule) {
			return true
		}
	}
	return false
}

// monthlyTokenMatches evaluates one "<weekday>-<ordinal>" token. The "last"
// ordinal is a fixed-width window: any date within the final 7 days of its
// month matches, regardless of weekday. Call sites depend on that reading,
// so it is kept as-is rather than "last occurrence of the weekday".
func monthlyTokenMatches(date time.Time, token string) bool {
	parts := strings.SplitN(strings.ToLower(token), "-", 2)
	if len(parts) != 2 {
		return false
	}
	weekday, ordinal := parts[0], parts[1]

	if ordinal == "last" {
		return daysRemainingInMonth(date) < 7
	}

	idx, ok := ordinalIndex[ordinal]
	if !ok {
		return false
	}
	if weekdayName(date) != weekday {
		return false
	}
	return weekOfMonth(date) == idx
}

// weekOfMonth is ceil((dayOfMonth + offset) / 7) where offset is the weekday
// index (0 = Sunday) of the 1st of the month.
func weekOfMonth(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	offset := int(first.Weekday())
	return (date.Day() + offset + 6) / 7
}

func daysRemainingInMonth(date time.Time) int {
	lastDay := time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
	return lastDay.Day() - date.Day()
}
