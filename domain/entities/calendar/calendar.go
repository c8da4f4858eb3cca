package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays returns the days of the week starting on Monday. This is the order
// used everywhere a weekday needs to be sorted.
func Weekdays() []time.Weekday {
	return []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
		time.Sunday,
	}
}

// WeekdayRank returns 0 for Monday up to 6 for Sunday
func WeekdayRank(day time.Weekday) int {
	return (int(day) + 6) % 7
}

// ParseMonth accepts full or three letter month names, case-insensitive
func ParseMonth(name string) (time.Month, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for month := time.January; month <= time.December; month++ {
		full := strings.ToLower(month.String())
		if normalized == full || (len(normalized) == 3 && strings.HasPrefix(full, normalized)) {
			return month, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, name)
}

// MonthRange returns every month from first to last, both included
func MonthRange(first time.Month, last time.Month) []time.Month {
	var months []time.Month
	for month := first; month <= last; month++ {
		months = append(months, month)
	}
	return months
}
