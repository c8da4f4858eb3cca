package frequency

import (
	"cmp"
	"time"

	"bikeshare/domain/entities/calendar"
)

// Ascending natural order for ordered types: numbers ascending, strings by byte order
func Ascending[K cmp.Ordered](a, b K) bool {
	return a < b
}

// WeekdayOrder sorts weekdays from Monday to Sunday
func WeekdayOrder(a, b time.Weekday) bool {
	return calendar.WeekdayRank(a) < calendar.WeekdayRank(b)
}
