package triptable

import (
	"fmt"
	"time"
)

// Criteria is the optional month and optional weekday to filter trips by.
// The zero value applies no filter.
type Criteria struct {
	month      time.Month
	weekday    time.Weekday
	hasMonth   bool
	hasWeekday bool
}

func NoFilter() Criteria {
	return Criteria{}
}

func ByMonth(month time.Month) Criteria {
	return NoFilter().WithMonth(month)
}

func ByWeekday(weekday time.Weekday) Criteria {
	return NoFilter().WithWeekday(weekday)
}

func (c Criteria) WithMonth(month time.Month) Criteria {
	c.month = month
	c.hasMonth = true
	return c
}

func (c Criteria) WithWeekday(weekday time.Weekday) Criteria {
	c.weekday = weekday
	c.hasWeekday = true
	return c
}

// Month returns the month to filter by and true, or false if any month is accepted
func (c Criteria) Month() (time.Month, bool) {
	return c.month, c.hasMonth
}

// Weekday returns the weekday to filter by and true, or false if any day is accepted
func (c Criteria) Weekday() (time.Weekday, bool) {
	return c.weekday, c.hasWeekday
}

// IsNoFilter returns true if neither month nor weekday is set
func (c Criteria) IsNoFilter() bool {
	return !c.hasMonth && !c.hasWeekday
}

// MonthLabel returns the month name or "All"
func (c Criteria) MonthLabel() string {
	if !c.hasMonth {
		return allLabel
	}
	return c.month.String()
}

// WeekdayLabel returns the weekday name or "All"
func (c Criteria) WeekdayLabel() string {
	if !c.hasWeekday {
		return allLabel
	}
	return c.weekday.String()
}

func (c Criteria) String() string {
	return fmt.Sprintf("month: %s, day of week: %s", c.MonthLabel(), c.WeekdayLabel())
}
