package statistics

import (
	"time"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequency"
)

// Every result carries Empty. When Empty is true the view had no rows and the
// remaining fields are zero values that must not be read as data.

// TimeStats most frequent times of travel
type TimeStats struct {
	Empty   bool                          `json:"empty"`
	Month   frequency.Entry[time.Month]   `json:"month"`
	Weekday frequency.Entry[time.Weekday] `json:"weekday"`
	Hour    frequency.Entry[int]          `json:"hour"`
	Elapsed time.Duration                 `json:"elapsed"`
}

// StationStats most popular stations and route
type StationStats struct {
	Empty        bool                    `json:"empty"`
	StartStation frequency.Entry[string] `json:"start_station"`
	EndStation   frequency.Entry[string] `json:"end_station"`
	Combination  frequency.Entry[string] `json:"combination"`
	Elapsed      time.Duration           `json:"elapsed"`
}

// DurationStats total and mean trip duration
type DurationStats struct {
	Empty        bool                             `json:"empty"`
	Trips        int                              `json:"trips"`
	TotalSeconds float64                          `json:"total_seconds"`
	MeanSeconds  float64                          `json:"mean_seconds"`
	Total        durationaccumulator.HoursMinutes `json:"total"`
	Mean         durationaccumulator.HoursMinutes `json:"mean"`
	Elapsed      time.Duration                    `json:"elapsed"`
}

// UserStats counts of users by user type, most frequent first
type UserStats struct {
	Empty     bool                      `json:"empty"`
	UserTypes []frequency.Entry[string] `json:"user_types"`
	Elapsed   time.Duration             `json:"elapsed"`
}

// BirthYearStats has its own Empty marker: rows may exist while every birth year is blank
type BirthYearStats struct {
	Empty      bool                 `json:"empty"`
	Earliest   int                  `json:"earliest"`
	Latest     int                  `json:"latest"`
	MostCommon frequency.Entry[int] `json:"most_common"`
}

// DemographicStats counts of users by gender and birth year figures.
// Rows with a blank gender or birth year are left out.
type DemographicStats struct {
	Empty      bool                      `json:"empty"`
	Genders    []frequency.Entry[string] `json:"genders"`
	BirthYears BirthYearStats            `json:"birth_years"`
	Elapsed    time.Duration             `json:"elapsed"`
}

// Summary all the statistic groups of one view. Demographics is nil when the
// city does not publish gender and birth year.
type Summary struct {
	Rows         int               `json:"rows"`
	Time         TimeStats         `json:"time"`
	Stations     StationStats      `json:"stations"`
	Duration     DurationStats     `json:"duration"`
	Users        UserStats         `json:"users"`
	Demographics *DemographicStats `json:"demographics,omitempty"`
}
