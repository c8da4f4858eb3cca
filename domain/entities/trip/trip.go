package trip

import (
	"fmt"
	"time"
)

// Record struct that contains one trip of a city trip log
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: e.g. Subscriber, Customer
// + Gender: empty if unknown or if the city does not publish it
// + BirthYear: only meaningful when HasBirthYear is true
// + Month, Weekday, Hour: derived from StartTime by NewRecord, never recomputed
type Record struct {
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Duration     float64      `json:"duration"`
	StartStation string       `json:"start_station"`
	EndStation   string       `json:"end_station"`
	UserType     string       `json:"user_type"`
	Gender       string       `json:"gender,omitempty"`
	BirthYear    int          `json:"birth_year,omitempty"`
	HasBirthYear bool         `json:"-"`
	Month        time.Month   `json:"month"`
	Weekday      time.Weekday `json:"weekday"`
	Hour         int          `json:"hour"`
}

// NewRecord builds a Record and computes its derived fields from startTime
func NewRecord(startTime time.Time, endTime time.Time, duration float64, startStation string, endStation string, userType string) Record {
	return Record{
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Month:        startTime.Month(),
		Weekday:      startTime.Weekday(),
		Hour:         startTime.Hour(),
	}
}

// WithDemographics returns a copy of the record carrying gender and birth year.
// A birthYear <= 0 is stored as missing.
func (r Record) WithDemographics(gender string, birthYear int) Record {
	r.Gender = gender
	if birthYear > 0 {
		r.BirthYear = birthYear
		r.HasBirthYear = true
	}
	return r
}

// StationCombination returns the trip route, e.g: "from Canal St to Clark St"
func (r Record) StationCombination() string {
	return fmt.Sprintf("from %s to %s", r.StartStation, r.EndStation)
}
