package durationaccumulator

import "math"

// HoursMinutes is a duration split in whole hours and the whole minutes left.
// Seconds that do not complete a minute are dropped, never rounded.
type HoursMinutes struct {
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
}

// FromSeconds splits seconds with floor division: hours = s // 3600, minutes = (s % 3600) // 60
func FromSeconds(seconds float64) HoursMinutes {
	hours := math.Floor(seconds / 3600)
	remainder := seconds - hours*3600
	return HoursMinutes{
		Hours:   int64(hours),
		Minutes: int64(math.Floor(remainder / 60)),
	}
}

// DurationAccumulator struct that collects trip durations
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of the durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(seconds float64) {
	da.Counter += 1
	da.TotalDuration += seconds
}

func (da *DurationAccumulator) IsEmpty() bool {
	return da.Counter == 0
}

// GetAverageDuration returns the mean duration in seconds and false if nothing was collected
func (da *DurationAccumulator) GetAverageDuration() (float64, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDuration / float64(da.Counter), true
}
