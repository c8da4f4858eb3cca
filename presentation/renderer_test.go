package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/business/triptable"
	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/statistics"
)

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSelection(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Selection(city.NewYork, triptable.ByMonth(time.March), 12345)

	assertContains(t, buf.String(), "New York", "March", "All", "12,345")
}

func TestPage(t *testing.T) {
	start := time.Date(2017, time.January, 15, 8, 0, 0, 0, time.UTC)
	records := []trip.Record{
		trip.NewRecord(start, start.Add(10*time.Minute), 600, "Canal St", "Clark St", "Subscriber").WithDemographics("Male", 1992),
		trip.NewRecord(start, start.Add(time.Minute), 60.5, "Lake St", "Canal St", "Customer"),
	}

	var buf bytes.Buffer
	NewRenderer(&buf).Page(records, 5, true)

	assertContains(t, buf.String(), "Start Station", "Birth Year", "Canal St", "1992", "60.5", "Sunday", "5", "6")
}

func TestPageWithoutDemographics(t *testing.T) {
	start := time.Date(2017, time.June, 1, 8, 0, 0, 0, time.UTC)
	records := []trip.Record{trip.NewRecord(start, start, 1, "A", "B", "Subscriber")}

	var buf bytes.Buffer
	NewRenderer(&buf).Page(records, 0, false)

	if strings.Contains(buf.String(), "Gender") {
		t.Errorf("page without demographics should not show Gender:\n%s", buf.String())
	}
}

func TestEmptyPage(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Page(nil, 10, true)

	assertContains(t, buf.String(), "no more rows")
}

func TestSummary(t *testing.T) {
	summary := &statistics.Summary{
		Rows: 3,
		Time: statistics.TimeStats{
			Month:   frequency.Entry[time.Month]{Value: time.June, Count: 2},
			Weekday: frequency.Entry[time.Weekday]{Value: time.Wednesday, Count: 2},
			Hour:    frequency.Entry[int]{Value: 17, Count: 2},
		},
		Stations: statistics.StationStats{
			StartStation: frequency.Entry[string]{Value: "Streeter Dr & Grand Ave", Count: 2},
			EndStation:   frequency.Entry[string]{Value: "Lake Shore Dr & Monroe St", Count: 2},
			Combination:  frequency.Entry[string]{Value: "from Lake Shore Dr & Monroe St to Streeter Dr & Grand Ave", Count: 1},
		},
		Duration: statistics.DurationStats{
			Trips: 3,
			Total: durationaccumulator.HoursMinutes{Hours: 280871, Minutes: 40},
			Mean:  durationaccumulator.HoursMinutes{Hours: 0, Minutes: 15},
		},
		Users: statistics.UserStats{
			UserTypes: []frequency.Entry[string]{{Value: "Subscriber", Count: 238889}, {Value: "Customer", Count: 61110}},
		},
		Demographics: &statistics.DemographicStats{
			Genders: []frequency.Entry[string]{{Value: "Male", Count: 181190}},
			BirthYears: statistics.BirthYearStats{
				Earliest:   1899,
				Latest:     2016,
				MostCommon: frequency.Entry[int]{Value: 1989, Count: 10},
			},
		},
	}

	var buf bytes.Buffer
	NewRenderer(&buf).Summary(summary)

	assertContains(t, buf.String(),
		"The most common month for travel is June",
		"Wednesday",
		"17",
		"Streeter Dr & Grand Ave",
		"280,871 hours and 40 minutes",
		"0 hours and 15 minutes",
		"238,889",
		"Male",
		"1899", "2016", "1989",
		"This took",
	)
}

func TestSummaryEmptyGroups(t *testing.T) {
	summary := &statistics.Summary{
		Time:     statistics.TimeStats{Empty: true},
		Stations: statistics.StationStats{Empty: true},
		Duration: statistics.DurationStats{Empty: true},
		Users:    statistics.UserStats{Empty: true},
	}

	var buf bytes.Buffer
	NewRenderer(&buf).Summary(summary)

	output := buf.String()
	if got := strings.Count(output, noData); got != 4 {
		t.Errorf("expected 4 no data markers, got %d:\n%s", got, output)
	}
	if strings.Contains(output, "most common month") {
		t.Errorf("empty groups should not report values:\n%s", output)
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Error(errors.New("unknown city"))

	assertContains(t, buf.String(), "unknown city")
}

func TestUserStatsWithoutDemographics(t *testing.T) {
	users := statistics.UserStats{
		UserTypes: []frequency.Entry[string]{{Value: "Subscriber", Count: 5}},
	}

	var buf bytes.Buffer
	NewRenderer(&buf).UserStats(users, nil)

	output := buf.String()
	assertContains(t, output, "Subscriber", "not reported for this city")
	if strings.Contains(output, "counts of users by gender") {
		t.Errorf("gender counts printed without demographics:\n%s", output)
	}
}
