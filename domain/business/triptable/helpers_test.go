package triptable

import (
	"fmt"
	"testing"
	"time"

	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/schema"
)

// newTestTable builds a table with one trip per start time, named after its position
func newTestTable(t *testing.T, starts ...time.Time) *TripTable {
	t.Helper()

	tableSchema, err := schema.ForCity(city.Chicago)
	if err != nil {
		t.Fatalf("schema.ForCity: %v", err)
	}

	records := make([]trip.Record, 0, len(starts))
	for i, start := range starts {
		station := fmt.Sprintf("station-%d", i)
		records = append(records, trip.NewRecord(start, start.Add(time.Minute), 60, station, station, "Subscriber"))
	}
	return NewTripTable(tableSchema, records)
}

func date(month time.Month, day int, hour int) time.Time {
	return time.Date(2017, month, day, hour, 0, 0, 0, time.UTC)
}

func stations(records []trip.Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.StartStation)
	}
	return names
}
