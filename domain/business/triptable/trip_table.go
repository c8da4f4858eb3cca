package triptable

import (
	"bikeshare/domain/entities/city"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/schema"
)

// TripTable holds every trip of one city in source order. Once built it is
// never modified; views only index into it.
type TripTable struct {
	schema  schema.Schema
	records []trip.Record
}

func NewTripTable(tableSchema schema.Schema, records []trip.Record) *TripTable {
	return &TripTable{
		schema:  tableSchema,
		records: records,
	}
}

func (tt *TripTable) GetCity() city.City {
	return tt.schema.City
}

// HasDemographics returns true if the source of the table carries gender and birth year
func (tt *TripTable) HasDemographics() bool {
	return tt.schema.HasDemographics
}

func (tt *TripTable) Len() int {
	return len(tt.records)
}

// Record returns the i-th record of the table
func (tt *TripTable) Record(i int) trip.Record {
	return tt.records[i]
}

// All returns a view over the whole table
func (tt *TripTable) All() *FilteredView {
	indexes := make([]int, len(tt.records))
	for i := range indexes {
		indexes[i] = i
	}
	return &FilteredView{
		table:    tt,
		criteria: NoFilter(),
		indexes:  indexes,
	}
}
