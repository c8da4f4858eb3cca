package schema

import (
	"fmt"

	"bikeshare/domain/entities/city"
)

// Column names as they appear in the source headers
const (
	StartTime    = "Start Time"
	EndTime      = "End Time"
	TripDuration = "Trip Duration"
	StartStation = "Start Station"
	EndStation   = "End Station"
	UserType     = "User Type"
	Gender       = "Gender"
	BirthYear    = "Birth Year"
)

var (
	baseColumns        = []string{StartTime, EndTime, TripDuration, StartStation, EndStation, UserType}
	demographicColumns = []string{Gender, BirthYear}
)

// Schema describes the shape of one city's trip source
// + City: city the schema belongs to
// + Columns: ordered column names present in the source
// + HasDemographics: true if Gender and Birth Year exist in the source
type Schema struct {
	City            city.City
	Columns         []string
	HasDemographics bool
}

// ForCity returns the schema of the given city. Washington does not publish
// gender or birth year, so its schema has no demographic columns at all.
func ForCity(c city.City) (Schema, error) {
	switch c {
	case city.Chicago, city.NewYork:
		columns := make([]string, 0, len(baseColumns)+len(demographicColumns))
		columns = append(columns, baseColumns...)
		columns = append(columns, demographicColumns...)
		return Schema{City: c, Columns: columns, HasDemographics: true}, nil
	case city.Washington:
		columns := make([]string, len(baseColumns))
		copy(columns, baseColumns)
		return Schema{City: c, Columns: columns, HasDemographics: false}, nil
	default:
		return Schema{}, fmt.Errorf("%w: %w", ErrSchema, city.ErrUnknownCity)
	}
}

// Has returns true if column is part of the schema
func (s Schema) Has(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}
