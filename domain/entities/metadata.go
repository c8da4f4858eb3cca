package entities

import "bikeshare/domain/entities/city"

// Metadata describes a message that leaves the explorer
// + City: city the trips belong to
// + Kind: lets consumers recognize what the payload is
// + Producer: component that built the message
// + Filters: human readable criteria applied to the trips, e.g: month: June, day of week: All
type Metadata struct {
	City     city.City `json:"city"`
	Kind     string    `json:"kind"`
	Producer string    `json:"producer"`
	Filters  string    `json:"filters"`
}

func NewMetadata(c city.City, kind string, producer string, filters string) Metadata {
	return Metadata{
		City:     c,
		Kind:     kind,
		Producer: producer,
		Filters:  filters,
	}
}

func (m Metadata) GetCity() city.City {
	return m.City
}
