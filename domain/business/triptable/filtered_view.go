package triptable

import (
	"bikeshare/domain/entities/trip"
)

const allLabel = "All"

// FilteredView is the ordered subset of a TripTable that matches some Criteria.
// It borrows the table records and is never mutated; filtering again returns a new view.
type FilteredView struct {
	table    *TripTable
	criteria Criteria
	indexes  []int
}

// Filter returns the rows of table that match criteria, in table order
func Filter(table *TripTable, criteria Criteria) *FilteredView {
	return table.All().Filter(criteria)
}

// Filter narrows the view down to the rows that also match criteria.
// Month and weekday predicates are combined with AND; an empty criteria
// returns a view with the same rows.
func (fv *FilteredView) Filter(criteria Criteria) *FilteredView {
	month, byMonth := criteria.Month()
	weekday, byWeekday := criteria.Weekday()

	indexes := make([]int, 0, len(fv.indexes))
	for _, idx := range fv.indexes {
		record := &fv.table.records[idx]
		if byMonth && record.Month != month {
			continue
		}
		if byWeekday && record.Weekday != weekday {
			continue
		}
		indexes = append(indexes, idx)
	}

	return &FilteredView{
		table:    fv.table,
		criteria: mergeCriteria(fv.criteria, criteria),
		indexes:  indexes,
	}
}

func (fv *FilteredView) Table() *TripTable {
	return fv.table
}

func (fv *FilteredView) Criteria() Criteria {
	return fv.criteria
}

func (fv *FilteredView) HasDemographics() bool {
	return fv.table.HasDemographics()
}

func (fv *FilteredView) Len() int {
	return len(fv.indexes)
}

func (fv *FilteredView) IsEmpty() bool {
	return len(fv.indexes) == 0
}

// Each calls fn for every row of the view in order. fn receives a pointer to
// the table record and must not modify it.
func (fv *FilteredView) Each(fn func(record *trip.Record)) {
	for _, idx := range fv.indexes {
		fn(&fv.table.records[idx])
	}
}

// Records returns a copy of the rows of the view
func (fv *FilteredView) Records() []trip.Record {
	return fv.slice(0, len(fv.indexes))
}

func (fv *FilteredView) slice(from int, to int) []trip.Record {
	records := make([]trip.Record, 0, to-from)
	for _, idx := range fv.indexes[from:to] {
		records = append(records, fv.table.records[idx])
	}
	return records
}

// mergeCriteria adds to previous the predicates it does not have yet. A view
// keeps the first month and weekday it was narrowed by; a different value
// later on only empties the rows.
func mergeCriteria(previous Criteria, next Criteria) Criteria {
	merged := previous
	if _, ok := previous.Month(); !ok {
		if month, ok := next.Month(); ok {
			merged = merged.WithMonth(month)
		}
	}
	if _, ok := previous.Weekday(); !ok {
		if weekday, ok := next.Weekday(); ok {
			merged = merged.WithWeekday(weekday)
		}
	}
	return merged
}
