package triptable

import (
	"reflect"
	"testing"
	"time"
)

func sevenRowView(t *testing.T) *FilteredView {
	var starts []time.Time
	for day := 1; day <= 7; day++ {
		starts = append(starts, date(time.March, day, 8))
	}
	return newTestTable(t, starts...).All()
}

func TestNextPage(t *testing.T) {
	view := sevenRowView(t)

	tests := []struct {
		name       string
		offset     int
		want       []string
		wantOffset int
	}{
		{name: "first page", offset: 0, want: []string{"station-0", "station-1", "station-2", "station-3", "station-4"}, wantOffset: 5},
		{name: "tail", offset: 5, want: []string{"station-5", "station-6"}, wantOffset: 7},
		{name: "exhausted", offset: 7, want: []string{}, wantOffset: 7},
		{name: "past the end", offset: 42, want: []string{}, wantOffset: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, next := NextPage(view, tt.offset)
			if got := stations(rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NextPage(%d) rows = %v, want %v", tt.offset, got, tt.want)
			}
			if next != tt.wantOffset {
				t.Errorf("NextPage(%d) offset = %d, want %d", tt.offset, next, tt.wantOffset)
			}
		})
	}
}

func TestCursor(t *testing.T) {
	cursor := NewCursor(sevenRowView(t), 3)

	var sizes []int
	for !cursor.Done() {
		sizes = append(sizes, len(cursor.Next()))
	}

	if !reflect.DeepEqual(sizes, []int{3, 3, 1}) {
		t.Errorf("page sizes = %v, want [3 3 1]", sizes)
	}
	if rows := cursor.Next(); len(rows) != 0 {
		t.Errorf("exhausted cursor returned %d rows", len(rows))
	}
	if cursor.Offset() != 7 {
		t.Errorf("Offset() = %d, want 7", cursor.Offset())
	}
}

func TestCursorDefaultPageSize(t *testing.T) {
	cursor := NewCursor(sevenRowView(t), 0)
	if got := len(cursor.Next()); got != PageSize {
		t.Errorf("first page size = %d, want %d", got, PageSize)
	}
}
