package triptable

import "bikeshare/domain/entities/trip"

// PageSize amount of raw rows shown per page
const PageSize = 5

// NextPage returns up to PageSize rows of view starting at offset and the
// offset of the following page. An offset at or past the end of the view
// returns an empty page and the same offset.
func NextPage(view *FilteredView, offset int) ([]trip.Record, int) {
	return nextPage(view, offset, PageSize)
}

func nextPage(view *FilteredView, offset int, size int) ([]trip.Record, int) {
	if offset < 0 {
		offset = 0
	}
	if offset >= view.Len() || size <= 0 {
		return []trip.Record{}, offset
	}

	end := offset + size
	if end > view.Len() {
		end = view.Len()
	}
	return view.slice(offset, end), end
}

// Cursor walks a view one page at a time
type Cursor struct {
	view     *FilteredView
	offset   int
	pageSize int
}

// NewCursor returns a cursor at the beginning of view. A pageSize <= 0 means PageSize.
func NewCursor(view *FilteredView, pageSize int) *Cursor {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return &Cursor{
		view:     view,
		pageSize: pageSize,
	}
}

// Next returns the following page, empty once the view is exhausted
func (c *Cursor) Next() []trip.Record {
	var page []trip.Record
	page, c.offset = nextPage(c.view, c.offset, c.pageSize)
	return page
}

// Offset returns the index of the first row of the next page
func (c *Cursor) Offset() int {
	return c.offset
}

// Done returns true if there are no more rows to show
func (c *Cursor) Done() bool {
	return c.offset >= c.view.Len()
}
