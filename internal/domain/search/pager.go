package search

import "math"

// Window is the (skip, take) pair used to fetch one page. Take == 0 means
// no upper bound.
type Window struct {
	Skip int
	Take int
}

// Page describes one page of a result set of known size.
type Page struct {
	Index      int
	Size       int
	Skip       int
	TotalPages int
}

// Window returns the rows this page covers.
func (p Page) Window() Window {
	return Window{Skip: p.Skip, Take: p.Size}
}

// Empty reports whether the page starts at or after the last row.
func (p Page) Empty(totalRows int) bool {
	return p.Skip >= totalRows
}

// Pager holds a validated page request.
type Pager struct {
	index int
	size  int
}

// NewPager validates a page request. Page indexes start at 1.
func NewPager(pageSize, pageIndex int) (Pager, error) {
	if pageSize <= 0 {
		return Pager{}, ErrInvalidPageSize
	}
	if pageIndex < 1 {
		return Pager{}, ErrInvalidPageIndex
	}
	return Pager{index: pageIndex, size: pageSize}, nil
}

// Page computes the page for a result set of totalRows.
func (p Pager) Page(totalRows int) Page {
	if totalRows < 0 {
		totalRows = 0
	}
	skip := math.MaxInt
	if p.index-1 <= math.MaxInt/p.size {
		skip = (p.index - 1) * p.size
	}
	return Page{
		Index:      p.index,
		Size:       p.size,
		Skip:       skip,
		TotalPages: totalRows/p.size + boolToInt(totalRows%p.size != 0),
	}
}

// Paginate computes skip and total page count for the given figures.
func Paginate(totalRows, pageSize, pageIndex int) (Page, error) {
	p, err := NewPager(pageSize, pageIndex)
	if err != nil {
		return Page{}, err
	}
	return p.Page(totalRows), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
