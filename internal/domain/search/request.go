package search

// Filter asks for rows whose FieldName matches Value.
type Filter struct {
	FieldName string
	Value     string
}

// SortSpec asks for rows ordered by FieldName.
type SortSpec struct {
	FieldName string
	Ascending bool
}

const (
	DefaultPageIndex = 1
	DefaultPageSize  = 1
)

// Request describes one page of a filtered, sorted listing. Nil page values
// fall back to DefaultPageIndex and DefaultPageSize.
type Request struct {
	PageIndex *int
	PageSize  *int
	Filters   []Filter
	SortBy    *SortSpec
}

// Page returns the requested page index and size with defaults applied.
func (r Request) Page() (index, size int) {
	index, size = DefaultPageIndex, DefaultPageSize
	if r.PageIndex != nil {
		index = *r.PageIndex
	}
	if r.PageSize != nil {
		size = *r.PageSize
	}
	return index, size
}

// Result is one page of mapped rows plus the figures needed to render a pager.
type Result[T any] struct {
	TotalRows   int `json:"total_rows"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	Data        []T `json:"data"`
}
