package search

import "context"

// Source is the store side of a search.
type Source[E any] interface {
	Count(ctx context.Context, p Predicate) (int, error)
	Find(ctx context.Context, p Predicate, o Order, w Window) ([]E, error)
}

// MapFunc turns one fetched page into response rows, typically joining
// related data in a single batch.
type MapFunc[E, V any] func(ctx context.Context, rows []E) ([]V, error)

// Execute runs a search: validate paging, build the predicate, resolve the
// ordering, count, then fetch and map the requested window. Requests are
// rejected before the store is touched when any input is invalid.
func Execute[E, V any](ctx context.Context, src Source[E], schema Schema, req Request, mapRows MapFunc[E, V]) (*Result[V], error) {
	pager, err := NewPager(pageArgs(req))
	if err != nil {
		return nil, err
	}
	pred, err := schema.BuildPredicate(req.Filters)
	if err != nil {
		return nil, err
	}
	order, err := schema.ResolveSort(req.SortBy)
	if err != nil {
		return nil, err
	}

	total, err := src.Count(ctx, pred)
	if err != nil {
		return nil, err
	}
	page := pager.Page(total)

	res := &Result[V]{
		TotalRows:   total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.Index,
		PageSize:    page.Size,
		Data:        []V{},
	}
	if page.Empty(total) {
		return res, nil
	}

	rows, err := src.Find(ctx, pred, order, page.Window())
	if err != nil {
		return nil, err
	}
	data, err := mapRows(ctx, rows)
	if err != nil {
		return nil, err
	}
	if data != nil {
		res.Data = data
	}
	return res, nil
}

func pageArgs(req Request) (size, index int) {
	index, size = req.Page()
	return size, index
}
