package search

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Order is a resolved sort: one field and a direction. Ties are always
// broken by ascending identity.
type Order struct {
	Field Field
	Desc  bool
}

// Compare orders a and b under o, falling back to their keys.
func (o Order) Compare(a, b Record) int {
	c := compareValues(a.Value(o.Field), b.Value(o.Field))
	if o.Desc {
		c = -c
	}
	if c != 0 {
		return c
	}
	return strings.Compare(a.Key(), b.Key())
}

// Sort orders rows in place under o.
func Sort[R Record](rows []R, o Order) {
	slices.SortStableFunc(rows, func(a, b R) int {
		return o.Compare(a, b)
	})
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		if c := strings.Compare(fold(av), fold(bv)); c != 0 {
			return c
		}
		return strings.Compare(av, bv)
	case bool:
		bv, _ := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Compare(bv)
	case float64:
		bv, _ := b.(float64)
		return cmp.Compare(av, bv)
	case int64:
		bv, _ := b.(int64)
		return cmp.Compare(av, bv)
	case int:
		bv, _ := b.(int)
		return cmp.Compare(av, bv)
	}
	return 0
}
