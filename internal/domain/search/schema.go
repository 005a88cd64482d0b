package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FilterKind selects the clause a filter field produces.
type FilterKind int

const (
	FilterContains FilterKind = iota + 1
	FilterFlag
	FilterEquals
	// FilterID matches an identifier column; values must parse as UUIDs
	// and are compared in canonical lowercase form.
	FilterID
)

// FilterSpec binds a public filter name to an entity field.
type FilterSpec struct {
	Field Field
	Kind  FilterKind
}

// Schema lists what an entity can be filtered and sorted by. Names are the
// public spellings accepted in requests ("Name", "IsPresent", ...).
type Schema struct {
	Entity      string
	Filters     map[string]FilterSpec
	Sorts       map[string]Field
	DefaultSort Order
}

// BuildPredicate folds filters into a live predicate. Unknown filter names
// are ignored; malformed values are rejected.
func (s Schema) BuildPredicate(filters []Filter) (Predicate, error) {
	p := True()
	for _, f := range filters {
		spec, ok := s.Filters[f.FieldName]
		if !ok {
			continue
		}
		switch spec.Kind {
		case FilterContains:
			p = p.And(Contains{Field: spec.Field, Value: f.Value})
		case FilterEquals:
			p = p.And(Equals{Field: spec.Field, Value: f.Value})
		case FilterID:
			id, err := uuid.Parse(strings.TrimSpace(f.Value))
			if err != nil {
				return Predicate{}, fmt.Errorf("%w: %s filter %s expects an id, got %q",
					ErrInvalidFilterValue, s.Entity, f.FieldName, f.Value)
			}
			p = p.And(Equals{Field: spec.Field, Value: id.String()})
		case FilterFlag:
			v, ok := parseFlag(f.Value)
			if !ok {
				return Predicate{}, fmt.Errorf("%w: %s filter %s expects true or false, got %q",
					ErrInvalidFilterValue, s.Entity, f.FieldName, f.Value)
			}
			p = p.And(FlagEquals{Field: spec.Field, Value: v})
		}
	}
	return p.Live(), nil
}

// ResolveSort maps a requested ordering onto a field. A nil spec yields the
// schema default; an unknown field name is an error.
func (s Schema) ResolveSort(spec *SortSpec) (Order, error) {
	if spec == nil {
		return s.DefaultSort, nil
	}
	field, ok := s.Sorts[spec.FieldName]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s cannot be sorted by %q", ErrUnknownSortField, s.Entity, spec.FieldName)
	}
	return Order{Field: field, Desc: !spec.Ascending}, nil
}

// parseFlag accepts "true" and "false" in any case, ignoring surrounding blanks.
func parseFlag(v string) (value, ok bool) {
	v = strings.TrimSpace(v)
	switch {
	case strings.EqualFold(v, "true"):
		return true, true
	case strings.EqualFold(v, "false"):
		return false, true
	}
	return false, false
}
