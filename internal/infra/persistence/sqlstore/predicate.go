package sqlstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	"github.com/MiniShopTech/MiniShop/internal/pkg/query"
)

// conditions renders a predicate as WHERE terms. Live is applied here so
// that no read can skip the soft-delete filter. Fields are schema constants
// and name their columns directly.
func conditions(p search.Predicate) []query.Condition {
	clauses := p.Live().Clauses()
	conds := make([]query.Condition, 0, len(clauses))
	for _, c := range clauses {
		switch c := c.(type) {
		case search.Contains:
			conds = append(conds, query.Contains(string(c.Field), c.Value))
		case search.FlagEquals:
			conds = append(conds, query.Eq(string(c.Field), c.Value))
		case search.Equals:
			conds = append(conds, query.Eq(string(c.Field), c.Value))
		}
	}
	return conds
}

// nullableFields are sorted with NULL lowest, matching the zero time the
// in-memory store compares for an unset timestamp.
var nullableFields = map[search.Field]bool{
	search.FieldModifiedOn: true,
}

// ordered applies o plus the id tie-break and the page window.
func ordered(b *query.Builder, o search.Order, w search.Window) *query.Builder {
	dir := query.Asc
	if o.Desc {
		dir = query.Desc
	}
	if nullableFields[o.Field] {
		b = b.OrderByNullsLow(string(o.Field), dir)
	} else {
		b = b.OrderBy(string(o.Field), dir)
	}
	if o.Field != search.FieldID {
		b = b.OrderBy(string(search.FieldID), query.Asc)
	}
	if w.Take > 0 {
		b = b.Limit(int64(w.Take)).Offset(int64(w.Skip))
	}
	return b
}

func uuidArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}
	return args
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

type scanner interface {
	Scan(dest ...any) error
}
