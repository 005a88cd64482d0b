package query

import (
	"fmt"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

type orderTerm struct {
	column   string
	dir      Direction
	nullsLow bool
}

// Builder constructs SELECT statements. Every method returns a modified copy,
// so a base builder can be shared between a page query and its count query.
type Builder struct {
	dialect    Dialect
	table      string
	selectCols []string
	where      []Condition
	orderBy    []orderTerm
	limit      int64
	offset     int64
}

// From creates a Builder for table in dialect d.
func From(d Dialect, table string) *Builder {
	return &Builder{dialect: d, table: table}
}

// Select appends columns to the select list.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a condition. Multiple conditions are combined with AND.
func (b *Builder) Where(conds ...Condition) *Builder {
	nb := b.clone()
	nb.where = append(nb.where, conds...)
	return nb
}

// OrderBy appends a sort term. Later terms break ties of earlier ones.
func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{column: column, dir: dir})
	return nb
}

// OrderByNullsLow appends a sort term on a nullable column, treating NULL
// as the lowest value in every dialect. MySQL already does; Postgres gets
// an explicit NULLS FIRST or NULLS LAST.
func (b *Builder) OrderByNullsLow(column string, dir Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{column: column, dir: dir, nullsLow: true})
	return nb
}

// Limit caps the number of rows. Zero means no limit.
func (b *Builder) Limit(n int64) *Builder {
	nb := b.clone()
	nb.limit = n
	return nb
}

// Offset skips rows. It is only rendered together with a limit.
func (b *Builder) Offset(n int64) *Builder {
	nb := b.clone()
	nb.offset = n
	return nb
}

// Count returns a COUNT(*) builder with the same FROM and WHERE clauses.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.orderBy = nil
	nb.limit = 0
	nb.offset = 0
	return nb
}

// Build renders the statement and its positional arguments.
func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(b.selectCols, ", "))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	if len(b.where) > 0 {
		parts := make([]string, 0, len(b.where))
		for _, cond := range b.where {
			fragment, condArgs := cond.SQL(b.dialect, len(args))
			parts = append(parts, fragment)
			args = append(args, condArgs...)
		}
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, t := range b.orderBy {
			terms = append(terms, b.dialect.orderTerm(t))
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(terms, ", "))
	}

	if b.limit > 0 {
		args = append(args, b.limit)
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.dialect.Placeholder(len(args)))
		if b.offset > 0 {
			args = append(args, b.offset)
			sb.WriteString(" OFFSET ")
			sb.WriteString(b.dialect.Placeholder(len(args)))
		}
	}

	return sb.String(), args
}

func (b *Builder) clone() *Builder {
	nb := *b
	nb.selectCols = append([]string(nil), b.selectCols...)
	nb.where = append([]Condition(nil), b.where...)
	nb.orderBy = append([]orderTerm(nil), b.orderBy...)
	return &nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	q, args := b.Build()
	return fmt.Sprintf("SQL: %s\nArgs: %v", q, args)
}
