package query

import (
	"strconv"
	"strings"
)

// Dialect selects bind-marker style and operator spelling for a SQL backend.
type Dialect int

const (
	// MySQL uses ? markers; LIKE follows the column collation (case-insensitive by default).
	MySQL Dialect = iota
	// Postgres uses $n markers and ILIKE for case-insensitive matching.
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "mysql"
}

// Placeholder returns the bind marker for the n-th argument, counting from 1.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Rebind rewrites ? markers in q into the dialect's style.
func (d Dialect) Rebind(q string) string {
	if d != Postgres {
		return q
	}
	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString(d.Placeholder(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) likeOperator() string {
	if d == Postgres {
		return "ILIKE"
	}
	return "LIKE"
}

func (d Dialect) orderTerm(t orderTerm) string {
	dir := "ASC"
	if t.dir == Desc {
		dir = "DESC"
	}
	term := t.column + " " + dir
	if t.nullsLow && d == Postgres {
		if t.dir == Desc {
			return term + " NULLS LAST"
		}
		return term + " NULLS FIRST"
	}
	return term
}
