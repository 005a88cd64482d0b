package query

import (
	"fmt"
	"strings"
)

// Condition is one WHERE term. argIndex is the number of arguments already
// bound by earlier terms, so markers can be numbered for dialects that need it.
type Condition interface {
	SQL(d Dialect, argIndex int) (string, []any)
}

type eqCondition struct {
	column string
	value  any
}

// Eq creates "column = value".
func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) SQL(d Dialect, argIndex int) (string, []any) {
	return fmt.Sprintf("%s = %s", c.column, d.Placeholder(argIndex+1)), []any{c.value}
}

type containsCondition struct {
	column string
	text   string
}

// Contains creates a case-insensitive substring match. LIKE wildcards in
// text are escaped so they match literally.
func Contains(column, text string) Condition {
	return containsCondition{column: column, text: text}
}

func (c containsCondition) SQL(d Dialect, argIndex int) (string, []any) {
	pattern := "%" + EscapeLike(c.text) + "%"
	return fmt.Sprintf("%s %s %s", c.column, d.likeOperator(), d.Placeholder(argIndex+1)), []any{pattern}
}

type inCondition struct {
	column string
	values []any
}

// In creates "column IN (...)". An empty value list matches nothing.
func In(column string, values ...any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) SQL(d Dialect, argIndex int) (string, []any) {
	if len(c.values) == 0 {
		return "1 = 0", nil
	}
	marks := make([]string, len(c.values))
	for i := range c.values {
		marks[i] = d.Placeholder(argIndex + i + 1)
	}
	args := make([]any, len(c.values))
	copy(args, c.values)
	return fmt.Sprintf("%s IN (%s)", c.column, strings.Join(marks, ", ")), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters in s using backslash.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
