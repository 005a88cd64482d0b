package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Clause is one typed term of a Predicate. The set of implementations is
// closed: Contains, FlagEquals and Equals.
type Clause interface {
	Match(r Record) bool
	clause()
}

// Contains matches when the text field holds Value as a case-insensitive substring.
type Contains struct {
	Field Field
	Value string
}

// FlagEquals matches when the boolean field equals Value.
type FlagEquals struct {
	Field Field
	Value bool
}

// Equals matches when the text field equals Value exactly.
type Equals struct {
	Field Field
	Value string
}

func (Contains) clause()   {}
func (FlagEquals) clause() {}
func (Equals) clause()     {}

func (c Contains) Match(r Record) bool {
	s, ok := r.Value(c.Field).(string)
	if !ok {
		return false
	}
	return strings.Contains(fold(s), fold(c.Value))
}

func (c FlagEquals) Match(r Record) bool {
	b, ok := r.Value(c.Field).(bool)
	return ok && b == c.Value
}

func (c Equals) Match(r Record) bool {
	s, ok := r.Value(c.Field).(string)
	return ok && s == c.Value
}

// fold applies Unicode case folding. A Caser keeps state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
