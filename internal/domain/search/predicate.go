package search

// NotDeleted is the clause every store read ends with.
var NotDeleted Clause = FlagEquals{Field: FieldIsDeleted, Value: false}

// Predicate is an AND of clauses. The zero value matches everything.
type Predicate struct {
	clauses []Clause
	live    bool
}

// True returns the always-true predicate.
func True() Predicate {
	return Predicate{}
}

// And returns p with c appended.
func (p Predicate) And(c Clause) Predicate {
	next := make([]Clause, len(p.clauses), len(p.clauses)+1)
	copy(next, p.clauses)
	p.clauses = append(next, c)
	return p
}

// Live returns p restricted to rows that are not soft-deleted. It is
// idempotent, and the restriction is always rendered as the last clause.
func (p Predicate) Live() Predicate {
	p.live = true
	return p
}

// IsLive reports whether Live has been applied.
func (p Predicate) IsLive() bool {
	return p.live
}

// Clauses returns the clauses in evaluation order, NotDeleted last when live.
func (p Predicate) Clauses() []Clause {
	out := make([]Clause, 0, len(p.clauses)+1)
	out = append(out, p.clauses...)
	if p.live {
		out = append(out, NotDeleted)
	}
	return out
}

// Match evaluates p against r.
func (p Predicate) Match(r Record) bool {
	for _, c := range p.Clauses() {
		if !c.Match(r) {
			return false
		}
	}
	return true
}
