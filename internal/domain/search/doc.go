// Package search implements the filter, sort and pagination pipeline shared
// by the catalog entities.
//
// A search runs in four steps: the request filters are folded into a
// Predicate, the requested ordering is resolved against the entity Schema,
// the store counts the matching rows, and a Page decides which window of the
// ordered set to fetch. Predicates are a closed set of typed clauses, so the
// same value can be rendered to SQL by a database store or evaluated directly
// by the in-memory store.
package search
