// Package memory keeps the catalog in process memory. It backs
// STORE_DRIVER=memory and the service tests, and evaluates predicates and
// orderings with the same search types the SQL store renders.
package memory

import (
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

// window slices rows to w. Take 0 means every row after Skip.
func window[T any](rows []T, w search.Window) []T {
	if w.Skip >= len(rows) {
		return rows[:0]
	}
	rows = rows[w.Skip:]
	if w.Take > 0 && w.Take < len(rows) {
		rows = rows[:w.Take]
	}
	return rows
}
