package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domcategory "github.com/MiniShopTech/MiniShop/internal/domain/category"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

type CategoryRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domcategory.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{rows: make(map[uuid.UUID]domcategory.Category)}
}

func (r *CategoryRepository) Create(_ context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[c.ID] = *c
	return c, nil
}

func (r *CategoryRepository) Update(_ context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[c.ID]
	if !ok || cur.IsDeleted {
		return nil, domcategory.ErrCategoryNotFound
	}
	cur.Name = c.Name
	cur.Slug = c.Slug
	cur.Description = c.Description
	cur.IsPresent = c.IsPresent
	cur.ModifiedOn = c.ModifiedOn
	r.rows[c.ID] = cur
	return c, nil
}

func (r *CategoryRepository) Delete(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok || cur.IsDeleted {
		return domcategory.ErrCategoryNotFound
	}
	cur.IsDeleted = true
	cur.ModifiedOn = &at
	r.rows[id] = cur
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*domcategory.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, domcategory.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domcategory.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domcategory.Category{}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if c, ok := r.rows[id]; ok {
			out = append(out, &c)
		}
	}
	search.Sort(out, search.Order{Field: search.FieldName})
	return out, nil
}

func (r *CategoryRepository) Count(_ context.Context, p search.Predicate) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.match(p)), nil
}

func (r *CategoryRepository) Find(_ context.Context, p search.Predicate, o search.Order, w search.Window) ([]*domcategory.Category, error) {
	r.mu.RLock()
	rows := r.match(p)
	r.mu.RUnlock()

	search.Sort(rows, o)
	return window(rows, w), nil
}

// match returns copies of the live rows satisfying p. Callers hold mu.
func (r *CategoryRepository) match(p search.Predicate) []*domcategory.Category {
	p = p.Live()
	out := []*domcategory.Category{}
	for _, c := range r.rows {
		if p.Match(&c) {
			out = append(out, &c)
		}
	}
	return out
}
