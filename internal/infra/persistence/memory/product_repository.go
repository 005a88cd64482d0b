package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domproduct "github.com/MiniShopTech/MiniShop/internal/domain/product"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

type ProductRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domproduct.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{rows: make(map[uuid.UUID]domproduct.Product)}
}

func (r *ProductRepository) Create(_ context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.ID] = *p
	return p, nil
}

func (r *ProductRepository) Update(_ context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[p.ID]
	if !ok || cur.IsDeleted {
		return nil, domproduct.ErrProductNotFound
	}
	cur.Name = p.Name
	cur.Description = p.Description
	cur.Price = p.Price
	cur.Quantity = p.Quantity
	cur.Address = p.Address
	cur.CategoryID = p.CategoryID
	cur.ModifiedOn = p.ModifiedOn
	r.rows[p.ID] = cur
	return p, nil
}

func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok || cur.IsDeleted {
		return domproduct.ErrProductNotFound
	}
	cur.IsDeleted = true
	cur.ModifiedOn = &at
	r.rows[id] = cur
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id uuid.UUID) (*domproduct.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) ListByCategoryIDs(_ context.Context, categoryIDs []uuid.UUID) ([]*domproduct.Product, error) {
	want := make(map[uuid.UUID]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		want[id] = struct{}{}
	}

	r.mu.RLock()
	out := []*domproduct.Product{}
	for _, p := range r.match(search.True()) {
		if _, ok := want[p.CategoryID]; ok {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	search.Sort(out, search.Order{Field: search.FieldName})
	return out, nil
}

func (r *ProductRepository) Count(_ context.Context, p search.Predicate) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.match(p)), nil
}

func (r *ProductRepository) Find(_ context.Context, p search.Predicate, o search.Order, w search.Window) ([]*domproduct.Product, error) {
	r.mu.RLock()
	rows := r.match(p)
	r.mu.RUnlock()

	search.Sort(rows, o)
	return window(rows, w), nil
}

// match returns copies of the live rows satisfying p. Callers hold mu.
func (r *ProductRepository) match(p search.Predicate) []*domproduct.Product {
	p = p.Live()
	out := []*domproduct.Product{}
	for _, row := range r.rows {
		if p.Match(&row) {
			out = append(out, &row)
		}
	}
	return out
}
