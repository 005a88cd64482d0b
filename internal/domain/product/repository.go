package product

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	// Delete soft-deletes a live product, returning ErrProductNotFound otherwise.
	Delete(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// ListByCategoryIDs returns the live products of the given categories ordered by name.
	ListByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]*Product, error)
	Count(ctx context.Context, p search.Predicate) (int, error)
	Find(ctx context.Context, p search.Predicate, o search.Order, w search.Window) ([]*Product, error)
}
