package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

// Repository is the category store. Count and Find always exclude
// soft-deleted rows; GetByID and GetByIDs return them so callers can tell
// "deleted" from "never existed" when they need to.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	// Delete soft-deletes a live category, returning ErrCategoryNotFound otherwise.
	Delete(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*Category, error)
	Count(ctx context.Context, p search.Predicate) (int, error)
	Find(ctx context.Context, p search.Predicate, o search.Order, w search.Window) ([]*Category, error)
}
