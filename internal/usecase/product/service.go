package product

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	domcategory "github.com/MiniShopTech/MiniShop/internal/domain/category"
	dom "github.com/MiniShopTech/MiniShop/internal/domain/product"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	"github.com/MiniShopTech/MiniShop/internal/pkg/clock"
)

// View is a product as returned to clients, carrying its category's name.
type View struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Quantity     int64      `json:"quantity"`
	Address      string     `json:"address"`
	CategoryID   uuid.UUID  `json:"category_id"`
	CategoryName string     `json:"category_name"`
	CreatedOn    time.Time  `json:"created_on"`
	ModifiedOn   *time.Time `json:"modified_on,omitempty"`
}

func NewView(p *dom.Product, categoryName string) View {
	return View{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Address:      p.Address,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		CreatedOn:    p.CreatedOn,
		ModifiedOn:   p.ModifiedOn,
	}
}

type CreateInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int64
	Address     string
	CategoryID  uuid.UUID
}

// UpdateInput carries the fields to change; nil fields keep their value.
type UpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int64
	Address     *string
	CategoryID  *uuid.UUID
}

type Service struct {
	repo       dom.Repository
	categories domcategory.Repository
	clock      clock.Clock
}

func NewService(repo dom.Repository, categories domcategory.Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, categories: categories, clock: clk}
}

// ListAll returns every live product ordered by name, optionally narrowed
// to names containing nameLike.
func (s *Service) ListAll(ctx context.Context, nameLike string) ([]View, error) {
	pred := search.True()
	if q := strings.TrimSpace(nameLike); q != "" {
		pred = pred.And(search.Contains{Field: search.FieldName, Value: q})
	}
	rows, err := s.repo.Find(ctx, pred.Live(), dom.SearchSchema.DefaultSort, search.Window{})
	if err != nil {
		return nil, err
	}
	return s.views(ctx, rows)
}

func (s *Service) Search(ctx context.Context, req search.Request) (*search.Result[View], error) {
	return search.Execute[*dom.Product, View](ctx, s.repo, dom.SearchSchema, req, s.views)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*View, error) {
	p, err := s.live(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*View, error) {
	p := &dom.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Quantity:    in.Quantity,
		Address:     strings.TrimSpace(in.Address),
		CategoryID:  in.CategoryID,
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, p.CategoryID); err != nil {
		return nil, err
	}
	p.CreatedOn = s.clock.Now()

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, created)
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*View, error) {
	existed, err := s.live(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		existed.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		existed.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		existed.Price = *in.Price
	}
	if in.Quantity != nil {
		existed.Quantity = *in.Quantity
	}
	if in.Address != nil {
		existed.Address = strings.TrimSpace(*in.Address)
	}
	if err := validate(existed); err != nil {
		return nil, err
	}
	if in.CategoryID != nil && *in.CategoryID != existed.CategoryID {
		if err := s.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		existed.CategoryID = *in.CategoryID
	}
	now := s.clock.Now()
	existed.ModifiedOn = &now

	updated, err := s.repo.Update(ctx, existed)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.live(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, s.clock.Now())
}

// live loads a product, treating soft-deleted rows as missing.
func (s *Service) live(ctx context.Context, id uuid.UUID) (*dom.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.IsDeleted {
		return nil, dom.ErrProductNotFound
	}
	return p, nil
}

func (s *Service) ensureCategory(ctx context.Context, id uuid.UUID) error {
	c, err := s.categories.GetByID(ctx, id)
	if errors.Is(err, domcategory.ErrCategoryNotFound) {
		return dom.ErrUnknownCategory
	}
	if err != nil {
		return err
	}
	if c.IsDeleted {
		return dom.ErrUnknownCategory
	}
	return nil
}

func (s *Service) view(ctx context.Context, p *dom.Product) (*View, error) {
	views, err := s.views(ctx, []*dom.Product{p})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views resolves category names for rows in a single lookup. Deleted
// categories still lend their name.
func (s *Service) views(ctx context.Context, rows []*dom.Product) ([]View, error) {
	out := make([]View, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	for _, p := range rows {
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}
	cats, err := s.categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	for _, p := range rows {
		out = append(out, NewView(p, names[p.CategoryID]))
	}
	return out, nil
}

func validate(p *dom.Product) error {
	if p.Name == "" {
		return dom.ErrProductInvalidName
	}
	if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return dom.ErrProductInvalidPrice
	}
	if p.Quantity < 0 {
		return dom.ErrProductInvalidStock
	}
	return nil
}
