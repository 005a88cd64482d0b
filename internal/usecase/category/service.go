package category

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	dom "github.com/MiniShopTech/MiniShop/internal/domain/category"
	domproduct "github.com/MiniShopTech/MiniShop/internal/domain/product"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	"github.com/MiniShopTech/MiniShop/internal/pkg/clock"
	productuc "github.com/MiniShopTech/MiniShop/internal/usecase/product"
)

// View is a category together with its live products.
type View struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	IsPresent   bool             `json:"is_present"`
	CreatedOn   time.Time        `json:"created_on"`
	ModifiedOn  *time.Time       `json:"modified_on,omitempty"`
	Products    []productuc.View `json:"products"`
}

type CreateInput struct {
	Name        string
	Slug        *string
	Description string
	IsPresent   *bool
}

// UpdateInput carries the fields to change; nil fields keep their value.
// A new name without an explicit slug regenerates the slug.
type UpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Slug        *string
	Description *string
	IsPresent   *bool
}

type Service struct {
	repo     dom.Repository
	products domproduct.Repository
	clock    clock.Clock
}

func NewService(repo dom.Repository, products domproduct.Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, products: products, clock: clk}
}

// ListAll returns every live category ordered by name, optionally narrowed
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
	return search.Execute[*dom.Category, View](ctx, s.repo, dom.SearchSchema, req, s.views)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*View, error) {
	c, err := s.live(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, c)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*View, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, dom.ErrCategoryInvalidName
	}
	source := name
	if in.Slug != nil {
		source = *in.Slug
	}
	sl, err := s.uniqueSlug(ctx, source, uuid.Nil)
	if err != nil {
		return nil, err
	}

	c := &dom.Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        sl,
		Description: strings.TrimSpace(in.Description),
		IsPresent:   true,
		CreatedOn:   s.clock.Now(),
	}
	if in.IsPresent != nil {
		c.IsPresent = *in.IsPresent
	}

	created, err := s.repo.Create(ctx, c)
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

	var slugSource *string
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, dom.ErrCategoryInvalidName
		}
		if name != existed.Name {
			slugSource = &name
		}
		existed.Name = name
	}
	if in.Slug != nil {
		slugSource = in.Slug
	}
	if slugSource != nil {
		sl, err := s.uniqueSlug(ctx, *slugSource, existed.ID)
		if err != nil {
			return nil, err
		}
		existed.Slug = sl
	}
	if in.Description != nil {
		existed.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsPresent != nil {
		existed.IsPresent = *in.IsPresent
	}
	now := s.clock.Now()
	existed.ModifiedOn = &now

	updated, err := s.repo.Update(ctx, existed)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, updated)
}

// Delete soft-deletes the category. Its products are left untouched.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.live(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, s.clock.Now())
}

func (s *Service) live(ctx context.Context, id uuid.UUID) (*dom.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted {
		return nil, dom.ErrCategoryNotFound
	}
	return c, nil
}

// uniqueSlug normalises source and checks it against the live categories
// other than self.
func (s *Service) uniqueSlug(ctx context.Context, source string, self uuid.UUID) (string, error) {
	sl := slug.Make(source)
	if sl == "" {
		return "", dom.ErrCategoryInvalidSlug
	}
	pred := search.True().And(search.Equals{Field: dom.FieldSlug, Value: sl}).Live()
	taken, err := s.repo.Find(ctx, pred, search.Order{Field: search.FieldID}, search.Window{Take: 2})
	if err != nil {
		return "", err
	}
	for _, c := range taken {
		if c.ID != self {
			return "", dom.ErrCategorySlugExists
		}
	}
	return sl, nil
}

func (s *Service) view(ctx context.Context, c *dom.Category) (*View, error) {
	views, err := s.views(ctx, []*dom.Category{c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views attaches live products to rows with one product query.
func (s *Service) views(ctx context.Context, rows []*dom.Category) ([]View, error) {
	out := make([]View, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, c := range rows {
		ids[i] = c.ID
	}
	products, err := s.products.ListByCategoryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(rows))
	for _, c := range rows {
		names[c.ID] = c.Name
	}
	byCategory := make(map[uuid.UUID][]productuc.View, len(rows))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], productuc.NewView(p, names[p.CategoryID]))
	}

	for _, c := range rows {
		items := byCategory[c.ID]
		if items == nil {
			items = []productuc.View{}
		}
		out = append(out, View{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			IsPresent:   c.IsPresent,
			CreatedOn:   c.CreatedOn,
			ModifiedOn:  c.ModifiedOn,
			Products:    items,
		})
	}
	return out, nil
}
