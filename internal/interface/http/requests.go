package http

import (
	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	categoryuc "github.com/MiniShopTech/MiniShop/internal/usecase/category"
	productuc "github.com/MiniShopTech/MiniShop/internal/usecase/product"
)

// searchRequest is the body of POST /{entity}/search. Paging values are
// checked by the search package so that defaults apply when they are absent.
type searchRequest struct {
	PageIndex *int            `json:"page_index"`
	PageSize  *int            `json:"page_size"`
	Filters   []filterRequest `json:"filters" validate:"dive"`
	SortBy    *sortRequest    `json:"sort_by"`
}

type filterRequest struct {
	FieldName string `json:"field_name" validate:"required"`
	Value     string `json:"value"`
}

type sortRequest struct {
	FieldName string `json:"field_name" validate:"required"`
	Ascending bool   `json:"ascending"`
}

func (req searchRequest) toDomain() search.Request {
	out := search.Request{PageIndex: req.PageIndex, PageSize: req.PageSize}
	for _, f := range req.Filters {
		out.Filters = append(out.Filters, search.Filter{FieldName: f.FieldName, Value: f.Value})
	}
	if req.SortBy != nil {
		out.SortBy = &search.SortSpec{FieldName: req.SortBy.FieldName, Ascending: req.SortBy.Ascending}
	}
	return out
}

type createCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	IsPresent   *bool   `json:"is_present"`
}

func (req createCategoryRequest) toInput() categoryuc.CreateInput {
	return categoryuc.CreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsPresent:   req.IsPresent,
	}
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsPresent   *bool   `json:"is_present"`
}

func (req updateCategoryRequest) toInput(id uuid.UUID) categoryuc.UpdateInput {
	return categoryuc.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsPresent:   req.IsPresent,
	}
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	Address     string  `json:"address" validate:"max=500"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
}

func (req createProductRequest) toInput() productuc.CreateInput {
	return productuc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Address:     req.Address,
		CategoryID:  uuid.MustParse(req.CategoryID),
	}
}

type updateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Address     *string  `json:"address" validate:"omitempty,max=500"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
}

func (req updateProductRequest) toInput(id uuid.UUID) productuc.UpdateInput {
	in := productuc.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Address:     req.Address,
	}
	if req.CategoryID != nil {
		cid := uuid.MustParse(*req.CategoryID)
		in.CategoryID = &cid
	}
	return in
}
