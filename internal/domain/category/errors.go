package category

import "github.com/MiniShopTech/MiniShop/internal/pkg/apperr"

var (
	ErrCategoryNotFound    = apperr.New(apperr.KindNotFound, "category not found or deleted")
	ErrCategoryInvalidName = apperr.New(apperr.KindValidation, "category name is required")
	ErrCategoryInvalidSlug = apperr.New(apperr.KindValidation, "invalid category slug")
	ErrCategorySlugExists  = apperr.New(apperr.KindValidation, "category slug already exists")
)
