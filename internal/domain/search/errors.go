package search

import "github.com/MiniShopTech/MiniShop/internal/pkg/apperr"

var (
	ErrInvalidFilterValue = apperr.New(apperr.KindValidation, "invalid filter value")
	ErrUnknownSortField   = apperr.New(apperr.KindValidation, "unknown sort field")
	ErrInvalidPageSize    = apperr.New(apperr.KindValidation, "page size must be greater than zero")
	ErrInvalidPageIndex   = apperr.New(apperr.KindValidation, "page index must be at least 1")
)
