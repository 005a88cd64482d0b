package product

import "github.com/MiniShopTech/MiniShop/internal/pkg/apperr"

var (
	ErrProductNotFound     = apperr.New(apperr.KindNotFound, "product not found or deleted")
	ErrProductInvalidName  = apperr.New(apperr.KindValidation, "product name is required")
	ErrProductInvalidPrice = apperr.New(apperr.KindValidation, "product price must not be negative")
	ErrProductInvalidStock = apperr.New(apperr.KindValidation, "product quantity must not be negative")
	ErrUnknownCategory     = apperr.New(apperr.KindValidation, "product category does not exist")
)
