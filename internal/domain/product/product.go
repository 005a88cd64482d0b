package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

// Product-only search fields.
const (
	FieldCategoryID search.Field = "category_id"
	FieldPrice      search.Field = "price"
	FieldQuantity   search.Field = "quantity"
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Quantity    int64
	Address     string
	CategoryID  uuid.UUID
	IsDeleted   bool
	CreatedOn   time.Time
	ModifiedOn  *time.Time
}

// Key implements search.Record.
func (p *Product) Key() string {
	return p.ID.String()
}

// Value implements search.Record.
func (p *Product) Value(f search.Field) any {
	switch f {
	case search.FieldID:
		return p.ID.String()
	case search.FieldName:
		return p.Name
	case FieldCategoryID:
		return p.CategoryID.String()
	case FieldPrice:
		return p.Price
	case FieldQuantity:
		return p.Quantity
	case search.FieldIsDeleted:
		return p.IsDeleted
	case search.FieldCreatedOn:
		return p.CreatedOn
	case search.FieldModifiedOn:
		if p.ModifiedOn == nil {
			return time.Time{}
		}
		return *p.ModifiedOn
	}
	return nil
}

// SearchSchema lists the filters and sort keys accepted for products.
var SearchSchema = search.Schema{
	Entity: "product",
	Filters: map[string]search.FilterSpec{
		"Name":       {Field: search.FieldName, Kind: search.FilterContains},
		"IsDeleted":  {Field: search.FieldIsDeleted, Kind: search.FilterFlag},
		"CategoryId": {Field: FieldCategoryID, Kind: search.FilterID},
	},
	Sorts: map[string]search.Field{
		"Name":      search.FieldName,
		"CreatedOn": search.FieldCreatedOn,
		"Price":     FieldPrice,
		"Quantity":  FieldQuantity,
	},
	DefaultSort: search.Order{Field: search.FieldName},
}
