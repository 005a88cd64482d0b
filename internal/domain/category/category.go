package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/domain/search"
)

// Category-only search fields.
const (
	FieldSlug      search.Field = "slug"
	FieldIsPresent search.Field = "is_present"
)

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	IsPresent   bool
	IsDeleted   bool
	CreatedOn   time.Time
	ModifiedOn  *time.Time
}

// Key implements search.Record.
func (c *Category) Key() string {
	return c.ID.String()
}

// Value implements search.Record.
func (c *Category) Value(f search.Field) any {
	switch f {
	case search.FieldID:
		return c.ID.String()
	case search.FieldName:
		return c.Name
	case FieldSlug:
		return c.Slug
	case FieldIsPresent:
		return c.IsPresent
	case search.FieldIsDeleted:
		return c.IsDeleted
	case search.FieldCreatedOn:
		return c.CreatedOn
	case search.FieldModifiedOn:
		if c.ModifiedOn == nil {
			return time.Time{}
		}
		return *c.ModifiedOn
	}
	return nil
}

// SearchSchema lists the filters and sort keys accepted for categories.
var SearchSchema = search.Schema{
	Entity: "category",
	Filters: map[string]search.FilterSpec{
		"Name":      {Field: search.FieldName, Kind: search.FilterContains},
		"IsPresent": {Field: FieldIsPresent, Kind: search.FilterFlag},
		"IsDeleted": {Field: search.FieldIsDeleted, Kind: search.FilterFlag},
	},
	Sorts: map[string]search.Field{
		"Name":       search.FieldName,
		"CreatedOn":  search.FieldCreatedOn,
		"ModifiedOn": search.FieldModifiedOn,
	},
	DefaultSort: search.Order{Field: search.FieldName},
}
