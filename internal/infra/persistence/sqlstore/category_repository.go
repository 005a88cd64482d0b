package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	domcategory "github.com/MiniShopTech/MiniShop/internal/domain/category"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	"github.com/MiniShopTech/MiniShop/internal/pkg/apperr"
	"github.com/MiniShopTech/MiniShop/internal/pkg/query"
)

const categoriesTable = "categories"

var categoryColumns = []string{
	"id", "name", "slug", "description", "is_present", "is_deleted", "created_on", "modified_on",
}

type CategoryRepository struct {
	db      *sql.DB
	dialect query.Dialect
}

func NewCategoryRepository(db *sql.DB, d query.Dialect) *CategoryRepository {
	return &CategoryRepository{db: db, dialect: d}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
        INSERT INTO categories (id, name, slug, description, is_present, is_deleted, created_on, modified_on)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `), c.ID.String(), c.Name, c.Slug, c.Description, c.IsPresent, c.IsDeleted, c.CreatedOn, nullTime(c.ModifiedOn))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: create category", err)
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domcategory.Category) (*domcategory.Category, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
        UPDATE categories SET name = ?, slug = ?, description = ?, is_present = ?, modified_on = ?
        WHERE id = ? AND is_deleted = ?
    `), c.Name, c.Slug, c.Description, c.IsPresent, nullTime(c.ModifiedOn), c.ID.String(), false)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: update category", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: update category", err)
	}
	if rows == 0 {
		return nil, domcategory.ErrCategoryNotFound
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
        UPDATE categories SET is_deleted = ?, modified_on = ?
        WHERE id = ? AND is_deleted = ?
    `), true, at, id.String(), false)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "sqlstore: delete category", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "sqlstore: delete category", err)
	}
	if rows == 0 {
		return domcategory.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domcategory.Category, error) {
	q, args := query.From(r.dialect, categoriesTable).
		Select(categoryColumns...).
		Where(query.Eq("id", id.String())).
		Build()

	c, err := scanCategory(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcategory.ErrCategoryNotFound
		}
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: get category", err)
	}
	return c, nil
}

func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domcategory.Category, error) {
	if len(ids) == 0 {
		return []*domcategory.Category{}, nil
	}
	q, args := query.From(r.dialect, categoriesTable).
		Select(categoryColumns...).
		Where(query.In("id", uuidArgs(ids)...)).
		OrderBy("name", query.Asc).
		OrderBy("id", query.Asc).
		Build()
	return r.query(ctx, "sqlstore: get categories", q, args)
}

func (r *CategoryRepository) Count(ctx context.Context, p search.Predicate) (int, error) {
	q, args := query.From(r.dialect, categoriesTable).
		Where(conditions(p)...).
		Count().
		Build()

	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, apperr.Wrap(apperr.KindStore, "sqlstore: count categories", err)
	}
	return n, nil
}

func (r *CategoryRepository) Find(ctx context.Context, p search.Predicate, o search.Order, w search.Window) ([]*domcategory.Category, error) {
	b := query.From(r.dialect, categoriesTable).
		Select(categoryColumns...).
		Where(conditions(p)...)
	q, args := ordered(b, o, w).Build()
	return r.query(ctx, "sqlstore: find categories", q, args)
}

func (r *CategoryRepository) query(ctx context.Context, op, q string, args []any) ([]*domcategory.Category, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, op, err)
	}
	defer rows.Close()

	categories := []*domcategory.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindStore, op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindStore, op, err)
	}
	return categories, nil
}

func scanCategory(s scanner) (*domcategory.Category, error) {
	var (
		c        domcategory.Category
		modified sql.NullTime
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsPresent, &c.IsDeleted, &c.CreatedOn, &modified); err != nil {
		return nil, err
	}
	c.ModifiedOn = timePtr(modified)
	return &c, nil
}
