package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	domproduct "github.com/MiniShopTech/MiniShop/internal/domain/product"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	"github.com/MiniShopTech/MiniShop/internal/pkg/apperr"
	"github.com/MiniShopTech/MiniShop/internal/pkg/query"
)

const productsTable = "products"

var productColumns = []string{
	"id", "name", "description", "price", "quantity", "address", "category_id", "is_deleted", "created_on", "modified_on",
}

type ProductRepository struct {
	db      *sql.DB
	dialect query.Dialect
}

func NewProductRepository(db *sql.DB, d query.Dialect) *ProductRepository {
	return &ProductRepository{db: db, dialect: d}
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
        INSERT INTO products (id, name, description, price, quantity, address, category_id, is_deleted, created_on, modified_on)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `), p.ID.String(), p.Name, p.Description, p.Price, p.Quantity, p.Address, p.CategoryID.String(),
		p.IsDeleted, p.CreatedOn, nullTime(p.ModifiedOn))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: create product", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
        UPDATE products SET name = ?, description = ?, price = ?, quantity = ?, address = ?, category_id = ?, modified_on = ?
        WHERE id = ? AND is_deleted = ?
    `), p.Name, p.Description, p.Price, p.Quantity, p.Address, p.CategoryID.String(), nullTime(p.ModifiedOn),
		p.ID.String(), false)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: update product", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: update product", err)
	}
	if rows == 0 {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`
        UPDATE products SET is_deleted = ?, modified_on = ?
        WHERE id = ? AND is_deleted = ?
    `), true, at, id.String(), false)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "sqlstore: delete product", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "sqlstore: delete product", err)
	}
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domproduct.Product, error) {
	q, args := query.From(r.dialect, productsTable).
		Select(productColumns...).
		Where(query.Eq("id", id.String())).
		Build()

	p, err := scanProduct(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, apperr.Wrap(apperr.KindStore, "sqlstore: get product", err)
	}
	return p, nil
}

func (r *ProductRepository) ListByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]*domproduct.Product, error) {
	if len(categoryIDs) == 0 {
		return []*domproduct.Product{}, nil
	}
	conds := append([]query.Condition{query.In("category_id", uuidArgs(categoryIDs)...)}, conditions(search.True())...)
	q, args := query.From(r.dialect, productsTable).
		Select(productColumns...).
		Where(conds...).
		OrderBy("name", query.Asc).
		OrderBy("id", query.Asc).
		Build()
	return r.query(ctx, "sqlstore: list products by category", q, args)
}

func (r *ProductRepository) Count(ctx context.Context, p search.Predicate) (int, error) {
	q, args := query.From(r.dialect, productsTable).
		Where(conditions(p)...).
		Count().
		Build()

	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, apperr.Wrap(apperr.KindStore, "sqlstore: count products", err)
	}
	return n, nil
}

func (r *ProductRepository) Find(ctx context.Context, p search.Predicate, o search.Order, w search.Window) ([]*domproduct.Product, error) {
	b := query.From(r.dialect, productsTable).
		Select(productColumns...).
		Where(conditions(p)...)
	q, args := ordered(b, o, w).Build()
	return r.query(ctx, "sqlstore: find products", q, args)
}

func (r *ProductRepository) query(ctx context.Context, op, q string, args []any) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, op, err)
	}
	defer rows.Close()

	products := []*domproduct.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindStore, op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindStore, op, err)
	}
	return products, nil
}

func scanProduct(s scanner) (*domproduct.Product, error) {
	var (
		p        domproduct.Product
		modified sql.NullTime
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Address,
		&p.CategoryID, &p.IsDeleted, &p.CreatedOn, &modified); err != nil {
		return nil, err
	}
	p.ModifiedOn = timePtr(modified)
	return &p, nil
}
