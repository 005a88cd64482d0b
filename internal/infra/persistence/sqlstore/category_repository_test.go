package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domcategory "github.com/MiniShopTech/MiniShop/internal/domain/category"
	"github.com/MiniShopTech/MiniShop/internal/domain/search"
	"github.com/MiniShopTech/MiniShop/internal/pkg/apperr"
	"github.com/MiniShopTech/MiniShop/internal/pkg/query"
)

const categorySelect = "SELECT id, name, slug, description, is_present, is_deleted, created_on, modified_on FROM categories"

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows(categoryColumns)
}

func TestCategoryRepository_FindRendersPredicateOrderAndWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	id := uuid.New()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(categorySelect+" WHERE name LIKE ? AND is_present = ? AND is_deleted = ? ORDER BY name DESC, id ASC LIMIT ? OFFSET ?")).
		WithArgs("%sh%", true, false, int64(2), int64(4)).
		WillReturnRows(categoryRows().AddRow(id.String(), "Shoes", "shoes", "", true, false, created, nil))

	pred := search.True().
		And(search.Contains{Field: search.FieldName, Value: "sh"}).
		And(search.FlagEquals{Field: domcategory.FieldIsPresent, Value: true})
	got, err := repo.Find(context.Background(), pred, search.Order{Field: search.FieldName, Desc: true}, search.Window{Skip: 4, Take: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, id, got[0].ID)
	require.Equal(t, "Shoes", got[0].Name)
	require.Equal(t, created, got[0].CreatedOn)
	require.Nil(t, got[0].ModifiedOn)
}

func TestCategoryRepository_CountAlwaysExcludesDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories WHERE is_deleted = ?")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(context.Background(), search.True())
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestCategoryRepository_PostgresUsesNumberedMarkersAndILIKE(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories WHERE name ILIKE $1 AND is_deleted = $2")).
		WithArgs(`%50\%%`, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.Count(context.Background(), search.True().And(search.Contains{Field: search.FieldName, Value: "50%"}))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCategoryRepository_ModifiedOnSortsUnsetFirst(t *testing.T) {
	for _, tc := range []struct {
		dialect query.Dialect
		desc    bool
		order   string
	}{
		{query.MySQL, false, "ORDER BY modified_on ASC, id ASC"},
		{query.Postgres, false, "ORDER BY modified_on ASC NULLS FIRST, id ASC"},
		{query.Postgres, true, "ORDER BY modified_on DESC NULLS LAST, id ASC"},
	} {
		db, mock := newMockDB(t)
		repo := NewCategoryRepository(db, tc.dialect)

		mock.ExpectQuery(regexp.QuoteMeta(categorySelect + " WHERE is_deleted = " + tc.dialect.Placeholder(1) + " " + tc.order)).
			WithArgs(false).
			WillReturnRows(categoryRows())

		_, err := repo.Find(context.Background(), search.True(), search.Order{Field: search.FieldModifiedOn, Desc: tc.desc}, search.Window{})
		require.NoError(t, err)
	}
}

func TestCategoryRepository_CountStoreFailureIsStoreKind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection refused"))

	_, err := repo.Count(context.Background(), search.True())
	require.Error(t, err)
	require.True(t, apperr.Is(err, apperr.KindStore))
	require.NotContains(t, apperr.Message(err), "connection refused")
}

func TestCategoryRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(categorySelect + " WHERE id = ?")).
		WithArgs(id.String()).
		WillReturnRows(categoryRows())

	_, err := repo.GetByID(context.Background(), id)
	require.ErrorIs(t, err, domcategory.ErrCategoryNotFound)
}

func TestCategoryRepository_GetByIDsEmptySkipsQuery(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	got, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCategoryRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	c := &domcategory.Category{
		ID:        uuid.New(),
		Name:      "Shoes",
		Slug:      "shoes",
		IsPresent: true,
		CreatedOn: time.Now().UTC(),
	}
	mock.ExpectExec("INSERT INTO categories").
		WithArgs(c.ID.String(), "Shoes", "shoes", "", true, false, c.CreatedOn, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestCategoryRepository_UpdateDeletedRowIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	now := time.Now().UTC()
	c := &domcategory.Category{ID: uuid.New(), Name: "Hats", Slug: "hats", ModifiedOn: &now}
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = ? AND is_deleted = ?")).
		WithArgs("Hats", "hats", "", false, now, c.ID.String(), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), c)
	require.ErrorIs(t, err, domcategory.ErrCategoryNotFound)
}

func TestCategoryRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db, query.MySQL)

	id := uuid.New()
	at := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET is_deleted = ?, modified_on = ?")).
		WithArgs(true, at, id.String(), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET is_deleted = ?, modified_on = ?")).
		WithArgs(true, at, id.String(), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id, at))
	require.ErrorIs(t, repo.Delete(context.Background(), id, at), domcategory.ErrCategoryNotFound)
}
