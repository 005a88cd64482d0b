package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MiniShopTech/MiniShop/internal/pkg/query"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
        id CHAR(36) NOT NULL PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        slug VARCHAR(255) NOT NULL,
        description VARCHAR(2000) NOT NULL DEFAULT '',
        is_present TINYINT(1) NOT NULL DEFAULT 1,
        is_deleted TINYINT(1) NOT NULL DEFAULT 0,
        created_on DATETIME(6) NOT NULL,
        modified_on DATETIME(6) NULL,
        KEY idx_categories_live_name (is_deleted, name),
        KEY idx_categories_slug (slug)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci`,
	`CREATE TABLE IF NOT EXISTS products (
        id CHAR(36) NOT NULL PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        description VARCHAR(2000) NOT NULL DEFAULT '',
        price DOUBLE NOT NULL DEFAULT 0,
        quantity BIGINT NOT NULL DEFAULT 0,
        address VARCHAR(500) NOT NULL DEFAULT '',
        category_id CHAR(36) NOT NULL,
        is_deleted TINYINT(1) NOT NULL DEFAULT 0,
        created_on DATETIME(6) NOT NULL,
        modified_on DATETIME(6) NULL,
        KEY idx_products_live_name (is_deleted, name),
        KEY idx_products_category (category_id),
        CONSTRAINT fk_products_category FOREIGN KEY (category_id) REFERENCES categories (id)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_0900_ai_ci`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
        id CHAR(36) PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        slug VARCHAR(255) NOT NULL,
        description VARCHAR(2000) NOT NULL DEFAULT '',
        is_present BOOLEAN NOT NULL DEFAULT TRUE,
        is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
        created_on TIMESTAMPTZ NOT NULL,
        modified_on TIMESTAMPTZ NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_categories_live_name ON categories (is_deleted, name)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories (slug)`,
	`CREATE TABLE IF NOT EXISTS products (
        id CHAR(36) PRIMARY KEY,
        name VARCHAR(255) NOT NULL,
        description VARCHAR(2000) NOT NULL DEFAULT '',
        price DOUBLE PRECISION NOT NULL DEFAULT 0,
        quantity BIGINT NOT NULL DEFAULT 0,
        address VARCHAR(500) NOT NULL DEFAULT '',
        category_id CHAR(36) NOT NULL REFERENCES categories (id),
        is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
        created_on TIMESTAMPTZ NOT NULL,
        modified_on TIMESTAMPTZ NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_products_live_name ON products (is_deleted, name)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
}

// Migrate creates the catalog tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB, d query.Dialect) error {
	stmts := mysqlSchema
	if d == query.Postgres {
		stmts = postgresSchema
	}
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
