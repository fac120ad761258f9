// Package repomanager provides a RepositoryManager for the supported SQL
// dialects, wiring together repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/carts"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends repository implementations bound to a DBTX
// and exposes a schema migration hook.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
	logger  logging.Logger
}

// New constructs a RepositoryManager for the given dialect.
func New(d dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: d}
}

// WithLogger sets the logger goose reports migration progress to. Without
// one, migration output is discarded.
func (m *SQLRepositoryManager) WithLogger(l logging.Logger) *SQLRepositoryManager {
	m.logger = l
	return m
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect { return m.dialect }

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

// Products returns a products.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewSQLRepository(db, m.dialect)
}

// Carts returns a carts.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Carts(db dbx.DBTX) carts.Repository {
	return carts.NewSQLRepository(db, m.dialect)
}

// Orders returns an orders.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Orders(db dbx.DBTX) orders.Repository {
	return orders.NewSQLRepository(db, m.dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations of the dialect
// and runs them against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(newGooseLogger(ctx, m.logger))
	if err := goose.SetDialect(m.dialect.Goose); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.dialect.Name); err != nil {
		return err
	}
	return nil
}

// Open connects to the configured store, verifies the connection and brings
// the schema up to date. The caller owns the returned *sql.DB.
func Open(ctx context.Context, driver, dsn string, l logging.Logger) (*sql.DB, RepositoryManager, error) {
	d, err := dbx.DialectFor(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	m := New(d).WithLogger(l)
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	return db, m, nil
}
