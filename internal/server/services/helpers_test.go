package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/carts"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// openStore opens a migrated SQLite database in a temp dir.
func openStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "shop.db") + "?_pragma=busy_timeout(5000)&_txlock=immediate"
	db, rm, err := repomanager.Open(context.Background(), "sqlite", dsn, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, rm
}

// --- fakes ---

type fakeUsersRepo struct {
	createErr error
	created   *models.User

	findOut *models.User
	findErr error
	gotUser string
	gotDig  string

	updateOK  bool
	updateErr error
	gotOld    string
	gotNew    string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) FindByCredentials(ctx context.Context, username, digest string) (*models.User, error) {
	f.gotUser, f.gotDig = username, digest
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, username, oldDigest, newDigest string) (bool, error) {
	f.gotOld, f.gotNew = oldDigest, newDigest
	return f.updateOK, f.updateErr
}

type fakeProductsRepo struct {
	err     error
	found   bool
	list    []*models.Product
	created *models.Product
	updated *models.Product
	deleted int64
}

func (f *fakeProductsRepo) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = 7
	f.created = p
	return p, nil
}

func (f *fakeProductsRepo) Update(ctx context.Context, p *models.Product) (bool, error) {
	f.updated = p
	return f.found, f.err
}

func (f *fakeProductsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.deleted = id
	return f.found, f.err
}

func (f *fakeProductsRepo) List(ctx context.Context) ([]*models.Product, error) {
	return f.list, f.err
}

type fakeCartsRepo struct {
	upserted  []models.CartLine
	upsertErr error
	lines     []models.CartLine
	listErr   error
	deleted   bool
	deleteErr error
}

func (f *fakeCartsRepo) Upsert(ctx context.Context, line models.CartLine) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, line)
	return nil
}

func (f *fakeCartsRepo) ListByUser(ctx context.Context, userID int64) ([]models.CartLine, error) {
	return f.lines, f.listErr
}

func (f *fakeCartsRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deleted = true
	return int64(len(f.lines)), nil
}

type fakeOrdersRepo struct {
	created   *models.Order
	createErr error
	list      []*models.Order
	listErr   error
}

func (f *fakeOrdersRepo) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	o.ID = 99
	f.created = o
	return o, nil
}

func (f *fakeOrdersRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	return f.list, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakeProductsRepo
	c *fakeCartsRepo
	o *fakeOrdersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Dialect() dbx.Dialect                         { return dbx.SQLite }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.u }
func (m *fakeRepoManager) Products(dbx.DBTX) products.Repository        { return m.p }
func (m *fakeRepoManager) Carts(dbx.DBTX) carts.Repository              { return m.c }
func (m *fakeRepoManager) Orders(dbx.DBTX) orders.Repository            { return m.o }
