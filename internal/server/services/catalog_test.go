package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAddProduct_CommitsAndReturnsID(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeProductsRepo{}
	s := NewCatalogService(db, &fakeRepoManager{p: repo}, nopLogger{})

	p, err := s.AddProduct(context.Background(), "Laptop", strPtr("A powerful laptop"), decimal.RequireFromString("999.99"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Laptop", repo.created.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddProduct_FailureRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	s := NewCatalogService(db, &fakeRepoManager{p: &fakeProductsRepo{err: errBoom}}, nopLogger{})

	_, err := s.AddProduct(context.Background(), "Laptop", nil, decimal.NewFromInt(1))
	require.ErrorIs(t, err, common.ErrStorage)
	assert.EqualError(t, err, "catalog: failed to add product: boom")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddProduct_InvalidArgument(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	s := NewCatalogService(db, &fakeRepoManager{p: &fakeProductsRepo{}}, nopLogger{})

	_, err := s.AddProduct(context.Background(), "", nil, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = s.AddProduct(context.Background(), "x", nil, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = s.AddProduct(context.Background(), "x", nil, decimal.RequireFromString("9.999"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	err = s.EditProduct(context.Background(), 1, "x", nil, decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	// validation happens before any transaction is opened
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEditAndRemove_MissingIDIsNoop(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeProductsRepo{found: false}
	s := NewCatalogService(db, &fakeRepoManager{p: repo}, nopLogger{})

	require.NoError(t, s.EditProduct(context.Background(), 42, "x", nil, decimal.Zero))
	require.NoError(t, s.RemoveProduct(context.Background(), 42))
	assert.Equal(t, int64(42), repo.updated.ID)
	assert.Equal(t, int64(42), repo.deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalog_StorageErrorMessages(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(s *CatalogService) error
		want string
	}{
		{"edit", func(s *CatalogService) error {
			return s.EditProduct(ctx, 1, "x", nil, decimal.Zero)
		}, "catalog: failed to edit product: boom"},
		{"remove", func(s *CatalogService) error {
			return s.RemoveProduct(ctx, 1)
		}, "catalog: failed to remove product: boom"},
		{"view", func(s *CatalogService) error {
			_, err := s.ViewProducts(ctx)
			return err
		}, "catalog: failed to view products: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMockDB(t)
			defer db.Close()
			mock.ExpectBegin()
			mock.ExpectRollback()

			s := NewCatalogService(db, &fakeRepoManager{p: &fakeProductsRepo{err: errBoom}}, nopLogger{})
			err := tt.call(s)
			require.ErrorIs(t, err, common.ErrStorage)
			assert.EqualError(t, err, tt.want)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCatalog_BeginFailure(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin().WillReturnError(errBoom)

	s := NewCatalogService(db, &fakeRepoManager{p: &fakeProductsRepo{}}, nopLogger{})
	_, err := s.ViewProducts(context.Background())
	require.ErrorIs(t, err, common.ErrStorage)
}

func TestCatalog_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, rm := openStore(t)
	s := NewCatalogService(db, rm, nopLogger{})

	laptop, err := s.AddProduct(ctx, "Laptop", strPtr("A powerful laptop"), decimal.RequireFromString("999.99"))
	require.NoError(t, err)
	phone, err := s.AddProduct(ctx, "Smartphone", nil, decimal.RequireFromString("499.99"))
	require.NoError(t, err)

	require.NoError(t, s.EditProduct(ctx, laptop.ID, "Gaming Laptop", strPtr("A high-end gaming laptop"), decimal.RequireFromString("1299.99")))

	list, err := s.ViewProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Gaming Laptop", list[0].Name)
	assert.Equal(t, "A high-end gaming laptop", *list[0].Description)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("1299.99")))
	assert.Nil(t, list[1].Description)

	require.NoError(t, s.RemoveProduct(ctx, phone.ID))
	require.NoError(t, s.RemoveProduct(ctx, phone.ID))

	list, err = s.ViewProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{laptop.ID}, productIDs(list))
}

func productIDs(list []*models.Product) []int64 {
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	return ids
}
