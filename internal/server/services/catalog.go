package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/repomanager"
	"github.com/shopspring/decimal"
)

const catalogComponent = "catalog"

// priceScale is the number of decimal places a price may carry. The
// PostgreSQL schema stores prices as NUMERIC(12, 2).
const priceScale = 2

type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *CatalogService {
	return &CatalogService{db: db, repomanager: m, logger: l.With("component", catalogComponent)}
}

func validateProduct(name string, price decimal.Decimal) error {
	if name == "" || price.IsNegative() || !price.Equal(price.Round(priceScale)) {
		return common.ErrInvalidArgument
	}
	return nil
}

func (s *CatalogService) AddProduct(ctx context.Context, name string, description *string, price decimal.Decimal) (*models.Product, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	p := &models.Product{Name: name, Description: description, Price: price}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		p, err = s.repomanager.Products(tx).Create(ctx, p)
		return err
	})
	if err != nil {
		return nil, common.NewStorageError(catalogComponent, "add product", err)
	}

	s.logger.Info(ctx, "product added", "product_id", p.ID, "name", p.Name)
	return p, nil
}

// EditProduct overwrites name, description and price of the product with
// the given id. A missing id changes nothing.
func (s *CatalogService) EditProduct(ctx context.Context, id int64, name string, description *string, price decimal.Decimal) error {
	if err := validateProduct(name, price); err != nil {
		return err
	}

	p := &models.Product{ID: id, Name: name, Description: description, Price: price}

	var found bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		found, err = s.repomanager.Products(tx).Update(ctx, p)
		return err
	})
	if err != nil {
		return common.NewStorageError(catalogComponent, "edit product", err)
	}

	if !found {
		s.logger.Warn(ctx, "edit of unknown product", "product_id", id)
		return nil
	}

	s.logger.Info(ctx, "product edited", "product_id", id)
	return nil
}

// RemoveProduct deletes the product with the given id. A missing id changes
// nothing. Cart lines and orders that mention it are left as they are.
func (s *CatalogService) RemoveProduct(ctx context.Context, id int64) error {
	var found bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		found, err = s.repomanager.Products(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		return common.NewStorageError(catalogComponent, "remove product", err)
	}

	if !found {
		s.logger.Warn(ctx, "removal of unknown product", "product_id", id)
		return nil
	}

	s.logger.Info(ctx, "product removed", "product_id", id)
	return nil
}

func (s *CatalogService) ViewProducts(ctx context.Context) ([]*models.Product, error) {
	var list []*models.Product
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = s.repomanager.Products(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, common.NewStorageError(catalogComponent, "view products", err)
	}
	return list, nil
}
