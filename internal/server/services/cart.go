package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/repomanager"
)

const cartComponent = "cart"

type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCartService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *CartService {
	return &CartService{db: db, repomanager: m, logger: l.With("component", cartComponent)}
}

// ForUser returns the cart of the given user. The Cart holds no rows of its
// own; every call reads or writes the store.
func (s *CartService) ForUser(userID int64) *Cart {
	return &Cart{userID: userID, svc: s}
}

type Cart struct {
	userID int64
	svc    *CartService
}

// AddOrReplaceLine sets the quantity of productID in the cart. A second add
// of the same product replaces the quantity rather than adding to it.
// Neither the product nor the quantity is validated.
func (c *Cart) AddOrReplaceLine(ctx context.Context, productID, quantity int64) error {
	line := models.CartLine{UserID: c.userID, ProductID: productID, Quantity: quantity}
	if err := c.svc.repomanager.Carts(c.svc.db).Upsert(ctx, line); err != nil {
		return common.NewStorageError(cartComponent, "add to cart", err)
	}

	c.svc.logger.Debug(ctx, "cart line set", "user_id", c.userID, "product_id", productID, "quantity", quantity)
	return nil
}

func (c *Cart) ViewLines(ctx context.Context) ([]models.CartLine, error) {
	lines, err := c.svc.repomanager.Carts(c.svc.db).ListByUser(ctx, c.userID)
	if err != nil {
		return nil, common.NewStorageError(cartComponent, "view cart", err)
	}
	return lines, nil
}

// PlaceOrder turns the cart into an order. Reading the lines, writing the
// order and clearing the cart happen in one transaction with the dialect's
// isolation level. An empty cart yields common.ErrEmptyCart and writes nothing.
func (c *Cart) PlaceOrder(ctx context.Context) (*models.Order, error) {
	rm := c.svc.repomanager

	var order *models.Order
	err := dbx.WithTx(ctx, c.svc.db, rm.Dialect().TxOptions, func(ctx context.Context, tx dbx.DBTX) error {
		lines, err := rm.Carts(tx).ListByUser(ctx, c.userID)
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}
		if len(lines) == 0 {
			return common.ErrEmptyCart
		}

		order, err = rm.Orders(tx).Create(ctx, &models.Order{
			UserID:         c.userID,
			ProductDetails: models.FormatProductDetails(lines),
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if _, err := rm.Carts(tx).DeleteByUser(ctx, c.userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrEmptyCart) {
			c.svc.logger.Warn(ctx, "cart is empty, cannot place an order", "user_id", c.userID)
			return nil, err
		}
		return nil, common.NewStorageError(cartComponent, "place order", err)
	}

	c.svc.logger.Info(ctx, "order placed", "user_id", c.userID, "order_id", order.ID)
	return order, nil
}

// Orders lists the orders placed by the user, oldest first.
func (c *Cart) Orders(ctx context.Context) ([]*models.Order, error) {
	list, err := c.svc.repomanager.Orders(c.svc.db).ListByUser(ctx, c.userID)
	if err != nil {
		return nil, common.NewStorageError(cartComponent, "list orders", err)
	}
	return list, nil
}
