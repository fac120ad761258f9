package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeAccounts struct {
	regOut *models.User
	regErr error

	authOut *models.User
	authErr error

	rotateOK   bool
	rotateErr  error
	rotateUser *models.User
}

func (f *fakeAccounts) Register(ctx context.Context, username, password string, isAdmin bool) (*models.User, error) {
	return f.regOut, f.regErr
}

func (f *fakeAccounts) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	return f.authOut, f.authErr
}

func (f *fakeAccounts) RotateCredential(ctx context.Context, user *models.User, oldPassword, newPassword string) (bool, error) {
	f.rotateUser = user
	return f.rotateOK, f.rotateErr
}

type fakeCatalog struct {
	list []*models.Product
	err  error
}

func (f *fakeCatalog) AddProduct(ctx context.Context, name string, description *string, price decimal.Decimal) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{ID: 1, Name: name, Description: description, Price: price}, nil
}

func (f *fakeCatalog) EditProduct(ctx context.Context, id int64, name string, description *string, price decimal.Decimal) error {
	return f.err
}

func (f *fakeCatalog) RemoveProduct(ctx context.Context, id int64) error { return f.err }

func (f *fakeCatalog) ViewProducts(ctx context.Context) ([]*models.Product, error) {
	return f.list, f.err
}

type fakeCart struct {
	userID int64
	lines  []models.CartLine
	order  *models.Order
	orders []*models.Order
	err    error
}

func (f *fakeCart) AddOrReplaceLine(ctx context.Context, productID, quantity int64) error {
	if f.err != nil {
		return f.err
	}
	f.lines = append(f.lines, models.CartLine{UserID: f.userID, ProductID: productID, Quantity: quantity})
	return nil
}

func (f *fakeCart) ViewLines(ctx context.Context) ([]models.CartLine, error) { return f.lines, f.err }

func (f *fakeCart) PlaceOrder(ctx context.Context) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func (f *fakeCart) Orders(ctx context.Context) ([]*models.Order, error) { return f.orders, f.err }

// cartsFor returns a provider that always hands out c, recording the user id.
func cartsFor(c *fakeCart) CartProvider {
	return func(userID int64) UserCart {
		c.userID = userID
		return c
	}
}

func newTestServer(secret string, as AccountService, cs CatalogService, c *fakeCart) *GRPCServer {
	if c == nil {
		c = &fakeCart{}
	}
	return NewGRPCServer("127.0.0.1:0", nopLogger{}, as, cs, cartsFor(c), secret, time.Hour)
}
