package client

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/api"
	"github.com/shopspring/decimal"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username, password string, isAdmin bool) (int64, error)
	Login(ctx context.Context, username, password string) (*api.LoginResponse, error)
	Logout()
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error)

	AddProduct(ctx context.Context, name string, description *string, price decimal.Decimal) (*api.Product, error)
	EditProduct(ctx context.Context, id int64, name string, description *string, price decimal.Decimal) error
	RemoveProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context) ([]api.Product, error)

	AddToCart(ctx context.Context, productID, quantity int64) error
	ViewCart(ctx context.Context) ([]api.CartLine, error)
	PlaceOrder(ctx context.Context) (*api.Order, error)
	ListOrders(ctx context.Context) ([]api.Order, error)
}
