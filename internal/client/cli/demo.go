package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/shopspring/decimal"
)

const (
	demoUser     = "daniel lima"
	demoPassword = "password123"
)

// Demo runs the example workflow against the server: register an admin,
// log in, add a product, list the catalog, put two of the new product in
// the cart, show the cart and place the order. An already registered demo
// user is reused.
func (a *App) Demo(ctx context.Context) error {
	if _, err := a.client.Register(ctx, demoUser, demoPassword, true); err != nil {
		if !errors.Is(err, common.ErrDuplicateUsername) {
			return fmt.Errorf("register: %w", err)
		}
		a.logger.Warn(ctx, "Demo user already exists", "username", demoUser)
	}

	login, err := a.client.Login(ctx, demoUser, demoPassword)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.userName = demoUser
	a.isAdmin = login.IsAdmin
	a.logger.Info(ctx, "User logged in successfully", "username", demoUser)

	var productID int64
	if login.IsAdmin {
		desc := "Gaming Laptop"
		p, err := a.client.AddProduct(ctx, "Laptop", &desc, decimal.NewFromFloat(1500.0))
		if err != nil {
			return fmt.Errorf("add product: %w", err)
		}
		productID = p.ID
		a.logger.Info(ctx, "Product added", "name", p.Name, "product_id", p.ID)
	}

	fmt.Fprintln(a.out, "Available products:")
	if err := a.Products(ctx); err != nil {
		return err
	}

	if productID == 0 {
		return errors.New("demo user is not an administrator, no product to order")
	}

	if err := a.client.AddToCart(ctx, productID, 2); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	a.logger.Info(ctx, "Added product to cart", "product_id", productID, "quantity", 2)

	fmt.Fprintln(a.out, "Cart contents:")
	if err := a.Cart(ctx); err != nil {
		return err
	}

	return a.PlaceOrder(ctx)
}
