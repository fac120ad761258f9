package cli

import (
	"context"
	"fmt"
)

// AddToCart sets the quantity of a product in the cart, replacing any
// previous quantity.
func (a *App) AddToCart(ctx context.Context) error {
	productID, err := GetInt64(a.reader, "Product id", a.out)
	if err != nil {
		return err
	}
	quantity, err := GetInt64(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}

	if err := a.client.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Cart updated")
	return nil
}

func (a *App) Cart(ctx context.Context) error {
	lines, err := a.client.ViewCart(ctx)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Cart is empty")
		return nil
	}

	for _, l := range lines {
		fmt.Fprintf(a.out, "Product ID: %d, Quantity: %d\n", l.ProductID, l.Quantity)
	}
	return nil
}

func (a *App) PlaceOrder(ctx context.Context) error {
	order, err := a.client.PlaceOrder(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order #%d placed: %s\n", order.ID, order.ProductDetails)
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	list, err := a.client.ListOrders(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No orders")
		return nil
	}

	for _, o := range list {
		fmt.Fprintf(a.out, "#%d\t%s\n", o.ID, o.ProductDetails)
	}
	return nil
}
