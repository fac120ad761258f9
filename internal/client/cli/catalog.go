package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/shopkeeper/internal/api"
)

func printProduct(w io.Writer, p api.Product) {
	desc := "-"
	if p.Description != nil {
		desc = *p.Description
	}
	fmt.Fprintf(w, "#%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Price.StringFixed(2), desc)
}

func (a *App) Products(ctx context.Context) error {
	list, err := a.client.ListProducts(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No products")
		return nil
	}

	for _, p := range list {
		printProduct(a.out, p)
	}
	return nil
}

func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return err
	}
	desc, err := GetOptionalText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	price, err := GetPrice(a.reader, "Price", a.out)
	if err != nil {
		return err
	}

	p, err := a.client.AddProduct(ctx, name, desc, price)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Product added with id=%d\n", p.ID)
	return nil
}

func (a *App) EditProduct(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Product id", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	desc, err := GetOptionalText(a.reader, "New description", a.out)
	if err != nil {
		return err
	}
	price, err := GetPrice(a.reader, "New price", a.out)
	if err != nil {
		return err
	}

	if err := a.client.EditProduct(ctx, id, name, desc, price); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Product updated")
	return nil
}

func (a *App) RemoveProduct(ctx context.Context) error {
	id, err := GetInt64(a.reader, "Product id", a.out)
	if err != nil {
		return err
	}

	if err := a.client.RemoveProduct(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Product removed")
	return nil
}
