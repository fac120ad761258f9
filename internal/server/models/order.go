package models

import (
	"fmt"
	"strings"
)

// Order is an immutable text snapshot of a cart taken when it was placed.
type Order struct {
	ID             int64
	UserID         int64
	ProductDetails string
}

// FormatProductDetails renders cart lines the way they are stored in
// orders.product_details:
//
//	Product ID: 10, Quantity: 2, Product ID: 20, Quantity: 1
func FormatProductDetails(lines []CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("Product ID: %d, Quantity: %d", l.ProductID, l.Quantity))
	}
	return strings.Join(parts, ", ")
}
