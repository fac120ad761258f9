package models

// CartLine is one (user, product) entry of a cart. Adding the same product
// again replaces Quantity.
type CartLine struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}
