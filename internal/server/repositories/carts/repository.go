package carts

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
)

type Repository interface {
	// Upsert inserts the line or replaces the quantity of an existing one.
	Upsert(ctx context.Context, line models.CartLine) error
	// ListByUser returns the user's lines ordered by product id.
	ListByUser(ctx context.Context, userID int64) ([]models.CartLine, error)
	// DeleteByUser empties the user's cart and returns the number of removed lines.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}
