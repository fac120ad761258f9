package orders

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, o *models.Order) (*models.Order, error)
	// ListByUser returns the user's orders, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*models.Order, error)
}
