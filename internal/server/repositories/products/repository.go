package products

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	// Update and Delete report whether a product with the given id existed.
	Update(ctx context.Context, p *models.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// List returns every product ordered by id.
	List(ctx context.Context) ([]*models.Product, error)
}
