package orders

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

func (r *SQLRepository) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	query := r.dialect.Rebind(
		`INSERT INTO orders (user_id, product_details)
		 VALUES (?, ?)
		 RETURNING id`)

	if err := r.db.QueryRowContext(ctx, query, o.UserID, o.ProductDetails).Scan(&o.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	query := r.dialect.Rebind(
		`SELECT id, product_details FROM orders
		 WHERE user_id = ?
		 ORDER BY id`)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Order
	for rows.Next() {
		o := &models.Order{UserID: userID}
		if err := rows.Scan(&o.ID, &o.ProductDetails); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
