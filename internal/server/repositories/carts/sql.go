package carts

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

func (r *SQLRepository) Upsert(ctx context.Context, line models.CartLine) error {
	query := r.dialect.Rebind(
		`INSERT INTO carts (user_id, product_id, quantity)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = excluded.quantity`)

	if _, err := r.db.ExecContext(ctx, query, line.UserID, line.ProductID, line.Quantity); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID int64) ([]models.CartLine, error) {
	query := r.dialect.Rebind(
		`SELECT product_id, quantity FROM carts
		 WHERE user_id = ?
		 ORDER BY product_id`)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		l := models.CartLine{UserID: userID}
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return lines, nil
}

func (r *SQLRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	query := r.dialect.Rebind(`DELETE FROM carts WHERE user_id = ?`)

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
