package products

import (
	"context"
	"database/sql"
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

func (r *SQLRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := r.dialect.Rebind(
		`INSERT INTO products (name, description, price)
		 VALUES (?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query, p.Name, nullString(p.Description), p.Price).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *SQLRepository) Update(ctx context.Context, p *models.Product) (bool, error) {
	query := r.dialect.Rebind(
		`UPDATE products SET name = ?, description = ?, price = ?
		 WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, p.Name, nullString(p.Description), p.Price, p.ID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affectedOne(res)
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := r.dialect.Rebind(`DELETE FROM products WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affectedOne(res)
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT id, name, description, price FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p := &models.Product{}
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if description.Valid {
			p.Description = &description.String
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
