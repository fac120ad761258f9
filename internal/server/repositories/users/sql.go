package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
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

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := r.dialect.Rebind(
		`INSERT INTO users (username, password, is_admin)
		 VALUES (?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordDigest, user.IsAdmin).Scan(&user.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) FindByCredentials(ctx context.Context, username, digest string) (*models.User, error) {
	query := r.dialect.Rebind(
		`SELECT id, username, password, is_admin FROM users
		 WHERE username = ? AND password = ?`)

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username, digest).
		Scan(&user.ID, &user.Username, &user.PasswordDigest, &user.IsAdmin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) UpdatePassword(ctx context.Context, username, oldDigest, newDigest string) (bool, error) {
	query := r.dialect.Rebind(
		`UPDATE users SET password = ?
		 WHERE username = ? AND password = ?`)

	res, err := r.db.ExecContext(ctx, query, newDigest, username, oldDigest)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n == 1, nil
}
