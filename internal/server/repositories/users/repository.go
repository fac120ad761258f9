package users

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts the user and sets its ID. A taken username yields
	// common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// FindByCredentials returns the user whose username and digest both
	// match, or common.ErrorNotFound.
	FindByCredentials(ctx context.Context, username, digest string) (*models.User, error)
	// UpdatePassword swaps the digest only if oldDigest is still current.
	// It reports whether a row was changed.
	UpdatePassword(ctx context.Context, username, oldDigest, newDigest string) (bool, error)
}
