// Package services holds the business operations of the shop: accounts,
// catalog maintenance and the cart-to-order transition. Each service owns a
// *sql.DB handle and obtains its repositories from a RepositoryManager, so
// every operation decides its own transaction scope.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/cryptox"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/repomanager"
)

const accountsComponent = "accounts"

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	logger      logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, h cryptox.Hasher, l logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      h,
		logger:      l.With("component", accountsComponent),
	}
}

// Register stores a new user with the digest of password.
// A taken username yields common.ErrDuplicateUsername.
func (s *AccountService) Register(ctx context.Context, username, password string, isAdmin bool) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrInvalidArgument
	}

	user := &models.User{
		Username:       username,
		PasswordDigest: s.hasher.Hash(password),
		IsAdmin:        isAdmin,
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			s.logger.Warn(ctx, "username already exists", "username", username)
			return nil, err
		}
		return nil, common.NewStorageError(accountsComponent, "register user", err)
	}

	s.logger.Info(ctx, "user registered", "username", username, "user_id", user.ID)
	return user, nil
}

// Authenticate returns the user only if password matches the stored digest.
// Unknown users and wrong passwords both yield common.ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByCredentials(ctx, username, s.hasher.Hash(password))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "invalid credentials", "username", username)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.NewStorageError(accountsComponent, "authenticate user", err)
	}

	s.logger.Info(ctx, "user authenticated", "username", username)
	return user, nil
}

// RotateCredential replaces the password of user if oldPassword is still the
// stored one. The check and the write are a single conditional update, so a
// stale digest on user cannot authorize the change. On success the digest on
// user is refreshed.
func (s *AccountService) RotateCredential(ctx context.Context, user *models.User, oldPassword, newPassword string) (bool, error) {
	if newPassword == "" {
		return false, common.ErrInvalidArgument
	}

	newDigest := s.hasher.Hash(newPassword)
	ok, err := s.repomanager.Users(s.db).UpdatePassword(ctx, user.Username, s.hasher.Hash(oldPassword), newDigest)
	if err != nil {
		return false, common.NewStorageError(accountsComponent, "change password", err)
	}

	if !ok {
		s.logger.Warn(ctx, "password change rejected", "username", user.Username)
		return false, nil
	}

	user.PasswordDigest = newDigest
	s.logger.Info(ctx, "password changed", "username", user.Username)
	return true, nil
}
