// Package users contains the account storage contract and its
// PostgreSQL and in-memory implementations.
package users

import (
	"context"

	"wallmagic/internal/server/models"
)

// Repository is the storage contract for account records. Lookups return
// common.ErrorNotFound for absent rows; Create returns common.ErrEmailTaken
// or common.ErrUsernameTaken when a uniqueness guarantee is violated.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
