// Package users is the credential store: persistence of registered accounts.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/server/models"
)

// Repository persists users. Emails are compared case-insensitively.
type Repository interface {
	// Create inserts user and fills its ID and timestamps. An email that
	// is already taken yields common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns common.ErrorNotFound when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns common.ErrorNotFound when no user matches.
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
