package client

import (
	"context"

	"github.com/dmitrijs2005/foundrmate/internal/client/models"
)

// Client is the API surface the services need.
type Client interface {
	Register(ctx context.Context, fullName, email, password string) (*models.Session, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Verify(ctx context.Context, token string) (*models.User, error)
	SubmitIdea(ctx context.Context, token, message string) (*models.Analysis, error)
	Health(ctx context.Context) error
}
