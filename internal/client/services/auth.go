// Package services contains the client's application services. Sessions
// and tasks live in the local SQLite store; everything else goes through
// the API client.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/foundrmate/internal/client/client"
	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/client/repositories/metadata"
)

const sessionKey = "session"

var ErrNotLoggedIn = errors.New("not logged in")

// AuthService manages the locally stored session.
//
//   - Register / Login: call the server and store the returned session.
//   - Logout: forget the stored session.
//   - Current: the stored session, or ErrNotLoggedIn.
//   - WhoAmI: verify the stored token with the server; an expired token
//     clears the session.
//   - Ping: server liveness.
type AuthService interface {
	Register(ctx context.Context, fullName, email string, password []byte) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	WhoAmI(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client   client.Client
	metadata metadata.Repository
}

func NewAuthService(c client.Client, m metadata.Repository) AuthService {
	return &authService{client: c, metadata: m}
}

func (a *authService) Register(ctx context.Context, fullName, email string, password []byte) (*models.Session, error) {
	s, err := a.client.Register(ctx, fullName, email, string(password))
	if err != nil {
		return nil, err
	}
	if err := a.store(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	s, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	if err := a.store(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.metadata.Delete(ctx, sessionKey)
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	raw, err := a.metadata.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotLoggedIn
	}
	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil || s.Token == "" {
		// unreadable session, treat as logged out
		_ = a.metadata.Delete(ctx, sessionKey)
		return nil, ErrNotLoggedIn
	}
	return &s, nil
}

func (a *authService) WhoAmI(ctx context.Context) (*models.User, error) {
	s, err := a.Current(ctx)
	if err != nil {
		return nil, err
	}
	u, err := a.client.Verify(ctx, s.Token)
	if err != nil {
		return nil, dropExpired(ctx, a.metadata, err)
	}
	return u, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Health(ctx)
}

func (a *authService) store(ctx context.Context, s *models.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return a.metadata.Set(ctx, sessionKey, raw)
}

// dropExpired clears the stored session when err says the token expired
// and returns err unchanged.
func dropExpired(ctx context.Context, m metadata.Repository, err error) error {
	if errors.Is(err, client.ErrTokenExpired) {
		if derr := m.Delete(ctx, sessionKey); derr != nil {
			return errors.Join(err, derr)
		}
	}
	return err
}
