// Package services contains the server's business logic: the credential
// service (register, login, session lookup) and idea intake.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/dbx"
	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/dmitrijs2005/foundrmate/internal/server/models"
	"github.com/dmitrijs2005/foundrmate/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenIssuer mints session tokens; *auth.TokenManager implements it.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

// AuthResult is what a successful register or login hands back.
type AuthResult struct {
	User      models.PublicUser
	Token     string
	ExpiresAt time.Time
}

// UserService registers users, checks credentials and resolves sessions.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	bcryptCost  int
	logger      logging.Logger
	now         func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer, bcryptCost int, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		logger:      logger.With("module", "users"),
		now:         time.Now,
	}
}

// Register validates input, stores a new user and issues a token.
func (s *UserService) Register(ctx context.Context, fullName, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, common.Validation("Please provide all required fields")
	}

	user := models.NewUser(fullName, email)
	if err := validateRegistration(user.FullName, user.Email, password); err != nil {
		return nil, err
	}

	if err := user.SetPassword(password, s.bcryptCost); err != nil {
		return nil, err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, user.Email)
		switch {
		case err == nil:
			return common.ErrDuplicateEmail
		case !errors.Is(err, common.ErrorNotFound):
			return common.Internal(err)
		}

		_, err = repo.Create(ctx, user)
		if err != nil && common.KindOf(err) == common.KindInternal {
			return common.Internal(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)

	return s.authResult(user)
}

// Login checks credentials, records the login time and issues a token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.Validation("Please provide email and password")
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.BurnPasswordCheck(password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.Internal(err)
	}

	ok, err := user.CheckPassword(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	at := s.now().UTC()
	if err := repo.UpdateLastLogin(ctx, user.ID, at); err != nil {
		return nil, common.Internal(err)
	}
	user.LastLogin = &at

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)

	return s.authResult(user)
}

// VerifySession returns the user named by a verified token subject.
func (s *UserService) VerifySession(ctx context.Context, userID string) (*models.PublicUser, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrUserNotFound
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.Internal(err)
	}

	pub := user.Public()
	return &pub, nil
}

func (s *UserService) authResult(user *models.User) (*AuthResult, error) {
	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, common.Internal(err)
	}
	return &AuthResult{User: user.Public(), Token: token, ExpiresAt: exp}, nil
}
