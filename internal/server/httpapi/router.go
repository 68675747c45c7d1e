// Package httpapi is the HTTP surface of the server, built on gin.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/dmitrijs2005/foundrmate/internal/server/models"
	"github.com/dmitrijs2005/foundrmate/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is the credential service as seen by handlers.
type UserService interface {
	Register(ctx context.Context, fullName, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifySession(ctx context.Context, userID string) (*models.PublicUser, error)
}

// IdeaService accepts idea submissions.
type IdeaService interface {
	Submit(ctx context.Context, userID, message string) (*models.IdeaAnalysis, error)
}

// TokenVerifier checks session tokens; *auth.TokenManager implements it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Options configures NewRouter. Limiter may be nil. TrustedProxies lists
// the proxies whose X-Forwarded-For is used for the client IP; nil trusts
// none.
type Options struct {
	Users          UserService
	Ideas          IdeaService
	Tokens         TokenVerifier
	Limiter        Limiter
	AllowedOrigin  string
	TrustedProxies []string
	Logger         logging.Logger
}

type handler struct {
	users  UserService
	ideas  IdeaService
	logger logging.Logger
	now    func() time.Time
}

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger.With("module", "http")

	h := &handler{
		users:  opts.Users,
		ideas:  opts.Ideas,
		logger: logger,
		now:    time.Now,
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		logger.Error(context.Background(), "invalid trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		RequestID(logger),
		Recovery(logger),
		CORS(opts.AllowedOrigin),
	)

	r.GET("/health", h.health)

	gate := AuthRequired(opts.Tokens, logger)

	authGroup := r.Group("/api/auth")
	if opts.Limiter != nil {
		authGroup.Use(RateLimit(opts.Limiter, logger))
	}
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.GET("/verify", gate, h.verify)

	ideas := r.Group("/api/ideas", gate)
	ideas.POST("/submit", h.submitIdea)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Route not found"})
	})

	return r
}
