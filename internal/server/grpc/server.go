// Package grpc exposes the credential and idea services over gRPC, using a
// JSON codec in place of generated protobuf messages.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/dmitrijs2005/foundrmate/internal/server/models"
	"github.com/dmitrijs2005/foundrmate/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, fullName, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifySession(ctx context.Context, userID string) (*models.PublicUser, error)
}

type IdeaService interface {
	Submit(ctx context.Context, userID, message string) (*models.IdeaAnalysis, error)
}

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type GRPCServer struct {
	address string
	users   UserService
	ideas   IdeaService
	tokens  TokenVerifier
	logger  logging.Logger
	now     func() time.Time
}

func NewGRPCServer(a string, l logging.Logger, us UserService, is IdeaService, tokens TokenVerifier) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		ideas:   is,
		tokens:  tokens,
		now:     time.Now,
	}
}

// newServer builds a grpc.Server with the service and health registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	srv.RegisterService(&ServiceDesc, s)

	hs := health.NewServer()
	hs.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

// Run serves on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
