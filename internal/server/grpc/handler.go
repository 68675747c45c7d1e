package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/dmitrijs2005/foundrmate/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, in *RegisterRequest) (*AuthReply, error) {
	res, err := s.users.Register(ctx, in.FullName, in.Email, in.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Error creating user account")
	}
	return authReply(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, in *LoginRequest) (*AuthReply, error) {
	res, err := s.users.Login(ctx, in.Email, in.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Error logging in")
	}
	return authReply(res), nil
}

func (s *GRPCServer) Verify(ctx context.Context, _ *VerifyRequest) (*VerifyReply, error) {
	user, err := s.users.VerifySession(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err, "Error verifying token")
	}
	return &VerifyReply{User: *user}, nil
}

func (s *GRPCServer) SubmitIdea(ctx context.Context, in *SubmitIdeaRequest) (*SubmitIdeaReply, error) {
	a, err := s.ideas.Submit(ctx, auth.UserIDFromContext(ctx), in.Message)
	if err != nil {
		return nil, s.toStatus(ctx, err, "Error processing your idea")
	}
	return &SubmitIdeaReply{
		Analysis:  a,
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, nil
}

// toStatus maps a service error to a gRPC status; internal failures are
// logged and reported with fallback only.
func (s *GRPCServer) toStatus(ctx context.Context, err error, fallback string) error {
	var code codes.Code
	switch common.KindOf(err) {
	case common.KindValidation:
		code = codes.InvalidArgument
	case common.KindDuplicateEmail:
		code = codes.AlreadyExists
	case common.KindInvalidCredentials:
		code = codes.Unauthenticated
	case common.KindUserNotFound:
		code = codes.NotFound
	case common.KindMalformedToken, common.KindExpiredToken:
		code = codes.PermissionDenied
	default:
		s.logger.Error(ctx, fallback, "error", err)
		return status.Error(codes.Internal, fallback)
	}
	return status.Error(code, common.MessageOf(err, fallback))
}

func authReply(res *services.AuthResult) *AuthReply {
	return &AuthReply{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
		User:      res.User,
	}
}
