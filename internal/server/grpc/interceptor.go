package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods need a valid session token.
var protectedMethods = map[string]bool{
	VerifyMethod:     true,
	SubmitIdeaMethod: true,
}

// accessTokenInterceptor applies the request gate to protected methods. The
// token is read from the "authorization" metadata, with or without the
// Bearer prefix.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(strings.ToLower(common.AuthorizationHeaderName)); len(values) > 0 {
			token = strings.TrimSpace(strings.TrimPrefix(values[0], common.BearerScheme+" "))
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "Access denied. No token provided.")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		switch common.KindOf(err) {
		case common.KindMalformedToken, common.KindExpiredToken:
			return nil, status.Error(codes.PermissionDenied, common.MessageOf(err, ""))
		default:
			s.logger.Error(ctx, "token verification failed", "method", info.FullMethod, "error", err)
			return nil, status.Error(codes.Internal, common.ErrAuth.Msg)
		}
	}

	return handler(auth.WithUserID(ctx, claims.UserID), req)
}
