package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// AuthRequired admits requests carrying a valid session token in the
// Authorization header ("Bearer <token>") and records the user id for the
// handlers downstream. Any other request is answered here.
func AuthRequired(tokens TokenVerifier, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader(common.AuthorizationHeaderName))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Access denied. No token provided."})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			switch common.KindOf(err) {
			case common.KindMalformedToken, common.KindExpiredToken:
				c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{Error: common.MessageOf(err, "")})
			default:
				logger.Error(c.Request.Context(), "token verification failed", "request_id", RequestIDFrom(c), "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: common.ErrAuth.Msg})
			}
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Request = c.Request.WithContext(auth.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// bearerToken returns the second space-separated field of header.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
