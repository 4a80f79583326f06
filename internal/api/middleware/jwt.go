package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/domain/user"
	"github.com/linskybing/tracker-go/pkg/response"
	"github.com/linskybing/tracker-go/pkg/utils"
)

const tokenCookie = "token"

// UserResolver turns a session token into the user it was issued for.
type UserResolver interface {
	ResolveCurrentUser(token string) (*user.User, error)
}

// JWTAuthMiddleware validates a Bearer token in the Authorization header or
// the token cookie and stores the resolved user on the context.
func JWTAuthMiddleware(resolver UserResolver) gin.HandlerFunc {
	return authenticate(resolver, false)
}

// WebSocketAuthMiddleware also accepts the token as a query parameter, since
// browsers cannot set headers on a websocket handshake.
func WebSocketAuthMiddleware(resolver UserResolver) gin.HandlerFunc {
	return authenticate(resolver, true)
}

func authenticate(resolver UserResolver, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, msg := extractToken(c, allowQuery)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: msg, Kind: "unauthorized"})
			return
		}

		u, err := resolver.ResolveCurrentUser(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid or expired session", Kind: "unauthorized"})
			return
		}

		utils.SetCurrentUser(c, u)
		c.Next()
	}
}

func extractToken(c *gin.Context, allowQuery bool) (string, string) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return "", "Authorization header format must be Bearer {token}"
		}
		return strings.TrimSpace(parts[1]), ""
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil && cookie != "" {
		return cookie, ""
	}
	if allowQuery {
		if q := c.Query("token"); q != "" {
			return q, ""
		}
	}
	return "", "Authorization required (header or cookie)"
}
