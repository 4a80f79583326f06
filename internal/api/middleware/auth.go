package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/tracker-go/internal/config"
	"github.com/linskybing/tracker-go/pkg/response"
	"github.com/linskybing/tracker-go/pkg/utils"
)

// RequireRole lets the request through only when the authenticated user
// holds one of the global roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := utils.GetCurrentUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized", Kind: "unauthorized"})
			return
		}
		if !u.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "role not permitted for this operation", Kind: "forbidden"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the configured origins. Websocket upgrades skip CORS.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	corsHandler := cors.New(cfg)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

// DefaultCORS uses the origins from configuration.
func DefaultCORS() gin.HandlerFunc {
	return CORSMiddleware(config.CORSOrigins)
}
