package middleware

import (
	"crypto/subtle"
	"strings"

	"minibook/internal/handler/httperr"
	"minibook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates routes behind the two static bearer secrets. There
// is no identity or hierarchy: a route requires one exact secret, and the
// admin secret does not open user routes.
type AuthMiddleware struct {
	cfg config.AuthConfig
}

func NewAuthMiddleware(cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return m.require(m.cfg.UserToken)
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(m.cfg.AdminToken)
}

func (m *AuthMiddleware) require(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			httperr.Abort(c, httperr.TokenRequired, nil)
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		if token == "" {
			httperr.Abort(c, httperr.TokenRequired, nil)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			httperr.Abort(c, httperr.TokenInvalid, nil)
			return
		}

		c.Next()
	}
}
