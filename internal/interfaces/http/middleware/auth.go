package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/infrastructure/auth"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
	"github.com/vendordesk-io/vendordesk/internal/shared/utils"
)

// AuthMiddleware resolves the acting admin from the bearer token. Every
// back-office route runs behind it.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.AdminID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "token carries no admin identity")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)

		c.Next()
	}
}
