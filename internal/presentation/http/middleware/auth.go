package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/receipthub/receipthub-api/internal/presentation/http/dto/response"
	"github.com/receipthub/receipthub-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. The token is read
// from the Authorization header ("Bearer <token>") or, failing that, from
// the auth cookie set at login.
func AuthMiddleware(jwtManager *utils.JWTManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c, cookieName)
		if tokenString == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		// Not a bearer header; the cookie may still carry a session
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie
}
