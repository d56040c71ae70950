package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventsnap/pkg/utils"
)

// JWTAuthMiddleware verifies the organizer's bearer token. Tokens are issued
// by the external identity provider; only the caller id is read from them.
func JWTAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			utils.LoggerFrom(c).Debug("token rejected", zap.Error(err))
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		callerID := claims.CallerID()
		c.Set("user_id", callerID)
		utils.SetLogger(c, utils.LoggerFrom(c).With(zap.String("user_id", callerID)))
		c.Next()
	}
}
