package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storeward/storefront-api/pkg/helpers"
	"github.com/storeward/storefront-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the bearer token from the Authorization header and
// injects the token's user id into the Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token", err.Error())
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
