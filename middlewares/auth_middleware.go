package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

// ContextUserKey is where the resolved acting identity lives on the gin
// context. The service layer never reads it, controllers pass it by value.
const ContextUserKey = "user_values"

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid or expired token"))
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid user ID in token"))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, models.UserValues{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  models.Role(claims.Role),
		})

		c.Next()
	}
}

// WebSocketAuthMiddleware reads the token from the query string because
// browsers cannot set headers on websocket dials.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserKey, models.UserValues{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  models.Role(claims.Role),
		})

		c.Next()
	}
}

// ActingUser pulls the resolved identity off the context.
func ActingUser(c *gin.Context) (models.UserValues, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return models.UserValues{}, false
	}
	user, ok := value.(models.UserValues)
	return user, ok
}
