package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/utils"
)

// RequireRoles guards a route group. Admin passes every check.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := ActingUser(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if user.IsAdmin() {
			c.Next()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", rolesLabel(roles)))
		c.Abort()
	}
}

func rolesLabel(roles []models.Role) string {
	if len(roles) == 0 {
		return "admin"
	}
	label := string(roles[0])
	for _, role := range roles[1:] {
		label += " or " + string(role)
	}
	return label
}
