package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sparklean/cleaning-app/middlewares"
	"github.com/sparklean/cleaning-app/models"
	"github.com/sparklean/cleaning-app/ops"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// OpsHandler -> endpoint WebSocket untuk dashboard operator
func OpsHandler(c *gin.Context) {
	user, ok := middlewares.ActingUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if user.Role != models.RoleAdmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	ops.RegisterClient(ws, string(user.Role))

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	ops.UnregisterClient(ws)
}
