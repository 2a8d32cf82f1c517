package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/logger"
	"lock-tracking-api-server/internal/metrics"
	"lock-tracking-api-server/internal/socket"
)

// Max wait for a client heartbeat before the connection drops.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub *socket.Hub
}

// ServeWs upgrades the connection and keeps it registered in the hub until
// the client disconnects. The token travels in the query string because
// browsers cannot set headers on websocket upgrades.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := auth.ParseJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Get().Error("failed to upgrade websocket connection", zap.Error(err))
		return
	}

	h.Hub.Register(claims.UserID, claims.VendorID, conn)
	if metrics.WebsocketClients != nil {
		metrics.WebsocketClients.Set(float64(h.Hub.ClientCount()))
	}

	defer func() {
		h.Hub.Unregister(claims.UserID)
		if metrics.WebsocketClients != nil {
			metrics.WebsocketClients.Set(float64(h.Hub.ClientCount()))
		}
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Get().Warn("unexpected websocket close", zap.Error(err))
			}
			break
		}
	}
}
