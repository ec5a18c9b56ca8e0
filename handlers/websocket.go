package handlers

import (
	"log"
	"net/http"

	"fitness-server/auth"
	"fitness-server/repositories"
	"fitness-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler owns the live-feed websocket endpoint. Browsers cannot set an
// Authorization header on a websocket handshake, so the token rides in a
// query parameter and is verified the same way the middleware does.
type WSHandler struct {
	mgr    *ws.Manager
	tokens *auth.TokenManager
	users  repositories.UserRepository
}

func NewWSHandler(mgr *ws.Manager, tokens *auth.TokenManager, users repositories.UserRepository) *WSHandler {
	return &WSHandler{mgr: mgr, tokens: tokens, users: users}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleFeedWS upgrades to websocket and holds the connection open for
// activity pushes.
// GET /ws/feed?token=<jwt>
func (h *WSHandler) HandleFeedWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
		return
	}
	if _, err := h.users.GetByID(claims.UserID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(claims.UserID, conn)
	log.Printf("feed connected: %s", claims.UserID)

	defer func() {
		h.mgr.Unregister(claims.UserID)
		log.Printf("feed disconnected: %s", claims.UserID)
	}()

	// The feed is push-only; drain client frames until the socket closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("feed %s closed connection", claims.UserID)
			} else {
				log.Printf("read error from %s: %v", claims.UserID, err)
			}
			return
		}
	}
}

// GetConnectedUsers GET /api/v1/feed/connected
func (h *WSHandler) GetConnectedUsers(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"users": ids, "count": len(ids)})
}
