package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "prodboard/internal/pkg/jwt"
	"prodboard/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin filtering happens at the CORS layer
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     *jwtsvc.Service
}

func NewHandler(service *Service, hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt}
}

func (h *Handler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"), unreadOnly)
	if err != nil {
		response.Internal(c, "failed to list notifications")
		return
	}
	response.OK(c, notifications)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.NotFound(c, "notification not found")
			return
		}
		response.Internal(c, "failed to mark notification read")
		return
	}
	response.OK(c, gin.H{"read": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Internal(c, "failed to mark notifications read")
		return
	}
	response.OK(c, gin.H{"read": true})
}

// ServeWS upgrades GET /ws/notifications?token=JWT into a push socket.
// Auth comes from the query because websocket clients cannot set headers.
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "token query parameter required")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.hub.ServeWS(conn, claims.UserID)
}
