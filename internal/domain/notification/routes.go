package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts notification routes on the authenticated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	n := r.Group("/notifications")
	{
		n.GET("", h.List)
		n.POST("/:id/read", h.MarkRead)
		n.POST("/read-all", h.MarkAllRead)
	}
}

// RegisterWSRoutes mounts the websocket endpoint outside the auth
// middleware; the handler authenticates via the token query parameter.
func RegisterWSRoutes(r *gin.Engine, h *Handler) {
	r.GET("/ws/notifications", h.ServeWS)
}
