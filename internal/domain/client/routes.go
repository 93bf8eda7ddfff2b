package client

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	clients := r.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/:id", h.GetByID)
		clients.PATCH("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}
