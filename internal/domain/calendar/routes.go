package calendar

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	events := r.Group("/calendar/events")
	{
		events.POST("", h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.GetByID)
		events.PATCH("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
