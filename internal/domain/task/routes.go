package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	tasks := r.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.GetByID)
		tasks.PATCH("/:id", h.Update)
		tasks.POST("/:id/toggle", h.ToggleComplete)
		tasks.DELETE("/:id", h.Delete)
	}
}
