package project

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	projects := r.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.GetByID)
		projects.PATCH("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}
