package team

import (
	"github.com/gin-gonic/gin"

	"prodboard/internal/middleware"
)

// RegisterRoutes mounts team routes on the authenticated group.
// Mutations are admin/producer only.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	members := r.Group("/team")
	{
		members.GET("", h.List)
		members.GET("/:id", h.GetByID)

		manage := members.Group("")
		manage.Use(middleware.RequireRole("admin", "producer"))
		{
			manage.POST("", h.Create)
			manage.PATCH("/:id", h.Update)
			manage.DELETE("/:id", middleware.RequireRole("admin"), h.Delete)
		}
	}
}
