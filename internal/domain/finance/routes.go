package finance

import (
	"github.com/gin-gonic/gin"

	"prodboard/internal/middleware"
)

// RegisterRoutes mounts finance routes. The whole area is restricted
// to admins and producers.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	records := r.Group("/finance")
	records.Use(middleware.RequireRole("admin", "producer"))
	{
		records.POST("/records", h.Create)
		records.GET("/records", h.List)
		records.GET("/summary", h.Summary)
		records.DELETE("/records/:id", h.Delete)
	}
}
