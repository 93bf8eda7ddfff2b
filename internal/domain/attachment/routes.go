package attachment

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	attachments := rg.Group("/attachments")
	{
		attachments.GET("", h.Grouped)
		attachments.GET("/view", h.View)
		attachments.GET("/:ownerType/:ownerID", h.ListByOwner)
		attachments.POST("/:ownerType/:ownerID", h.Upload)
		attachments.GET("/:ownerType/:ownerID/:id/download", h.Download)
		attachments.DELETE("/:ownerType/:ownerID/:id", h.Delete)
	}
}
