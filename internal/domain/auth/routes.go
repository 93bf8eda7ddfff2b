package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes mounts the unauthenticated auth endpoints.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	a := r.Group("/auth")
	{
		a.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes mounts endpoints that need a valid token.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	a := r.Group("/auth")
	{
		a.GET("/me", h.Me)
	}
}
