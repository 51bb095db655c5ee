package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /users. auth rejects anonymous callers, optional only
// identifies them.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth, optional gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/", h.Register)
		users.GET("/", optional, h.List)
		users.GET("/me/", auth, h.Me)
		users.PUT("/me/avatar/", auth, h.UpdateAvatar)
		users.DELETE("/me/avatar/", auth, h.DeleteAvatar)
		users.GET("/:id/", optional, h.Get)
	}
}
