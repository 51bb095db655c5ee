package subscription

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	users := r.Group("/users", auth)
	{
		users.GET("/subscriptions/", h.List)
		users.POST("/:id/subscribe/", h.Subscribe)
		users.DELETE("/:id/subscribe/", h.Unsubscribe)
	}
}
