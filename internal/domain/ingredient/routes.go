package ingredient

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("/", h.List)
		ingredients.GET("/:id/", h.Get)
	}
}
