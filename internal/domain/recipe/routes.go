package recipe

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /recipes. Sibling packages add their own
// /recipes/:id/... routes on the same group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth, optional gin.HandlerFunc) *gin.RouterGroup {
	recipes := r.Group("/recipes")
	{
		recipes.GET("/", optional, h.List)
		recipes.POST("/", auth, h.Create)
		recipes.GET("/:id/", optional, h.Get)
		recipes.PATCH("/:id/", auth, h.Update)
		recipes.DELETE("/:id/", auth, h.Delete)
		recipes.GET("/:id/get-link/", h.GetLink)
	}
	return recipes
}

// RegisterShortLinkRoutes mounts the /s/{code}/ resolver at the site root.
func RegisterShortLinkRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/s/:code/", h.Resolve)
}
