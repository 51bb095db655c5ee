package interaction

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the cart and favorite toggles on the /recipes group.
func RegisterRoutes(recipes *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	recipes.POST("/:id/shopping_cart/", auth, h.AddToCart)
	recipes.DELETE("/:id/shopping_cart/", auth, h.RemoveFromCart)
	recipes.POST("/:id/favorite/", auth, h.AddToFavorites)
	recipes.DELETE("/:id/favorite/", auth, h.RemoveFromFavorites)
}
