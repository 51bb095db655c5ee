package shoppinglist

import "github.com/gin-gonic/gin"

func RegisterRoutes(recipes *gin.RouterGroup, h *Handler, auth gin.HandlerFunc) {
	recipes.GET("/download_shopping_cart/", auth, h.Download)
}
