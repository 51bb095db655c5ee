package shoppinglist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

const filename = "shopping_list.txt"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Download godoc
// @Summary Download the aggregated shopping list
// @Tags Recipes
// @Security BearerAuth
// @Produce plain
// @Success 200 {string} string
// @Router /recipes/download_shopping_cart/ [get]
func (h *Handler) Download(c *gin.Context) {
	text, err := h.service.Text(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
