package interaction

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AddToCart godoc
// @Summary Add a recipe to the shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} recipe.Short
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/shopping_cart/ [post]
func (h *Handler) AddToCart(c *gin.Context) { h.add(c, Cart) }

// RemoveFromCart godoc
// @Summary Remove a recipe from the shopping cart
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/shopping_cart/ [delete]
func (h *Handler) RemoveFromCart(c *gin.Context) { h.remove(c, Cart) }

// AddToFavorites godoc
// @Summary Add a recipe to favorites
// @Tags Recipes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} recipe.Short
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/favorite/ [post]
func (h *Handler) AddToFavorites(c *gin.Context) { h.add(c, Favorites) }

// RemoveFromFavorites godoc
// @Summary Remove a recipe from favorites
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/favorite/ [delete]
func (h *Handler) RemoveFromFavorites(c *gin.Context) { h.remove(c, Favorites) }

func (h *Handler) add(c *gin.Context, set Set) {
	id, ok := recipe.ParseID(c)
	if !ok {
		return
	}
	rec, err := h.service.Add(c.Request.Context(), set, middleware.UserID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, recipe.ToShort(rec))
}

func (h *Handler) remove(c *gin.Context, set Set) {
	id, ok := recipe.ParseID(c)
	if !ok {
		return
	}
	err := h.service.Remove(c.Request.Context(), set, middleware.UserID(c), id)
	switch {
	case errors.Is(err, ErrNotInSet):
		// an absent membership is a bad request, a missing recipe stays 404
		response.FromErrorWithStatus(c, http.StatusBadRequest, err)
	case err != nil:
		response.FromError(c, err)
	default:
		c.Status(http.StatusNoContent)
	}
}
