package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Subscribe godoc
// @Summary Subscribe to a user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Param recipes_limit query int false "Recipes shown per author"
// @Success 201 {object} Followee
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/subscribe/ [post]
func (h *Handler) Subscribe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	recipesLimit, err := ParseRecipesLimit(c.Query("recipes_limit"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	followee, err := h.service.Subscribe(c.Request.Context(), middleware.UserID(c), id, recipesLimit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, followee)
}

// Unsubscribe godoc
// @Summary Unsubscribe from a user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/subscribe/ [delete]
func (h *Handler) Unsubscribe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	err := h.service.Unsubscribe(c.Request.Context(), middleware.UserID(c), id)
	switch {
	case errors.Is(err, ErrNotSubscribed):
		response.FromErrorWithStatus(c, http.StatusBadRequest, err)
	case err != nil:
		response.FromError(c, err)
	default:
		c.Status(http.StatusNoContent)
	}
}

// List godoc
// @Summary List followed users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param recipes_limit query int false "Recipes shown per author"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /users/subscriptions/ [get]
func (h *Handler) List(c *gin.Context) {
	recipesLimit, err := ParseRecipesLimit(c.Query("recipes_limit"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	p := pagination.FromRequest(c)
	followees, total, err := h.service.ListFollowing(c.Request.Context(), middleware.UserID(c), recipesLimit, p.Offset(), p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pagination.NewPage(c, p, total, followees))
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.FromError(c, user.ErrUserNotFound)
		return 0, false
	}
	return id, true
}
