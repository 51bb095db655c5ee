package user

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/apperror"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} map[string]interface{}
// @Router /users/ [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperror.ValidationFields("invalid user data", errs))
		return
	}

	u, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, ToRegisterResponse(u))
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /users/ [get]
func (h *Handler) List(c *gin.Context) {
	p := pagination.FromRequest(c)
	users, total, err := h.service.List(c.Request.Context(), p.Offset(), p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	profiles, err := h.service.Profiles(c.Request.Context(), middleware.UserID(c), users)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pagination.NewPage(c, p, total, profiles))
}

// Get godoc
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} Profile
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id}/ [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.FromError(c, ErrUserNotFound)
		return
	}
	h.renderProfile(c, id)
}

// Me godoc
// @Summary Current user profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Profile
// @Router /users/me/ [get]
func (h *Handler) Me(c *gin.Context) {
	h.renderProfile(c, middleware.UserID(c))
}

// UpdateAvatar godoc
// @Summary Set the current user's avatar
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body AvatarRequest true "Avatar reference"
// @Success 200 {object} AvatarResponse
// @Failure 400 {object} map[string]interface{}
// @Router /users/me/avatar/ [put]
func (h *Handler) UpdateAvatar(c *gin.Context) {
	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	req.Avatar = strings.TrimSpace(req.Avatar)
	if errs := validator.Validate(&req); errs != nil {
		response.FromError(c, apperror.ValidationFields("invalid avatar", errs))
		return
	}

	if err := h.service.SetAvatar(c.Request.Context(), middleware.UserID(c), req.Avatar); err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, AvatarResponse{Avatar: req.Avatar})
}

// DeleteAvatar godoc
// @Summary Remove the current user's avatar
// @Tags Users
// @Security BearerAuth
// @Success 204
// @Router /users/me/avatar/ [delete]
func (h *Handler) DeleteAvatar(c *gin.Context) {
	if err := h.service.ClearAvatar(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) renderProfile(c *gin.Context, id int64) {
	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	profiles, err := h.service.Profiles(c.Request.Context(), middleware.UserID(c), []User{*u})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profiles[0])
}
