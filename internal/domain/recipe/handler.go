package recipe

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"foodgram/internal/middleware"
	"foodgram/internal/pkg/apperror"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/shortlink"
	"foodgram/internal/pkg/validator"
)

type operation string

const (
	opList     operation = "list"
	opRetrieve operation = "retrieve"
	opCreate   operation = "create"
	opUpdate   operation = "update"
)

// writeInput is a decoded create or update body.
type writeInput struct {
	meta  Metadata
	patch Patch
	lines []Line
}

// operationBinding says how an operation reads its body and which status a
// successful response carries. Read operations have no binder.
type operationBinding struct {
	bind   func(c *gin.Context) (*writeInput, error)
	status int
}

var operations = map[operation]operationBinding{
	opList:     {status: http.StatusOK},
	opRetrieve: {status: http.StatusOK},
	opCreate:   {bind: bindCreate, status: http.StatusCreated},
	opUpdate:   {bind: bindUpdate, status: http.StatusOK},
}

var errInvalidJSON = apperror.Validation("invalid JSON body")

func bindCreate(c *gin.Context) (*writeInput, error) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errInvalidJSON
	}
	req.normalize()
	if errs := validator.Validate(&req); errs != nil {
		return nil, apperror.ValidationFields("invalid recipe data", errs)
	}
	lines := toLines(req.Ingredients)
	if lines == nil {
		lines = []Line{}
	}
	return &writeInput{
		meta: Metadata{
			Name:        req.Name,
			Text:        req.Text,
			Image:       req.Image,
			CookingTime: req.CookingTime,
		},
		lines: lines,
	}, nil
}

func bindUpdate(c *gin.Context) (*writeInput, error) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errInvalidJSON
	}
	req.normalize()
	if errs := validator.Validate(&req); errs != nil {
		return nil, apperror.ValidationFields("invalid recipe data", errs)
	}
	return &writeInput{
		patch: Patch{
			Name:        req.Name,
			Text:        req.Text,
			Image:       req.Image,
			CookingTime: req.CookingTime,
		},
		lines: toLines(req.Ingredients),
	}, nil
}

type Handler struct {
	service *Service
	// baseURL prefixes short links; empty derives it from the request.
	baseURL string
}

func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: strings.TrimRight(baseURL, "/")}
}

// List godoc
// @Summary List recipes
// @Tags Recipes
// @Produce json
// @Param author query int false "Author ID"
// @Param is_favorited query int false "1 to show only favorites"
// @Param is_in_shopping_cart query int false "1 to show only cart recipes"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /recipes/ [get]
func (h *Handler) List(c *gin.Context) {
	viewer := middleware.UserID(c)
	var f ListFilter
	if v := c.Query("author"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			response.FromError(c, apperror.Validation("author must be a user id").WithField("author"))
			return
		}
		f.AuthorID = id
	}
	if viewer != 0 && c.Query("is_favorited") == "1" {
		f.FavoritedBy = viewer
	}
	if viewer != 0 && c.Query("is_in_shopping_cart") == "1" {
		f.InCartOf = viewer
	}

	p := pagination.FromRequest(c)
	recipes, total, err := h.service.List(c.Request.Context(), f, p.Offset(), p.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	details, err := h.service.Details(c.Request.Context(), viewer, recipes)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, operations[opList].status, pagination.NewPage(c, p, total, details))
}

// Get godoc
// @Summary Get a recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} Detail
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/ [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	rec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.render(c, opRetrieve, rec)
}

// Create godoc
// @Summary Create a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Recipe"
// @Success 201 {object} Detail
// @Failure 400 {object} map[string]interface{}
// @Router /recipes/ [post]
func (h *Handler) Create(c *gin.Context) {
	in, err := operations[opCreate].bind(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	rec, err := h.service.Create(c.Request.Context(), middleware.UserID(c), in.meta, in.lines)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.render(c, opCreate, rec)
}

// Update godoc
// @Summary Update a recipe
// @Tags Recipes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param body body UpdateRequest true "Changes; ingredients are required"
// @Success 200 {object} Detail
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/ [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	in, err := operations[opUpdate].bind(c)
	if err != nil {
		response.FromError(c, err)
		return
	}
	rec, err := h.service.Update(c.Request.Context(), id, middleware.UserID(c), in.patch, in.lines)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.render(c, opUpdate, rec)
}

// Delete godoc
// @Summary Delete a recipe
// @Tags Recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/ [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetLink godoc
// @Summary Short link for a recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /recipes/{id}/get-link/ [get]
func (h *Handler) GetLink(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	exists, err := h.service.Exists(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !exists {
		response.FromError(c, ErrRecipeNotFound)
		return
	}
	link := fmt.Sprintf("%s/s/%s/", h.base(c), shortlink.Encode(id))
	response.JSON(c, http.StatusOK, gin.H{"short-link": link})
}

// Resolve redirects a short link to the recipe page.
func (h *Handler) Resolve(c *gin.Context) {
	id, err := shortlink.Decode(c.Param("code"))
	if err != nil {
		response.FromError(c, ErrRecipeNotFound)
		return
	}
	exists, err := h.service.Exists(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !exists {
		response.FromError(c, ErrRecipeNotFound)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/recipes/%d", id))
}

func (h *Handler) render(c *gin.Context, op operation, rec *Recipe) {
	details, err := h.service.Details(c.Request.Context(), middleware.UserID(c), []Recipe{*rec})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, operations[op].status, details[0])
}

func (h *Handler) base(c *gin.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + c.Request.Host
}

// recipeID parses the :id path parameter; a malformed id renders 404.
func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.FromError(c, ErrRecipeNotFound)
		return 0, false
	}
	return id, true
}

// ParseID is recipeID for sibling packages mounting routes under /recipes/:id.
func ParseID(c *gin.Context) (int64, bool) {
	return recipeID(c)
}
