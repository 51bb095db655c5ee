package subscription

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := newFixture(t)

	auth := func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader("X-Test-User-ID"), 10, 64)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("user_id", id)
		c.Next()
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(f.svc), auth)
	return r, f
}

func do(r http.Handler, method, path string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if userID != 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSubscriptionEndpoints(t *testing.T) {
	r, f := setupTestRouter(t)
	me, author := f.users[0], f.users[1]
	f.recipes(t, author, "one", "two")
	path := fmt.Sprintf("/api/users/%d/subscribe/", author.ID)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, path, 0).Code)

	rr := do(r, http.MethodPost, path+"?recipes_limit=1", me.ID)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "u1", created["username"])
	assert.Equal(t, true, created["is_subscribed"])
	assert.Equal(t, float64(2), created["recipes_count"])
	assert.Len(t, created["recipes"], 1)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, path, me.ID).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, fmt.Sprintf("/api/users/%d/subscribe/", me.ID), me.ID).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/users/999/subscribe/", me.ID).Code)

	rr = do(r, http.MethodGet, "/api/users/subscriptions/?recipes_limit=abc", me.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(r, http.MethodGet, "/api/users/subscriptions/", me.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	var page struct {
		Count   int64      `json:"count"`
		Results []Followee `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Results, 1)
	assert.Len(t, page.Results[0].Recipes, 2)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, path, me.ID).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, path, me.ID).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/users/999/subscribe/", me.ID).Code)
}
