package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foodgram/internal/config"
	"foodgram/internal/database/dbtest"
	"foodgram/internal/domain/ingredient"
)

type E2ETestSuite struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
}

// TestResponse holds the raw body plus the error envelope when one was sent.
type TestResponse struct {
	Body    json.RawMessage `json:"-"`
	Success *bool           `json:"success,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t)
	require.NoError(t, Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		AppEnv:             "test",
		JWTSecret:          "test_secret_key_32_characters_min",
		JWTAccessTTL:       time.Hour,
		IngredientCacheTTL: time.Minute,
		PublicBaseURL:      "https://foodgram.example",
	}
	router := NewRouter(Deps{Config: cfg, DB: db, Redis: rdb, Logger: zap.NewNop()})
	return &E2ETestSuite{t: t, router: router, db: db}
}

func (s *E2ETestSuite) request(method, path string, body any, token string) (*httptest.ResponseRecorder, TestResponse) {
	s.t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	resp := TestResponse{Body: w.Body.Bytes()}
	if bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (s *E2ETestSuite) registerAndLogin(username string) (int64, string) {
	s.t.Helper()
	w, resp := s.request(http.MethodPost, "/api/users/", map[string]any{
		"email":      username + "@example.com",
		"username":   username,
		"first_name": "First",
		"last_name":  "Last",
		"password":   "s3cret-pass",
	}, "")
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Body, &created))

	w, resp = s.request(http.MethodPost, "/api/auth/token/login/", map[string]any{
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	}, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var token struct {
		AuthToken string `json:"auth_token"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Body, &token))
	return created.ID, token.AuthToken
}

func (s *E2ETestSuite) seedCatalog() map[string]int64 {
	s.t.Helper()
	svc := ingredient.NewService(ingredient.NewRepository(s.db), nil)
	_, err := svc.Import(context.Background(), []ingredient.ImportItem{
		{Name: "Flour", MeasurementUnit: "g"},
		{Name: "Salt", MeasurementUnit: "g"},
		{Name: "Sugar", MeasurementUnit: "g"},
	})
	require.NoError(s.t, err)

	items, err := svc.Search(context.Background(), "")
	require.NoError(s.t, err)
	ids := make(map[string]int64, len(items))
	for _, it := range items {
		ids[it.Name] = it.ID
	}
	return ids
}

func (s *E2ETestSuite) createRecipe(token, name string, lines map[int64]int) int64 {
	s.t.Helper()
	ingredients := make([]map[string]any, 0, len(lines))
	for id, amount := range lines {
		ingredients = append(ingredients, map[string]any{"id": id, "amount": amount})
	}
	w, resp := s.request(http.MethodPost, "/api/recipes/", map[string]any{
		"name":         name,
		"text":         "Mix everything.",
		"image":        "recipes/images/" + name + ".png",
		"cooking_time": 30,
		"ingredients":  ingredients,
	}, token)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Body, &created))
	return created.ID
}

func TestE2E_ShoppingListFlow(t *testing.T) {
	s := setupTestSuite(t)
	catalog := s.seedCatalog()
	_, cookToken := s.registerAndLogin("cook")
	_, eaterToken := s.registerAndLogin("eater")

	a := s.createRecipe(cookToken, "A", map[int64]int{catalog["Flour"]: 200, catalog["Salt"]: 5})
	b := s.createRecipe(cookToken, "B", map[int64]int{catalog["Flour"]: 300, catalog["Sugar"]: 100})

	w, _ := s.request(http.MethodGet, "/api/recipes/download_shopping_cart/", nil, eaterToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())

	for _, id := range []int64{a, b} {
		w, _ = s.request(http.MethodPost, fmt.Sprintf("/api/recipes/%d/shopping_cart/", id), nil, eaterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w, resp := s.request(http.MethodPost, fmt.Sprintf("/api/recipes/%d/shopping_cart/", a), nil, eaterToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CONFLICT", resp.Error.Code)

	w, _ = s.request(http.MethodGet, "/api/recipes/download_shopping_cart/", nil, eaterToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "* Flour (g) - 500\n* Salt (g) - 5\n* Sugar (g) - 100", w.Body.String())

	w, resp = s.request(http.MethodGet, "/api/recipes/?is_in_shopping_cart=1", nil, eaterToken)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			ID               int64 `json:"id"`
			IsInShoppingCart bool  `json:"is_in_shopping_cart"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &page))
	assert.Nil(t, resp.Success)
	assert.Equal(t, int64(2), page.Count)
	for _, r := range page.Results {
		assert.True(t, r.IsInShoppingCart)
	}

	// deleting a recipe drops it from every cart
	w, _ = s.request(http.MethodDelete, fmt.Sprintf("/api/recipes/%d/", b), nil, eaterToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.request(http.MethodDelete, fmt.Sprintf("/api/recipes/%d/", b), nil, cookToken)
	require.Equal(t, http.StatusNoContent, w.Code)

	w, _ = s.request(http.MethodGet, "/api/recipes/download_shopping_cart/", nil, eaterToken)
	assert.Equal(t, "* Flour (g) - 200\n* Salt (g) - 5", w.Body.String())
}

func TestE2E_SubscriptionsAndProfiles(t *testing.T) {
	s := setupTestSuite(t)
	catalog := s.seedCatalog()
	cookID, cookToken := s.registerAndLogin("cook")
	eaterID, eaterToken := s.registerAndLogin("eater")
	s.createRecipe(cookToken, "A", map[int64]int{catalog["Flour"]: 1})
	s.createRecipe(cookToken, "B", map[int64]int{catalog["Salt"]: 1})

	w, resp := s.request(http.MethodPost, fmt.Sprintf("/api/users/%d/subscribe/", eaterID), nil, eaterToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	w, _ = s.request(http.MethodPost, fmt.Sprintf("/api/users/%d/subscribe/?recipes_limit=1", cookID), nil, eaterToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = s.request(http.MethodGet, fmt.Sprintf("/api/users/%d/", cookID), nil, eaterToken)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		IsSubscribed bool `json:"is_subscribed"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &profile))
	assert.True(t, profile.IsSubscribed)

	w, resp = s.request(http.MethodGet, fmt.Sprintf("/api/users/%d/", cookID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Body, &profile))
	assert.False(t, profile.IsSubscribed)

	w, resp = s.request(http.MethodGet, "/api/users/subscriptions/?recipes_limit=1", nil, eaterToken)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Count   int64 `json:"count"`
		Results []struct {
			ID           int64 `json:"id"`
			RecipesCount int64 `json:"recipes_count"`
			Recipes      []any `json:"recipes"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, cookID, page.Results[0].ID)
	assert.Equal(t, int64(2), page.Results[0].RecipesCount)
	assert.Len(t, page.Results[0].Recipes, 1)

	w, _ = s.request(http.MethodGet, "/api/users/me/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.request(http.MethodGet, "/api/users/me/", nil, eaterToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestE2E_ShortLinkAndIngredients(t *testing.T) {
	s := setupTestSuite(t)
	catalog := s.seedCatalog()
	_, cookToken := s.registerAndLogin("cook")
	id := s.createRecipe(cookToken, "A", map[int64]int{catalog["Flour"]: 1})

	w, resp := s.request(http.MethodGet, fmt.Sprintf("/api/recipes/%d/get-link/", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, resp.Success)
	var link map[string]string
	require.NoError(t, json.Unmarshal(resp.Body, &link))
	assert.Len(t, link, 1)
	assert.Equal(t, fmt.Sprintf("https://foodgram.example/s/%x/", id), link["short-link"])

	w, _ = s.request(http.MethodGet, fmt.Sprintf("/s/%x/", id), nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/recipes/%d", id), w.Header().Get("Location"))

	w, _ = s.request(http.MethodGet, "/s/not-hex/", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = s.request(http.MethodGet, "/api/ingredients/?name=S", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []ingredient.Ingredient
	require.NoError(t, json.Unmarshal(resp.Body, &items))
	assert.Len(t, items, 2)

	w, _ = s.request(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
