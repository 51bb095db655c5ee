package subscription

import (
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// Followee is a followed user with a preview of their recipes.
type Followee struct {
	user.Profile
	Recipes      []recipe.Short `json:"recipes"`
	RecipesCount int64          `json:"recipes_count"`
}
