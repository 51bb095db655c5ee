package recipe

import (
	"time"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/user"
)

// Membership tables owned by the interaction package. Recipe deletion and
// list filters reach into them directly.
const (
	CartEntriesTable     = "cart_entries"
	FavoriteEntriesTable = "favorite_entries"
)

type Recipe struct {
	ID          int64              `gorm:"primaryKey"`
	AuthorID    int64              `gorm:"not null;index"`
	Author      *user.User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `gorm:"size:256;not null"`
	Text        string             `gorm:"type:text;not null"`
	CookingTime int                `gorm:"not null"`
	Image       string             `gorm:"size:512;not null"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient is one ingredient line; an ingredient appears at most once
// per recipe.
type RecipeIngredient struct {
	ID           int64                  `gorm:"primaryKey"`
	RecipeID     int64                  `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID int64                  `gorm:"not null;uniqueIndex:idx_recipe_ingredient;index"`
	Ingredient   *ingredient.Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int                    `gorm:"not null"`
	Position     int                    `gorm:"not null;default:0"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// Models lists the tables owned by this package in migration order.
func Models() []any {
	return []any{&Recipe{}, &RecipeIngredient{}}
}
