package interaction

import (
	"time"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// CartEntry marks a recipe as being in a user's shopping cart.
type CartEntry struct {
	ID        int64          `gorm:"primaryKey"`
	UserID    int64          `gorm:"not null;uniqueIndex:idx_cart_user_recipe"`
	RecipeID  int64          `gorm:"not null;uniqueIndex:idx_cart_user_recipe;index"`
	User      *user.User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe    *recipe.Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (CartEntry) TableName() string { return recipe.CartEntriesTable }

// FavoriteEntry marks a recipe as a user's favorite.
type FavoriteEntry struct {
	ID        int64          `gorm:"primaryKey"`
	UserID    int64          `gorm:"not null;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  int64          `gorm:"not null;uniqueIndex:idx_favorite_user_recipe;index"`
	User      *user.User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe    *recipe.Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (FavoriteEntry) TableName() string { return recipe.FavoriteEntriesTable }

func Models() []any {
	return []any{&CartEntry{}, &FavoriteEntry{}}
}

// Set names one of the per-user recipe sets.
type Set string

const (
	Cart      Set = "shopping_cart"
	Favorites Set = "favorites"
)

func (s Set) table() string {
	if s == Cart {
		return recipe.CartEntriesTable
	}
	return recipe.FavoriteEntriesTable
}

func (s Set) entry(userID, recipeID int64) any {
	if s == Cart {
		return &CartEntry{UserID: userID, RecipeID: recipeID}
	}
	return &FavoriteEntry{UserID: userID, RecipeID: recipeID}
}
