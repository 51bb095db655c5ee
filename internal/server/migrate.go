package server

import (
	"gorm.io/gorm"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/interaction"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/user"
)

// Models lists every table in foreign-key order.
func Models() []any {
	models := []any{&user.User{}, &ingredient.Ingredient{}}
	models = append(models, recipe.Models()...)
	models = append(models, interaction.Models()...)
	return append(models, &subscription.Subscription{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
