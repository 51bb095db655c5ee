package shoppinglist

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain/recipe"
)

type Repository interface {
	CartItems(ctx context.Context, userID int64) ([]Item, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CartItems joins cart, recipe lines and catalog in one query.
func (r *repository) CartItems(ctx context.Context, userID int64) ([]Item, error) {
	db := r.db.WithContext(ctx)
	inCart := db.Table(recipe.CartEntriesTable).Select("recipe_id").Where("user_id = ?", userID)

	var items []Item
	err := db.Table("recipe_ingredients AS ri").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit AS unit, ri.amount").
		Joins("JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN (?)", inCart).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
