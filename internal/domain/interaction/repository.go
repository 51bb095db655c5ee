package interaction

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/database"
)

type Repository interface {
	Add(ctx context.Context, set Set, userID, recipeID int64) error
	Remove(ctx context.Context, set Set, userID, recipeID int64) (bool, error)
	Contains(ctx context.Context, set Set, userID, recipeID int64) (bool, error)
	Members(ctx context.Context, set Set, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Add inserts a membership row. The unique (user, recipe) index decides
// races; a violation is reported as ErrAlreadyPresent.
func (r *repository) Add(ctx context.Context, set Set, userID, recipeID int64) error {
	err := r.db.WithContext(ctx).Create(set.entry(userID, recipeID)).Error
	if database.IsUniqueViolation(err) {
		return ErrAlreadyPresent.Wrap(err)
	}
	return err
}

func (r *repository) Remove(ctx context.Context, set Set, userID, recipeID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(set.entry(0, 0))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Contains(ctx context.Context, set Set, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table(set.table()).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Members(ctx context.Context, set Set, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}
	var ids []int64
	err := r.db.WithContext(ctx).
		Table(set.table()).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
