package ingredient

import (
	"context"
	"unicode/utf8"

	"gorm.io/gorm"

	"foodgram/internal/database"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Ingredient, error)
	SearchByPrefix(ctx context.Context, prefix string) ([]Ingredient, error)
	CreateInBatches(ctx context.Context, items []Ingredient, batchSize int) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Ingredient, error) {
	var ing Ingredient
	if err := r.db.WithContext(ctx).First(&ing, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ing, nil
}

// SearchByPrefix matches names starting with prefix, case-sensitively on
// both Postgres and SQLite (LIKE is case-insensitive on SQLite).
func (r *repository) SearchByPrefix(ctx context.Context, prefix string) ([]Ingredient, error) {
	q := r.db.WithContext(ctx).Model(&Ingredient{})
	if prefix != "" {
		q = q.Where("substr(name, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix)
	}

	var items []Ingredient
	if err := q.Order("name ASC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateInBatches(ctx context.Context, items []Ingredient, batchSize int) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, batchSize).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Ingredient{}).Count(&n).Error
	return n, err
}
