package recipe

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodgram/internal/database"
	"foodgram/internal/domain/ingredient"
)

// ListFilter narrows recipe lists. Zero values disable a filter.
type ListFilter struct {
	AuthorID    int64
	FavoritedBy int64
	InCartOf    int64
}

type Repository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction; any error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	Create(ctx context.Context, r *Recipe) error
	UpdateFields(ctx context.Context, r *Recipe) error
	ReplaceIngredients(ctx context.Context, recipeID int64, rows []RecipeIngredient) error
	KnownIngredientIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)

	GetByID(ctx context.Context, id int64) (*Recipe, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f ListFilter, offset, limit int) ([]Recipe, int64, error)
	RecentByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)

	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, rec *Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
}

func (r *repository) UpdateFields(ctx context.Context, rec *Recipe) error {
	return r.db.WithContext(ctx).Model(rec).Omit(clause.Associations).Updates(map[string]any{
		"name":         rec.Name,
		"text":         rec.Text,
		"image":        rec.Image,
		"cooking_time": rec.CookingTime,
	}).Error
}

// ReplaceIngredients swaps the full set of lines of a recipe. A storage-level
// duplicate is reported as ErrDuplicateIngredient.
func (r *repository) ReplaceIngredients(ctx context.Context, recipeID int64, rows []RecipeIngredient) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.Omit(clause.Associations).Create(&rows).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateIngredient.Wrap(err)
		}
		return err
	}
	return nil
}

func (r *repository) KnownIngredientIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	known := make(map[int64]struct{}, len(ids))
	if len(ids) == 0 {
		return known, nil
	}
	var found []int64
	err := r.db.WithContext(ctx).
		Model(&ingredient.Ingredient{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		known[id] = struct{}{}
	}
	return known, nil
}

func (r *repository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Preload("Ingredients.Ingredient")
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	if err := r.preloaded(ctx).First(&rec, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) filtered(ctx context.Context, f ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Recipe{})
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.FavoritedBy != 0 {
		q = q.Where("id IN (?)", r.db.Table(FavoriteEntriesTable).Select("recipe_id").Where("user_id = ?", f.FavoritedBy))
	}
	if f.InCartOf != 0 {
		q = q.Where("id IN (?)", r.db.Table(CartEntriesTable).Select("recipe_id").Where("user_id = ?", f.InCartOf))
	}
	return q
}

// List returns recipes newest first.
func (r *repository) List(ctx context.Context, f ListFilter, offset, limit int) ([]Recipe, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	err := r.filtered(ctx, f).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []Recipe{}, total, nil
	}

	var recipes []Recipe
	err = r.preloaded(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// RecentByAuthor returns an author's newest recipes. A negative limit returns
// all of them.
func (r *repository) RecentByAuthor(ctx context.Context, authorID int64, limit int) ([]Recipe, error) {
	if limit == 0 {
		return []Recipe{}, nil
	}
	q := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Order("id DESC")
	if limit >= 0 {
		q = q.Limit(limit)
	}
	var recipes []Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *repository) CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		AuthorID int64
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.AuthorID] = row.Total
	}
	return counts, nil
}

// Delete removes a recipe with its lines and memberships in one transaction.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeIngredient{}).Error; err != nil {
			return err
		}
		for _, table := range []string{CartEntriesTable, FavoriteEntriesTable} {
			if !tx.Migrator().HasTable(table) {
				continue
			}
			if err := tx.Exec("DELETE FROM "+table+" WHERE recipe_id = ?", id).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecipeNotFound
		}
		return nil
	})
}
