package interaction

import (
	"context"

	"foodgram/internal/domain/recipe"
)

// RecipeFinder resolves the recipe a membership points at.
type RecipeFinder interface {
	GetByID(ctx context.Context, id int64) (*recipe.Recipe, error)
}

type Service struct {
	repo    Repository
	recipes RecipeFinder
}

func NewService(repo Repository, recipes RecipeFinder) *Service {
	return &Service{repo: repo, recipes: recipes}
}

// Add puts a recipe into one of the user's sets. A repeated add fails with
// ErrAlreadyPresent.
func (s *Service) Add(ctx context.Context, set Set, userID, recipeID int64) (*recipe.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	present, err := s.repo.Contains(ctx, set, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if present {
		return nil, ErrAlreadyPresent
	}
	if err := s.repo.Add(ctx, set, userID, recipeID); err != nil {
		return nil, err
	}
	return rec, nil
}

// Remove takes a recipe out of one of the user's sets. It fails with
// ErrNotInSet when the recipe exists but is not a member.
func (s *Service) Remove(ctx context.Context, set Set, userID, recipeID int64) error {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}
	removed, err := s.repo.Remove(ctx, set, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInSet
	}
	return nil
}

func (s *Service) AddToCart(ctx context.Context, userID, recipeID int64) (*recipe.Recipe, error) {
	return s.Add(ctx, Cart, userID, recipeID)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, recipeID int64) error {
	return s.Remove(ctx, Cart, userID, recipeID)
}

func (s *Service) AddToFavorites(ctx context.Context, userID, recipeID int64) (*recipe.Recipe, error) {
	return s.Add(ctx, Favorites, userID, recipeID)
}

func (s *Service) RemoveFromFavorites(ctx context.Context, userID, recipeID int64) error {
	return s.Remove(ctx, Favorites, userID, recipeID)
}

func (s *Service) FavoritedSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	return s.repo.Members(ctx, Favorites, userID, recipeIDs)
}

func (s *Service) InCartSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	return s.repo.Members(ctx, Cart, userID, recipeIDs)
}
