package subscription

import (
	"context"
	"strconv"

	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
)

// NoLimit disables the recipes preview limit.
const NoLimit = -1

type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// RecipeSource supplies the recipe preview of each followee.
type RecipeSource interface {
	RecentByAuthor(ctx context.Context, authorID int64, limit int) ([]recipe.Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)
}

type Service struct {
	repo    Repository
	users   UserFinder
	recipes RecipeSource
}

func NewService(repo Repository, users UserFinder, recipes RecipeSource) *Service {
	return &Service{repo: repo, users: users, recipes: recipes}
}

// ParseRecipesLimit reads the recipes_limit query value. Empty means no
// limit; anything but a non-negative integer is rejected.
func ParseRecipesLimit(raw string) (int, error) {
	if raw == "" {
		return NoLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidRecipesLimit.WithField("recipes_limit")
	}
	return n, nil
}

// Subscribe creates the follower → followee edge.
func (s *Service) Subscribe(ctx context.Context, followerID, followeeID int64, recipesLimit int) (*Followee, error) {
	if followerID == followeeID {
		return nil, ErrSelfSubscription
	}
	followee, err := s.users.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}
	if err := s.repo.Create(ctx, followerID, followeeID); err != nil {
		return nil, err
	}

	out, err := s.project(ctx, []user.User{*followee}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// Unsubscribe removes the edge; ErrNotSubscribed when there is none.
func (s *Service) Unsubscribe(ctx context.Context, followerID, followeeID int64) error {
	if _, err := s.users.GetByID(ctx, followeeID); err != nil {
		return err
	}
	removed, err := s.repo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotSubscribed
	}
	return nil
}

// ListFollowing pages through the users followerID follows.
func (s *Service) ListFollowing(ctx context.Context, followerID int64, recipesLimit, offset, limit int) ([]Followee, int64, error) {
	users, total, err := s.repo.Following(ctx, followerID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.project(ctx, users, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// SubscribedTo implements user.SubscriptionLookup.
func (s *Service) SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error) {
	return s.repo.SubscribedTo(ctx, followerID, authorIDs)
}

func (s *Service) project(ctx context.Context, users []user.User, recipesLimit int) ([]Followee, error) {
	ids := make([]int64, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	counts, err := s.recipes.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]Followee, len(users))
	for i := range users {
		recipes, err := s.recipes.RecentByAuthor(ctx, users[i].ID, recipesLimit)
		if err != nil {
			return nil, err
		}
		out[i] = Followee{
			Profile:      user.ToProfile(&users[i], true),
			Recipes:      recipe.ToShorts(recipes),
			RecipesCount: counts[users[i].ID],
		}
	}
	return out, nil
}
