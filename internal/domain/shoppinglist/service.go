package shoppinglist

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Entries aggregates the ingredient lines of every recipe in the user's cart.
func (s *Service) Entries(ctx context.Context, userID int64) ([]Entry, error) {
	items, err := s.repo.CartItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Aggregate(items), nil
}

// Text renders the user's shopping list; an empty cart yields "".
func (s *Service) Text(ctx context.Context, userID int64) (string, error) {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return "", err
	}
	return Render(entries), nil
}
