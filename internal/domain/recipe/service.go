package recipe

import (
	"context"

	"foodgram/internal/domain/user"
)

// MembershipLookup reports which recipes a user has favorited or put in the
// shopping cart.
type MembershipLookup interface {
	FavoritedSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
	InCartSet(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

// ProfileSource renders recipe authors relative to the viewer.
type ProfileSource interface {
	Profiles(ctx context.Context, viewerID int64, users []user.User) ([]user.Profile, error)
}

// Metadata holds the scalar fields of a recipe.
type Metadata struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
}

// Patch holds the scalar fields an update may change; nil keeps the
// current value.
type Patch struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
}

type Service struct {
	repo     Repository
	profiles ProfileSource
	members  MembershipLookup
}

func NewService(repo Repository, profiles ProfileSource, members MembershipLookup) *Service {
	return &Service{repo: repo, profiles: profiles, members: members}
}

// Create validates and stores a recipe with its ingredient lines atomically.
func (s *Service) Create(ctx context.Context, authorID int64, meta Metadata, lines []Line) (*Recipe, error) {
	if err := ValidateCookingTime(meta.CookingTime); err != nil {
		return nil, err
	}

	rec := &Recipe{
		AuthorID:    authorID,
		Name:        meta.Name,
		Text:        meta.Text,
		Image:       meta.Image,
		CookingTime: meta.CookingTime,
	}
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := validateAgainstCatalog(ctx, tx, lines); err != nil {
			return err
		}
		if err := tx.Create(ctx, rec); err != nil {
			return err
		}
		return tx.ReplaceIngredients(ctx, rec.ID, toRows(rec.ID, lines))
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, rec.ID)
}

// Update replaces a recipe's ingredient lines and applies patch. Only the
// author may update, and lines must always be supplied in full.
func (s *Service) Update(ctx context.Context, recipeID, requesterID int64, patch Patch, lines []Line) (*Recipe, error) {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		rec, err := tx.GetByID(ctx, recipeID)
		if err != nil {
			return err
		}
		if rec.AuthorID != requesterID {
			return ErrNotAuthor
		}
		if lines == nil {
			return ErrIngredientsRequired.WithField("ingredients")
		}

		applyPatch(rec, patch)
		if err := ValidateCookingTime(rec.CookingTime); err != nil {
			return err
		}
		if err := validateAgainstCatalog(ctx, tx, lines); err != nil {
			return err
		}
		if err := tx.UpdateFields(ctx, rec); err != nil {
			return err
		}
		return tx.ReplaceIngredients(ctx, rec.ID, toRows(rec.ID, lines))
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, recipeID)
}

// Delete removes a recipe and everything referencing it. Only the author may
// delete.
func (s *Service) Delete(ctx context.Context, recipeID, requesterID int64) error {
	rec, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if rec.AuthorID != requesterID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, recipeID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Recipe, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter, offset, limit int) ([]Recipe, int64, error) {
	return s.repo.List(ctx, f, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// Details renders recipes for viewerID (0 for anonymous).
func (s *Service) Details(ctx context.Context, viewerID int64, recipes []Recipe) ([]Detail, error) {
	if len(recipes) == 0 {
		return []Detail{}, nil
	}

	ids := make([]int64, len(recipes))
	authors := make([]user.User, 0, len(recipes))
	authorIdx := make(map[int64]int, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
		if recipes[i].Author == nil {
			continue
		}
		if _, ok := authorIdx[recipes[i].AuthorID]; !ok {
			authorIdx[recipes[i].AuthorID] = len(authors)
			authors = append(authors, *recipes[i].Author)
		}
	}

	var profiles []user.Profile
	if s.profiles != nil {
		var err error
		if profiles, err = s.profiles.Profiles(ctx, viewerID, authors); err != nil {
			return nil, err
		}
	} else {
		profiles = make([]user.Profile, len(authors))
		for i := range authors {
			profiles[i] = user.ToProfile(&authors[i], false)
		}
	}

	favorited, inCart := map[int64]bool{}, map[int64]bool{}
	if viewerID != 0 && s.members != nil {
		var err error
		if favorited, err = s.members.FavoritedSet(ctx, viewerID, ids); err != nil {
			return nil, err
		}
		if inCart, err = s.members.InCartSet(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]Detail, len(recipes))
	for i := range recipes {
		var author user.Profile
		if idx, ok := authorIdx[recipes[i].AuthorID]; ok {
			author = profiles[idx]
		}
		out[i] = ToDetail(&recipes[i], author, favorited[recipes[i].ID], inCart[recipes[i].ID])
	}
	return out, nil
}

func validateAgainstCatalog(ctx context.Context, tx Repository, lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyIngredients.WithField("ingredients")
	}
	known, err := tx.KnownIngredientIDs(ctx, UniqueIngredientIDs(lines))
	if err != nil {
		return err
	}
	return ValidateLines(lines, known)
}

func applyPatch(rec *Recipe, p Patch) {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.Text != nil {
		rec.Text = *p.Text
	}
	if p.Image != nil {
		rec.Image = *p.Image
	}
	if p.CookingTime != nil {
		rec.CookingTime = *p.CookingTime
	}
}
