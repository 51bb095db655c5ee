package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SubscriptionLookup answers which of authorIDs the viewer follows.
type SubscriptionLookup interface {
	SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error)
}

type Service struct {
	repo Repository
	subs SubscriptionLookup
}

func NewService(repo Repository, subs SubscriptionLookup) *Service {
	return &Service{repo: repo, subs: subs}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken.WithField("email")
	}

	taken, err = s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken.WithField("username")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate resolves an email/password pair to a user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := CheckPassword(password, u.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// SetAvatar replaces the user's avatar reference.
func (s *Service) SetAvatar(ctx context.Context, id int64, avatar string) error {
	avatar = strings.TrimSpace(avatar)
	if avatar == "" {
		return ErrAvatarRequired
	}
	return s.repo.UpdateAvatar(ctx, id, avatar)
}

func (s *Service) ClearAvatar(ctx context.Context, id int64) error {
	return s.repo.UpdateAvatar(ctx, id, "")
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]User, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

// Profiles renders users as seen by viewerID (0 for anonymous).
func (s *Service) Profiles(ctx context.Context, viewerID int64, users []User) ([]Profile, error) {
	subscribed := map[int64]bool{}
	if viewerID != 0 && s.subs != nil && len(users) > 0 {
		ids := make([]int64, len(users))
		for i := range users {
			ids[i] = users[i].ID
		}
		var err error
		if subscribed, err = s.subs.SubscribedTo(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]Profile, len(users))
	for i := range users {
		out[i] = ToProfile(&users[i], subscribed[users[i].ID])
	}
	return out, nil
}

// HashPassword hashes a plain password string
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plain password with a hash
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
