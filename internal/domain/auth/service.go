package auth

import (
	"context"
	"time"

	"foodgram/internal/domain/user"
	jwtsvc "foodgram/internal/pkg/jwt"
)

// Authenticator resolves credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
}

type Service struct {
	users Authenticator
	jwt   *jwtsvc.Service
}

func NewService(users Authenticator, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, err := s.jwt.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AuthToken: token,
		ExpiresIn: int64(s.jwt.TTL() / time.Second),
	}, nil
}
