package user

import "foodgram/internal/pkg/apperror"

var (
	ErrUserNotFound       = apperror.NotFound("user not found")
	ErrEmailTaken         = apperror.Conflict("email already registered")
	ErrUsernameTaken      = apperror.Conflict("username already taken")
	ErrInvalidCredentials = apperror.Validation("invalid credentials")
	ErrAvatarRequired     = apperror.Validation("avatar is required").WithField("avatar")
)
