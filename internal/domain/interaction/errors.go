package interaction

import "foodgram/internal/pkg/apperror"

var (
	ErrAlreadyPresent = apperror.Conflict("already present")
	ErrNotInSet       = apperror.NotFound("not in set")
)
