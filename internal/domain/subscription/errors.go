package subscription

import "foodgram/internal/pkg/apperror"

var (
	ErrSelfSubscription    = apperror.Validation("self-subscription")
	ErrAlreadySubscribed   = apperror.Conflict("already subscribed")
	ErrNotSubscribed       = apperror.NotFound("not subscribed")
	ErrInvalidRecipesLimit = apperror.Validation("recipes_limit must be a non-negative integer")
)
