package recipe

import "foodgram/internal/pkg/apperror"

var (
	ErrEmptyIngredients      = apperror.Validation("empty ingredients")
	ErrDuplicateIngredient   = apperror.Validation("duplicate ingredient")
	ErrUnknownIngredient     = apperror.Validation("unknown ingredient")
	ErrAmountOutOfRange      = apperror.Validation("amount out of range")
	ErrCookingTimeOutOfRange = apperror.Validation("cooking_time out of range")
	ErrIngredientsRequired   = apperror.Validation("ingredients required")
	ErrNotAuthor             = apperror.Authorization("only the author can modify this recipe")
	ErrRecipeNotFound        = apperror.NotFound("recipe not found")
)
