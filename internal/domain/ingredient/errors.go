package ingredient

import "foodgram/internal/pkg/apperror"

var ErrIngredientNotFound = apperror.NotFound("ingredient not found")
