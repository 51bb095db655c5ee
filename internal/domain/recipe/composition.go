package recipe

const (
	MinAmount      = 1
	MaxAmount      = 32000
	MinCookingTime = 1
	MaxCookingTime = 32000
)

// Line is a requested ingredient line before it is persisted.
type Line struct {
	IngredientID int64
	Amount       int
}

// UniqueIngredientIDs returns the ingredient ids of lines in first-seen order.
func UniqueIngredientIDs(lines []Line) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.IngredientID]; ok {
			continue
		}
		seen[l.IngredientID] = struct{}{}
		ids = append(ids, l.IngredientID)
	}
	return ids
}

// ValidateLines checks a full replacement set of lines against the catalog
// ids in known. Checks run in a fixed order: empty, duplicate, unknown,
// amount.
func ValidateLines(lines []Line, known map[int64]struct{}) error {
	if len(lines) == 0 {
		return ErrEmptyIngredients.WithField("ingredients")
	}

	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.IngredientID]; dup {
			return ErrDuplicateIngredient.WithField("ingredients")
		}
		seen[l.IngredientID] = struct{}{}
	}

	for _, l := range lines {
		if _, ok := known[l.IngredientID]; !ok {
			return ErrUnknownIngredient.WithField("ingredients")
		}
	}

	for _, l := range lines {
		if l.Amount < MinAmount || l.Amount > MaxAmount {
			return ErrAmountOutOfRange.WithField("amount")
		}
	}
	return nil
}

func ValidateCookingTime(minutes int) error {
	if minutes < MinCookingTime || minutes > MaxCookingTime {
		return ErrCookingTimeOutOfRange.WithField("cooking_time")
	}
	return nil
}

// toRows turns validated lines into rows for recipeID, keeping input order.
func toRows(recipeID int64, lines []Line) []RecipeIngredient {
	rows := make([]RecipeIngredient, len(lines))
	for i, l := range lines {
		rows[i] = RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: l.IngredientID,
			Amount:       l.Amount,
			Position:     i,
		}
	}
	return rows
}
