package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodgram/internal/pkg/apperror"
)

func TestValidateLines(t *testing.T) {
	known := map[int64]struct{}{1: {}, 2: {}, 3: {}}

	cases := []struct {
		name  string
		lines []Line
		want  error
	}{
		{name: "valid", lines: []Line{{1, 10}, {2, 32000}, {3, 1}}},
		{name: "nil", lines: nil, want: ErrEmptyIngredients},
		{name: "empty", lines: []Line{}, want: ErrEmptyIngredients},
		{name: "duplicate", lines: []Line{{1, 10}, {2, 5}, {1, 7}}, want: ErrDuplicateIngredient},
		{name: "unknown", lines: []Line{{1, 10}, {99, 5}}, want: ErrUnknownIngredient},
		{name: "zero amount", lines: []Line{{1, 0}}, want: ErrAmountOutOfRange},
		{name: "amount too large", lines: []Line{{1, 32001}}, want: ErrAmountOutOfRange},
		{name: "duplicate before unknown", lines: []Line{{99, 1}, {99, 1}}, want: ErrDuplicateIngredient},
		{name: "unknown before amount", lines: []Line{{1, 0}, {99, 1}}, want: ErrUnknownIngredient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLines(tc.lines, known)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestValidateCookingTime(t *testing.T) {
	assert.NoError(t, ValidateCookingTime(1))
	assert.NoError(t, ValidateCookingTime(32000))
	assert.ErrorIs(t, ValidateCookingTime(0), ErrCookingTimeOutOfRange)
	assert.ErrorIs(t, ValidateCookingTime(32001), ErrCookingTimeOutOfRange)
}

func TestUniqueIngredientIDs(t *testing.T) {
	ids := UniqueIngredientIDs([]Line{{3, 1}, {1, 1}, {3, 2}, {2, 1}})
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestToRows_KeepsOrder(t *testing.T) {
	rows := toRows(7, []Line{{5, 10}, {2, 20}})
	assert.Equal(t, []RecipeIngredient{
		{RecipeID: 7, IngredientID: 5, Amount: 10, Position: 0},
		{RecipeID: 7, IngredientID: 2, Amount: 20, Position: 1},
	}, rows)
}
