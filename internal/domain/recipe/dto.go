package recipe

import (
	"strings"

	"foodgram/internal/domain/user"
)

// LineInput is one element of the "ingredients" array of a write request.
// Ids and amounts are checked against the catalog by ValidateLines.
type LineInput struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// CreateRequest is the body of POST /recipes/.
type CreateRequest struct {
	Ingredients []LineInput `json:"ingredients"`
	Name        string      `json:"name" validate:"required,max=256"`
	Text        string      `json:"text" validate:"required"`
	Image       string      `json:"image" validate:"required,max=512"`
	CookingTime int         `json:"cooking_time"`
}

// UpdateRequest is the body of PATCH /recipes/{id}/. Omitted scalars keep
// their value; ingredients must always be sent.
type UpdateRequest struct {
	Ingredients []LineInput `json:"ingredients"`
	Name        *string     `json:"name" validate:"omitnil,min=1,max=256"`
	Text        *string     `json:"text" validate:"omitnil,min=1"`
	Image       *string     `json:"image" validate:"omitnil,min=1,max=512"`
	CookingTime *int        `json:"cooking_time"`
}

// normalize trims the fields whose surrounding whitespace is not content, so
// a blank name fails validation instead of being stored empty.
func (r *CreateRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Image = strings.TrimSpace(r.Image)
}

func (r *UpdateRequest) normalize() {
	r.Name = trimmed(r.Name)
	r.Image = trimmed(r.Image)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func toLines(in []LineInput) []Line {
	if in == nil {
		return nil
	}
	lines := make([]Line, len(in))
	for i, l := range in {
		lines[i] = Line{IngredientID: l.ID, Amount: l.Amount}
	}
	return lines
}

// LineView is an ingredient line resolved to catalog name and unit.
type LineView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// Detail is the full recipe representation.
type Detail struct {
	ID               int64        `json:"id"`
	Author           user.Profile `json:"author"`
	Name             string       `json:"name"`
	Image            string       `json:"image"`
	Text             string       `json:"text"`
	CookingTime      int          `json:"cooking_time"`
	Ingredients      []LineView   `json:"ingredients"`
	IsFavorited      bool         `json:"is_favorited"`
	IsInShoppingCart bool         `json:"is_in_shopping_cart"`
}

// Short is the compact representation used by cart, favorites and
// subscriptions.
type Short struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func ToDetail(r *Recipe, author user.Profile, favorited, inCart bool) Detail {
	lines := make([]LineView, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		view := LineView{ID: ri.IngredientID, Amount: ri.Amount}
		if ri.Ingredient != nil {
			view.Name = ri.Ingredient.Name
			view.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		lines = append(lines, view)
	}
	return Detail{
		ID:               r.ID,
		Author:           author,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		Ingredients:      lines,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
	}
}

func ToShort(r *Recipe) Short {
	return Short{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

func ToShorts(recipes []Recipe) []Short {
	out := make([]Short, len(recipes))
	for i := range recipes {
		out[i] = ToShort(&recipes[i])
	}
	return out
}
