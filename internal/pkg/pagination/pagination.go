// Package pagination implements page-number pagination (page, limit).
package pagination

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// FromRequest reads ?page= and ?limit=. Missing or malformed values fall back
// to page 1 and DefaultLimit; limit is capped at MaxLimit.
func FromRequest(c *gin.Context) Params {
	p := Params{Page: 1, Limit: DefaultLimit}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Page is the list envelope returned by paginated endpoints.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPage builds the envelope; next/previous keep the request's other query
// parameters and only swap the page number.
func NewPage[T any](c *gin.Context, p Params, total int64, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	page := Page[T]{Count: total, Results: results}
	if int64(p.Offset()+len(results)) < total {
		next := pageURL(c.Request.URL, p.Page+1)
		page.Next = &next
	}
	if p.Page > 1 {
		prev := pageURL(c.Request.URL, p.Page-1)
		page.Previous = &prev
	}
	return page
}

func pageURL(u *url.URL, page int) string {
	q := u.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	out := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return out.String()
}
