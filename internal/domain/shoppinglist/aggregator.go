package shoppinglist

import (
	"sort"
	"strconv"
	"strings"
)

// Item is one ingredient line reachable from a user's cart.
type Item struct {
	RecipeID     int64
	IngredientID int64
	Name         string
	Unit         string
	Amount       int64
}

// Entry is one line of the report.
type Entry struct {
	Label string
	Total int64
}

func Label(name, unit string) string {
	return name + " (" + unit + ")"
}

type lineKey struct {
	recipeID     int64
	ingredientID int64
}

// Aggregate merges items into report entries in a single pass. Items are
// grouped by label, so distinct catalog rows with the same name and unit
// merge. A recipe line seen twice is counted once. Entries are sorted by
// label in byte order.
func Aggregate(items []Item) []Entry {
	seen := make(map[lineKey]struct{}, len(items))
	totals := make(map[string]int64)
	for _, it := range items {
		k := lineKey{recipeID: it.RecipeID, ingredientID: it.IngredientID}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		totals[Label(it.Name, it.Unit)] += it.Amount
	}

	entries := make([]Entry, 0, len(totals))
	for label, total := range totals {
		entries = append(entries, Entry{Label: label, Total: total})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
	return entries
}

// Render formats entries as "* label - total" lines joined by newlines. No
// entries render as the empty string.
func Render(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = "* " + e.Label + " - " + strconv.FormatInt(e.Total, 10)
	}
	return strings.Join(lines, "\n")
}
