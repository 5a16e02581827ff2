package filter

import (
	"slices"

	"droscher.com/BeerFinder/pkg/model"
)

// UsageKey is the usage-counter key of an option. Ids alone are ambiguous: "medium" is both a strength
// and a bitterness bucket.
func UsageKey(category Category, id string) string {
	return category.String() + ":" + id
}

type RankedOption struct {
	model.FilterOption
	Uses int64
}

// SortByUsage orders a category's options by descending usage, keeping the given order between ties.
func SortByUsage(category Category, options []model.FilterOption, counts map[string]int64) []RankedOption {
	ranked := make([]RankedOption, 0, len(options))

	for _, option := range options {
		ranked = append(ranked, RankedOption{FilterOption: option, Uses: counts[UsageKey(category, option.ID)]})
	}

	slices.SortStableFunc(ranked, func(a, b RankedOption) int {
		switch {
		case a.Uses > b.Uses:
			return -1
		case a.Uses < b.Uses:
			return 1
		default:
			return 0
		}
	})

	return ranked
}

// Top keeps at most limit options; a non-positive limit keeps them all.
func Top(ranked []RankedOption, limit int) []RankedOption {
	if limit <= 0 || len(ranked) <= limit {
		return ranked
	}

	return ranked[:limit]
}
