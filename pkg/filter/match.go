package filter

import (
	"slices"

	"droscher.com/BeerFinder/pkg/model"
)

type rule func(beer *model.Beer, selected []string) bool

var rules = [...]rule{
	Style:      matchStyle,
	Color:      matchColor,
	Flavor:     matchFlavor,
	Strength:   matchStrength,
	Bitterness: matchBitterness,
	Origin:     matchOrigin,
}

// fails to compile when a category is added without a rule after it.
var _ = [1]struct{}{}[len(rules)-int(categoryCount)]

// Match reports whether the beer satisfies every category that has a selection. Within a category any one
// selected option is enough.
func Match(beer *model.Beer, selection Selection) bool {
	for category, selected := range selection {
		if len(selected) == 0 {
			continue
		}

		if !rules[category](beer, selected) {
			return false
		}
	}

	return true
}

// Apply returns the beers matching the selection, in their original order.
func Apply(beers []*model.Beer, selection Selection) []*model.Beer {
	matches := make([]*model.Beer, 0, len(beers))

	for _, beer := range beers {
		if Match(beer, selection) {
			matches = append(matches, beer)
		}
	}

	return matches
}

func matchStyle(beer *model.Beer, selected []string) bool {
	return slices.Contains(selected, beer.Style)
}

func matchColor(beer *model.Beer, selected []string) bool {
	return slices.Contains(selected, beer.Color)
}

func matchFlavor(beer *model.Beer, selected []string) bool {
	return slices.ContainsFunc(beer.Flavor, func(flavor string) bool {
		return slices.Contains(selected, flavor)
	})
}

func matchStrength(beer *model.Beer, selected []string) bool {
	return slices.Contains(selected, string(StrengthOf(beer.ABV)))
}

func matchBitterness(beer *model.Beer, selected []string) bool {
	return slices.Contains(selected, string(BitternessOf(beer.IBU)))
}

// an unknown origin is never excluded.
func matchOrigin(beer *model.Beer, selected []string) bool {
	if beer.Origin == nil || *beer.Origin == "" {
		return true
	}

	return slices.Contains(selected, *beer.Origin)
}
