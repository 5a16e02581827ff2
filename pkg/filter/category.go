// Package filter holds the catalog's filter taxonomy categories and the predicate deciding whether a beer
// satisfies a user's selection.
package filter

import (
	"errors"
	"fmt"
)

// Category is one of the fixed facets beers are filtered by.
type Category uint8

const (
	Style Category = iota
	Color
	Flavor
	Strength
	Bitterness
	Origin

	categoryCount
)

var ErrUnknownCategory = errors.New("unknown filter category")

var categoryNames = [categoryCount]string{
	Style:      "style",
	Color:      "color",
	Flavor:     "flavor",
	Strength:   "strength",
	Bitterness: "bitterness",
	Origin:     "origin",
}

var categoryTitles = [categoryCount]string{
	Style:      "Estilo",
	Color:      "Color",
	Flavor:     "Sabor",
	Strength:   "Intensidad",
	Bitterness: "Amargor",
	Origin:     "Origen",
}

// Categories returns every category in display order.
func Categories() []Category {
	categories := make([]Category, 0, categoryCount)
	for category := Style; category < categoryCount; category++ {
		categories = append(categories, category)
	}

	return categories
}

func ParseCategory(name string) (Category, error) {
	for category, categoryName := range categoryNames {
		if categoryName == name {
			return Category(category), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) Valid() bool {
	return c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", c)
	}

	return categoryNames[c]
}

// Title is the heading shown above the category's options.
func (c Category) Title() string {
	if !c.Valid() {
		return c.String()
	}

	return categoryTitles[c]
}
