// Package seed holds the taxonomy and sample catalog a fresh installation starts with.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/model"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Option struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

type Beer struct {
	Name        string   `yaml:"name"`
	Brewery     string   `yaml:"brewery"`
	Style       string   `yaml:"style"`
	ABV         float64  `yaml:"abv"`
	IBU         *int64   `yaml:"ibu"`
	Color       string   `yaml:"color"`
	Flavor      []string `yaml:"flavor"`
	Description string   `yaml:"description"`
	Origin      *string  `yaml:"origin"`
}

type Defaults struct {
	Filters map[string][]Option `yaml:"filters"`
	Beers   []Beer              `yaml:"beers"`
}

func Load() (*Defaults, error) {
	return Parse(defaultsYAML)
}

func Parse(data []byte) (*Defaults, error) {
	defaults := &Defaults{}
	if err := yaml.Unmarshal(data, defaults); err != nil {
		return nil, fmt.Errorf("parsing defaults: %w", err)
	}

	for name := range defaults.Filters {
		if _, err := filter.ParseCategory(name); err != nil {
			return nil, err
		}
	}

	return defaults, nil
}

// FilterOptions returns the default options of a category, flagged as defaults.
func (d *Defaults) FilterOptions(category filter.Category) []model.FilterOption {
	options := make([]model.FilterOption, 0, len(d.Filters[category.String()]))

	for _, option := range d.Filters[category.String()] {
		options = append(options, model.FilterOption{
			Category:  category.String(),
			ID:        option.ID,
			Label:     option.Label,
			Icon:      option.Icon,
			IsDefault: true,
		})
	}

	return options
}

// AllFilterOptions returns the default options of every category in display order.
func (d *Defaults) AllFilterOptions() []model.FilterOption {
	var options []model.FilterOption

	for _, category := range filter.Categories() {
		options = append(options, d.FilterOptions(category)...)
	}

	return options
}

// CatalogBeers returns the sample beers, all available.
func (d *Defaults) CatalogBeers() []model.Beer {
	beers := make([]model.Beer, 0, len(d.Beers))

	for _, beer := range d.Beers {
		beers = append(beers, model.Beer{
			Name:        beer.Name,
			Brewery:     beer.Brewery,
			Style:       beer.Style,
			ABV:         beer.ABV,
			IBU:         beer.IBU,
			Color:       beer.Color,
			Flavor:      beer.Flavor,
			Description: beer.Description,
			Origin:      beer.Origin,
			Status:      model.StatusAvailable,
		})
	}

	return beers
}
