package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/seed"
)

func TestLoad_EveryCategoryHasDefaults(t *testing.T) {
	defaults, err := seed.Load()
	require.NoError(t, err)

	for _, category := range filter.Categories() {
		options := defaults.FilterOptions(category)
		assert.NotEmpty(t, options, category.String())

		for _, option := range options {
			assert.Equal(t, category.String(), option.Category)
			assert.True(t, option.IsDefault)
			assert.NotEmpty(t, option.ID)
		}
	}
}

func TestLoad_BucketOptionsUseBucketIDs(t *testing.T) {
	defaults, err := seed.Load()
	require.NoError(t, err)

	ids := func(category filter.Category) []string {
		var result []string
		for _, option := range defaults.FilterOptions(category) {
			result = append(result, option.ID)
		}

		return result
	}

	assert.Equal(t, []string{string(filter.Light), string(filter.Medium), string(filter.Strong)}, ids(filter.Strength))
	assert.Equal(t, []string{string(filter.Low), string(filter.Medium), string(filter.High)}, ids(filter.Bitterness))
}

func TestLoad_SampleBeersAreComplete(t *testing.T) {
	defaults, err := seed.Load()
	require.NoError(t, err)

	beers := defaults.CatalogBeers()
	require.NotEmpty(t, beers)

	for _, beer := range beers {
		assert.NotEmpty(t, beer.Name)
		assert.NotEmpty(t, beer.Flavor, beer.Name)
		assert.True(t, beer.Status.Valid(), beer.Name)
	}
}

func TestParse_RejectsUnknownCategory(t *testing.T) {
	_, err := seed.Parse([]byte("filters:\n  price:\n    - { id: cheap, label: Barata, icon: x }\n"))

	require.ErrorIs(t, err, filter.ErrUnknownCategory)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := seed.Parse([]byte("filters: [unclosed"))

	require.Error(t, err)
}
