package filter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/model"
)

func TestParseCategory(t *testing.T) {
	for _, category := range filter.Categories() {
		parsed, err := filter.ParseCategory(category.String())
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	_, err := filter.ParseCategory("price")
	require.ErrorIs(t, err, filter.ErrUnknownCategory)
	assert.Len(t, filter.Categories(), 6)
}

func TestSelection_Toggle(t *testing.T) {
	var selection filter.Selection

	selection.Toggle(filter.Flavor, "Cítrico")
	selection.Toggle(filter.Flavor, "Tropical")
	selection.Toggle(filter.Flavor, "Cítrico")

	assert.Equal(t, []string{"Tropical"}, selection.Get(filter.Flavor))
	assert.Equal(t, []filter.Category{filter.Flavor}, selection.Populated())
	assert.False(t, selection.IsEmpty())

	selection.Toggle(filter.Flavor, "Tropical")
	assert.True(t, selection.IsEmpty())
}

func TestSelection_MapRoundTrip(t *testing.T) {
	selection, err := filter.FromMap(map[string][]string{
		"style":    {"IPA"},
		"strength": {"strong", "medium"},
	})
	require.NoError(t, err)

	var expected filter.Selection
	expected.Set(filter.Style, "IPA")
	expected.Set(filter.Strength, "strong", "medium")

	if diff := cmp.Diff(expected, selection); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}

	values := selection.ToMap()
	assert.Len(t, values, 6)
	assert.Empty(t, values["origin"])

	_, err = filter.FromMap(map[string][]string{"price": {"cheap"}})
	require.ErrorIs(t, err, filter.ErrUnknownCategory)
}

func TestSortByUsage(t *testing.T) {
	options := []model.FilterOption{
		{ID: "IPA", Label: "IPA"},
		{ID: "Stout", Label: "Stout"},
		{ID: "Lager", Label: "Lager"},
		{ID: "Porter", Label: "Porter"},
	}
	counts := map[string]int64{
		"style:Lager":  4,
		"style:Porter": 4,
		"style:IPA":    1,
		"flavor:Stout": 9,
	}

	ranked := filter.SortByUsage(filter.Style, options, counts)

	ids := make([]string, 0, len(ranked))
	for _, option := range ranked {
		ids = append(ids, option.ID)
	}

	assert.Equal(t, []string{"Lager", "Porter", "IPA", "Stout"}, ids)
	assert.Equal(t, int64(4), ranked[0].Uses)
	assert.Equal(t, int64(0), ranked[3].Uses)
	assert.Len(t, filter.Top(ranked, 2), 2)
	assert.Len(t, filter.Top(ranked, 0), 4)
}
