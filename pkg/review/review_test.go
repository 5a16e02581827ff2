package review_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/review"
)

func validReview() model.Review {
	return model.Review{
		BeerID:   uuid.New(),
		UserName: "  Ana ",
		Rating:   4,
		Comment:  " Muy refrescante\n",
	}
}

func TestValidate_AcceptsAndTrims(t *testing.T) {
	candidate := validReview()

	require.NoError(t, review.Validate(&candidate))
	assert.Equal(t, "Ana", candidate.UserName)
	assert.Equal(t, "Muy refrescante", candidate.Comment)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*model.Review){
		"missing beer":    func(r *model.Review) { r.BeerID = uuid.Nil },
		"blank name":      func(r *model.Review) { r.UserName = "   " },
		"blank comment":   func(r *model.Review) { r.Comment = "" },
		"zero rating":     func(r *model.Review) { r.Rating = 0 },
		"rating too high": func(r *model.Review) { r.Rating = 6 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			candidate := validReview()
			mutate(&candidate)

			assert.ErrorIs(t, review.Validate(&candidate), review.ErrInvalidReview)
		})
	}
}

func TestSummarize_NoRatings(t *testing.T) {
	rating := review.Summarize(nil)

	assert.False(t, rating.HasRating())
	assert.Zero(t, rating.Count)
}

func TestSummarize_RoundsToOneDecimal(t *testing.T) {
	rating := review.Summarize([]int{5, 4, 4})

	assert.True(t, rating.HasRating())
	assert.Equal(t, 3, rating.Count)
	assert.InDelta(t, 4.3, rating.Average, 0.0001)

	assert.InDelta(t, 1.0, review.Summarize([]int{1}).Average, 0.0001)
}

func TestSummarizeByBeer(t *testing.T) {
	ipa, stout := uuid.New(), uuid.New()

	summaries := review.SummarizeByBeer([]model.BeerRating{
		{BeerID: ipa, Rating: 5},
		{BeerID: stout, Rating: 2},
		{BeerID: ipa, Rating: 4},
	})

	require.Len(t, summaries, 2)
	assert.Equal(t, review.Rating{Average: 4.5, Count: 2}, summaries[ipa])
	assert.Equal(t, review.Rating{Average: 2, Count: 1}, summaries[stout])
	assert.False(t, summaries[uuid.New()].HasRating())
}
