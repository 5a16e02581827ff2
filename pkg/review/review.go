// Package review validates visitor reviews and aggregates approved ratings.
package review

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"droscher.com/BeerFinder/pkg/model"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidReview = errors.New("invalid review")

// Validate trims the free-text fields in place and rejects a review missing its author, comment or rating.
func Validate(review *model.Review) error {
	review.UserName = strings.TrimSpace(review.UserName)
	review.Comment = strings.TrimSpace(review.Comment)

	switch {
	case review.BeerID == uuid.Nil:
		return fmt.Errorf("%w: beer is required", ErrInvalidReview)
	case review.UserName == "":
		return fmt.Errorf("%w: name is required", ErrInvalidReview)
	case review.Comment == "":
		return fmt.Errorf("%w: comment is required", ErrInvalidReview)
	case review.Rating < MinRating || review.Rating > MaxRating:
		return fmt.Errorf("%w: rating must be between %d and %d, got %d", ErrInvalidReview, MinRating, MaxRating, review.Rating)
	}

	return nil
}

// Rating summarises a beer's approved reviews. A zero Count means the beer has no rating yet, whatever
// Average holds.
type Rating struct {
	Average float64
	Count   int
}

func (r Rating) HasRating() bool {
	return r.Count > 0
}

// Summarize averages the ratings, rounded to one decimal.
func Summarize(ratings []int) Rating {
	if len(ratings) == 0 {
		return Rating{}
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
	}

	average := float64(sum) / float64(len(ratings))

	return Rating{Average: math.Round(average*10) / 10, Count: len(ratings)}
}

// SummarizeByBeer groups approved ratings by beer. Beers without ratings are absent from the result.
func SummarizeByBeer(ratings []model.BeerRating) map[uuid.UUID]Rating {
	grouped := make(map[uuid.UUID][]int)
	for _, rating := range ratings {
		grouped[rating.BeerID] = append(grouped[rating.BeerID], rating.Rating)
	}

	summaries := make(map[uuid.UUID]Rating, len(grouped))
	for beerID, values := range grouped {
		summaries[beerID] = Summarize(values)
	}

	return summaries
}
