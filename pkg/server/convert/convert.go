// Package convert translates between the gorm models and the apiv1 wire messages.
package convert

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/review"
	api "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/wizard"
)

func BeersFromModel(beers []*model.Beer, ratings map[uuid.UUID]review.Rating) []*api.Beer {
	pbBeers := make([]*api.Beer, 0, len(beers))

	for _, beer := range beers {
		pbBeer := BeerFromModel(*beer)

		if ratings != nil {
			pbBeer.Rating = RatingFromSummary(beer.ID, ratings[beer.ID])
		}

		pbBeers = append(pbBeers, pbBeer)
	}

	return pbBeers
}

func BeerFromModel(beer model.Beer) *api.Beer {
	pbBeer := api.Beer{
		Name:        beer.Name,
		Brewery:     beer.Brewery,
		Style:       beer.Style,
		Abv:         beer.ABV,
		Color:       beer.Color,
		Flavor:      append([]string{}, beer.Flavor...),
		Description: beer.Description,
		Status:      string(beer.Status),
		CreatedAt:   beer.CreatedAt,
	}

	if beer.ID != uuid.Nil {
		pbBeer.Id = beer.ID.String()
	}

	if beer.IBU != nil {
		pbBeer.Ibu = pointy.Int64(*beer.IBU)
	}

	if beer.Image != nil {
		pbBeer.ImageUrl = pointy.String(*beer.Image)
	}

	if beer.Origin != nil {
		pbBeer.Origin = pointy.String(*beer.Origin)
	}

	return &pbBeer
}

// BeerToModel reads a wire beer. An empty id is left as uuid.Nil; a malformed one is an error.
func BeerToModel(pbBeer *api.Beer) (model.Beer, error) {
	beer := model.Beer{
		Name:        strings.TrimSpace(pbBeer.Name),
		Brewery:     strings.TrimSpace(pbBeer.Brewery),
		Style:       strings.TrimSpace(pbBeer.Style),
		ABV:         pbBeer.Abv,
		Color:       strings.TrimSpace(pbBeer.Color),
		Description: strings.TrimSpace(pbBeer.Description),
		Status:      model.BeerStatus(pbBeer.Status),
	}

	for _, flavor := range pbBeer.Flavor {
		if flavor = strings.TrimSpace(flavor); flavor != "" {
			beer.Flavor = append(beer.Flavor, flavor)
		}
	}

	if pbBeer.Id != "" {
		id, err := uuid.Parse(pbBeer.Id)
		if err != nil {
			return model.Beer{}, fmt.Errorf("beer id %q: %w", pbBeer.Id, err)
		}

		beer.ID = id
	}

	if pbBeer.Ibu != nil {
		beer.IBU = pointy.Int64(*pbBeer.Ibu)
	}

	if pbBeer.ImageUrl != nil && *pbBeer.ImageUrl != "" {
		beer.Image = pointy.String(*pbBeer.ImageUrl)
	}

	if pbBeer.Origin != nil && strings.TrimSpace(*pbBeer.Origin) != "" {
		beer.Origin = pointy.String(strings.TrimSpace(*pbBeer.Origin))
	}

	return beer, nil
}

func RatingFromSummary(beerID uuid.UUID, rating review.Rating) *api.Rating {
	pbRating := api.Rating{
		BeerId:    beerID.String(),
		HasRating: rating.HasRating(),
		Count:     int32(rating.Count), //nolint:gosec // review counts stay far below 2^31
	}

	if rating.HasRating() {
		pbRating.Average = pointy.Float64(rating.Average)
	}

	return &pbRating
}

func ReviewFromModel(review model.Review) *api.Review {
	return &api.Review{
		Id:        review.ID.String(),
		BeerId:    review.BeerID.String(),
		UserName:  review.UserName,
		Rating:    int32(review.Rating), //nolint:gosec // validated to 1-5
		Comment:   review.Comment,
		Approved:  review.Approved,
		CreatedAt: review.CreatedAt,
	}
}

func ReviewsFromModel(reviews []*model.Review) []*api.Review {
	pbReviews := make([]*api.Review, 0, len(reviews))

	for _, review := range reviews {
		pbReviews = append(pbReviews, ReviewFromModel(*review))
	}

	return pbReviews
}

func PendingReviewsFromModel(reviews []*model.PendingReview) []*api.PendingReview {
	pbReviews := make([]*api.PendingReview, 0, len(reviews))

	for _, pending := range reviews {
		pbReviews = append(pbReviews, &api.PendingReview{
			Review:       ReviewFromModel(pending.Review),
			BeerName:     pending.BeerName,
			BeerImageUrl: pending.BeerImage,
		})
	}

	return pbReviews
}

func FilterOptionFromModel(option model.FilterOption, uses int64) *api.FilterOption {
	return &api.FilterOption{
		Category:  option.Category,
		Id:        option.ID,
		Label:     option.Label,
		Icon:      option.Icon,
		IsDefault: option.IsDefault,
		Uses:      uses,
	}
}

func FilterOptionToModel(pbOption *api.FilterOption) model.FilterOption {
	return model.FilterOption{
		Category: pbOption.Category,
		ID:       pbOption.Id,
		Label:    pbOption.Label,
		Icon:     pbOption.Icon,
	}
}

func FilterCategory(category filter.Category, ranked []filter.RankedOption, total int64) *api.FilterCategory {
	pbCategory := api.FilterCategory{
		Category: category.String(),
		Title:    category.Title(),
		Options:  make([]*api.FilterOption, 0, len(ranked)),
		Total:    total,
	}

	for _, option := range ranked {
		pbCategory.Options = append(pbCategory.Options, FilterOptionFromModel(option.FilterOption, option.Uses))
	}

	return &pbCategory
}

func TurnFromWizard(turn *wizard.Turn) *api.WizardTurn {
	pbTurn := api.WizardTurn{
		SessionId: turn.SessionID,
		State:     turn.Step.State.String(),
		Question:  turn.Step.Question,
		Options:   make([]*api.WizardOption, 0, len(turn.Step.Options)),
		Done:      turn.Done(),
	}

	for _, option := range turn.Step.Options {
		pbTurn.Options = append(pbTurn.Options, &api.WizardOption{
			Id:    option.ID,
			Label: option.Label,
			Icon:  option.Icon,
			Uses:  option.Uses,
		})
	}

	if !turn.Selection.IsEmpty() {
		pbTurn.Filters = turn.Selection.ToMap()
	}

	return &pbTurn
}
