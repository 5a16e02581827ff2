package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/review"
	api "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
	"droscher.com/BeerFinder/pkg/server/convert"
)

type ratingRepository interface {
	GetApprovedRatings(ctx context.Context, beerIDs []uuid.UUID) ([]model.BeerRating, error)
}

type CatalogServer struct {
	apiv1connect.UnimplementedCatalogServiceHandler
	catalog repository.CatalogRepository
	ratings ratingRepository
	logger  *zap.Logger
}

func NewCatalogServer(catalog repository.CatalogRepository, ratings ratingRepository, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{catalog: catalog, ratings: ratings, logger: logger}
}

func (c *CatalogServer) ListBeers(ctx context.Context, request *connect.Request[api.ListBeersRequest]) (*connect.Response[api.ListBeersResponse], error) {
	status, err := parseStatus(request.Msg.Status)
	if err != nil {
		return nil, toConnectError(err)
	}

	beers, err := c.catalog.ListBeers(ctx, status)
	if err != nil {
		c.logger.Error("error listing beers", zap.Error(err))

		return nil, toConnectError(err)
	}

	response := api.ListBeersResponse{Beers: convert.BeersFromModel(beers, ratingsFor(ctx, c.ratings, c.logger, beers))}

	return connect.NewResponse(&response), nil
}

func (c *CatalogServer) GetBeer(ctx context.Context, request *connect.Request[api.GetBeerRequest]) (*connect.Response[api.GetBeerResponse], error) {
	beerID, err := parseID("beer", request.Msg.Id)
	if err != nil {
		return nil, err
	}

	beer, err := c.catalog.GetBeer(ctx, beerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	pbBeer := convert.BeerFromModel(*beer)

	if ratings := ratingsFor(ctx, c.ratings, c.logger, []*model.Beer{beer}); ratings != nil {
		pbBeer.Rating = convert.RatingFromSummary(beer.ID, ratings[beer.ID])
	}

	return connect.NewResponse(&api.GetBeerResponse{Beer: pbBeer}), nil
}

// SearchBeers applies the filter predicate to the catalog. It does not count as usage of the options.
func (c *CatalogServer) SearchBeers(ctx context.Context, request *connect.Request[api.SearchBeersRequest]) (*connect.Response[api.SearchBeersResponse], error) {
	selection, err := filter.FromMap(request.Msg.Filters)
	if err != nil {
		return nil, toConnectError(err)
	}

	status, err := parseStatus(request.Msg.Status)
	if err != nil {
		return nil, toConnectError(err)
	}

	beers, err := c.catalog.ListBeers(ctx, status)
	if err != nil {
		c.logger.Error("error listing beers", zap.Error(err))

		return nil, toConnectError(err)
	}

	matches := filter.Apply(beers, selection)

	c.logger.Debug("searched beers", zap.Stringers("categories", selection.Populated()), zap.Int("matches", len(matches)))

	response := api.SearchBeersResponse{Beers: convert.BeersFromModel(matches, ratingsFor(ctx, c.ratings, c.logger, matches))}

	return connect.NewResponse(&response), nil
}

// ratingsFor summarises the approved reviews of the beers. It returns nil when the ratings cannot be read,
// and the beers are then sent without one.
func ratingsFor(ctx context.Context, repo ratingRepository, logger *zap.Logger, beers []*model.Beer) map[uuid.UUID]review.Rating {
	if len(beers) == 0 {
		return nil
	}

	beerIDs := make([]uuid.UUID, 0, len(beers))
	for _, beer := range beers {
		beerIDs = append(beerIDs, beer.ID)
	}

	ratings, err := repo.GetApprovedRatings(ctx, beerIDs)
	if err != nil {
		logger.Error("error loading ratings", zap.Error(err))

		return nil
	}

	return review.SummarizeByBeer(ratings)
}

func parseStatus(value *string) (*model.BeerStatus, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	status := model.BeerStatus(*value)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *value)
	}

	return &status, nil
}
