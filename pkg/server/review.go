package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/review"
	api "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
	"droscher.com/BeerFinder/pkg/server/convert"
)

type ReviewServer struct {
	apiv1connect.UnimplementedReviewServiceHandler
	reviews repository.ReviewRepository
	logger  *zap.Logger
}

func NewReviewServer(reviews repository.ReviewRepository, logger *zap.Logger) *ReviewServer {
	return &ReviewServer{reviews: reviews, logger: logger}
}

// CreateReview stores a visitor's review. It stays hidden until an admin approves it.
func (r *ReviewServer) CreateReview(ctx context.Context, request *connect.Request[api.CreateReviewRequest]) (*connect.Response[api.CreateReviewResponse], error) {
	beerID, err := parseID("beer", request.Msg.BeerId)
	if err != nil {
		return nil, err
	}

	newReview := model.Review{
		BeerID:   beerID,
		UserName: request.Msg.UserName,
		Rating:   int(request.Msg.Rating),
		Comment:  request.Msg.Comment,
	}

	if err := review.Validate(&newReview); err != nil {
		return nil, toConnectError(err)
	}

	added, err := r.reviews.AddReview(ctx, newReview)
	if err != nil {
		r.logger.Error("error adding review", zap.String("beer_id", beerID.String()), zap.Error(err))

		return nil, toConnectError(err)
	}

	r.logger.Info("review awaiting moderation", zap.String("review_id", added.ID.String()), zap.String("beer_id", beerID.String()))

	return connect.NewResponse(&api.CreateReviewResponse{Review: convert.ReviewFromModel(*added)}), nil
}

// ListReviews returns the approved reviews of a beer, newest first, with their average.
func (r *ReviewServer) ListReviews(ctx context.Context, request *connect.Request[api.ListReviewsRequest]) (*connect.Response[api.ListReviewsResponse], error) {
	beerID, err := parseID("beer", request.Msg.BeerId)
	if err != nil {
		return nil, err
	}

	reviews, err := r.reviews.GetApprovedReviews(ctx, beerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	ratings := make([]int, 0, len(reviews))
	for _, approved := range reviews {
		ratings = append(ratings, approved.Rating)
	}

	response := api.ListReviewsResponse{
		Reviews: convert.ReviewsFromModel(reviews),
		Rating:  convert.RatingFromSummary(beerID, review.Summarize(ratings)),
	}

	return connect.NewResponse(&response), nil
}

func (r *ReviewServer) GetRating(ctx context.Context, request *connect.Request[api.GetRatingRequest]) (*connect.Response[api.GetRatingResponse], error) {
	beerID, err := parseID("beer", request.Msg.BeerId)
	if err != nil {
		return nil, err
	}

	ratings, err := r.ratingsOf(ctx, []uuid.UUID{beerID})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetRatingResponse{Rating: ratings[0]}), nil
}

// GetRatings returns one rating per requested beer, in request order.
func (r *ReviewServer) GetRatings(ctx context.Context, request *connect.Request[api.GetRatingsRequest]) (*connect.Response[api.GetRatingsResponse], error) {
	beerIDs := make([]uuid.UUID, 0, len(request.Msg.BeerIds))

	for _, value := range request.Msg.BeerIds {
		beerID, err := parseID("beer", value)
		if err != nil {
			return nil, err
		}

		beerIDs = append(beerIDs, beerID)
	}

	ratings, err := r.ratingsOf(ctx, beerIDs)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetRatingsResponse{Ratings: ratings}), nil
}

func (r *ReviewServer) ratingsOf(ctx context.Context, beerIDs []uuid.UUID) ([]*api.Rating, error) {
	if len(beerIDs) == 0 {
		return []*api.Rating{}, nil
	}

	approved, err := r.reviews.GetApprovedRatings(ctx, beerIDs)
	if err != nil {
		r.logger.Error("error loading ratings", zap.Int("beers", len(beerIDs)), zap.Error(err))

		return nil, err
	}

	summaries := review.SummarizeByBeer(approved)

	ratings := make([]*api.Rating, 0, len(beerIDs))
	for _, beerID := range beerIDs {
		ratings = append(ratings, convert.RatingFromSummary(beerID, summaries[beerID]))
	}

	return ratings, nil
}
