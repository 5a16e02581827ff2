package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/integrations"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/repository"
	api "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
	"droscher.com/BeerFinder/pkg/server/convert"
	"droscher.com/BeerFinder/pkg/taxonomy"
	"droscher.com/BeerFinder/pkg/usage"
)

type authenticator interface {
	Login(password string) (string, time.Time, error)
}

type taxonomyEditor interface {
	filterOptions
	Add(ctx context.Context, category filter.Category, option model.FilterOption) (*model.FilterOption, error)
	Update(ctx context.Context, category filter.Category, option model.FilterOption) (*model.FilterOption, error)
	Delete(ctx context.Context, category filter.Category, optionID string) error
}

type usageReader interface {
	Counts(ctx context.Context) map[string]int64
	Degraded() bool
}

type imageStore interface {
	Put(ctx context.Context, beerID uuid.UUID, filename string, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// AdminBackends is everything the admin dashboard edits or reads.
type AdminBackends struct {
	Auth         authenticator
	Catalog      repository.CatalogRepository
	Reviews      repository.ReviewRepository
	Taxonomy     taxonomyEditor
	Usage        usageReader
	Images       imageStore
	Integrations []integrations.Integration
}

type AdminServer struct {
	apiv1connect.UnimplementedAdminServiceHandler
	AdminBackends
	logger *zap.Logger
}

func NewAdminServer(backends AdminBackends, logger *zap.Logger) *AdminServer {
	return &AdminServer{AdminBackends: backends, logger: logger}
}

func (a *AdminServer) Login(_ context.Context, request *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	token, expires, err := a.Auth.Login(request.Msg.Password)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.LoginResponse{Token: token, ExpiresAt: expires}), nil
}

func (a *AdminServer) CreateBeer(ctx context.Context, request *connect.Request[api.CreateBeerRequest]) (*connect.Response[api.CreateBeerResponse], error) {
	beer, err := beerFromRequest(request.Msg.Beer)
	if err != nil {
		return nil, toConnectError(err)
	}

	beer.ID = uuid.Nil

	newBeer, err := a.Catalog.AddBeer(ctx, beer)
	if err != nil {
		a.logger.Error("error adding beer", zap.String("name", beer.Name), zap.Error(err))

		return nil, toConnectError(err)
	}

	a.logger.Info("added beer", zap.String("beer_id", newBeer.ID.String()), zap.String("name", newBeer.Name))

	return connect.NewResponse(&api.CreateBeerResponse{Beer: convert.BeerFromModel(*newBeer)}), nil
}

func (a *AdminServer) UpdateBeer(ctx context.Context, request *connect.Request[api.UpdateBeerRequest]) (*connect.Response[api.UpdateBeerResponse], error) {
	beer, err := beerFromRequest(request.Msg.Beer)
	if err != nil {
		return nil, toConnectError(err)
	}

	if beer.ID == uuid.Nil {
		return nil, toConnectError(fmt.Errorf("%w: beer id is required", ErrInvalidInput))
	}

	updated, err := a.Catalog.UpdateBeer(ctx, beer)
	if err != nil {
		a.logger.Error("error updating beer", zap.String("beer_id", beer.ID.String()), zap.Error(err))

		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateBeerResponse{Beer: convert.BeerFromModel(*updated)}), nil
}

// DeleteBeer removes a beer and then its image. A leftover image is logged, not reported.
func (a *AdminServer) DeleteBeer(ctx context.Context, request *connect.Request[api.DeleteBeerRequest]) (*connect.Response[api.DeleteBeerResponse], error) {
	beerID, err := parseID("beer", request.Msg.Id)
	if err != nil {
		return nil, err
	}

	deleted, err := a.Catalog.DeleteBeer(ctx, beerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if deleted.Image != nil {
		if err := a.Images.Delete(ctx, *deleted.Image); err != nil {
			a.logger.Warn("could not delete beer image", zap.String("beer_id", beerID.String()), zap.String("url", *deleted.Image), zap.Error(err))
		}
	}

	a.logger.Info("deleted beer", zap.String("beer_id", beerID.String()))

	return connect.NewResponse(&api.DeleteBeerResponse{}), nil
}

func (a *AdminServer) SetBeerStatus(ctx context.Context, request *connect.Request[api.SetBeerStatusRequest]) (*connect.Response[api.SetBeerStatusResponse], error) {
	beerID, err := parseID("beer", request.Msg.Id)
	if err != nil {
		return nil, err
	}

	status := model.BeerStatus(request.Msg.Status)
	if !status.Valid() {
		return nil, toConnectError(fmt.Errorf("%w: unknown status %q", ErrInvalidInput, request.Msg.Status))
	}

	beer, err := a.Catalog.SetBeerStatus(ctx, beerID, status)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SetBeerStatusResponse{Beer: convert.BeerFromModel(*beer)}), nil
}

// ToggleBeerStatus flips a beer between available and sold out.
func (a *AdminServer) ToggleBeerStatus(ctx context.Context, request *connect.Request[api.ToggleBeerStatusRequest]) (*connect.Response[api.ToggleBeerStatusResponse], error) {
	beerID, err := parseID("beer", request.Msg.Id)
	if err != nil {
		return nil, err
	}

	beer, err := a.Catalog.GetBeer(ctx, beerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	status := model.StatusSoldOut
	if beer.Status != model.StatusAvailable {
		status = model.StatusAvailable
	}

	beer, err = a.Catalog.SetBeerStatus(ctx, beerID, status)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ToggleBeerStatusResponse{Beer: convert.BeerFromModel(*beer)}), nil
}

// UploadImage stores an image. With a beer id the beer is updated to the new image and its previous
// image is deleted once the update succeeded.
func (a *AdminServer) UploadImage(ctx context.Context, request *connect.Request[api.UploadImageRequest]) (*connect.Response[api.UploadImageResponse], error) {
	msg := request.Msg

	if msg.BeerId == "" {
		imageURL, err := a.Images.Put(ctx, uuid.Nil, msg.Filename, msg.ContentType, msg.Data)
		if err != nil {
			return nil, toConnectError(err)
		}

		return connect.NewResponse(&api.UploadImageResponse{Url: imageURL}), nil
	}

	beerID, err := parseID("beer", msg.BeerId)
	if err != nil {
		return nil, err
	}

	beer, err := a.Catalog.GetBeer(ctx, beerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	oldURL := ""
	if beer.Image != nil {
		oldURL = *beer.Image
	}

	imageURL, err := a.Images.Put(ctx, beerID, msg.Filename, msg.ContentType, msg.Data)
	if err != nil {
		return nil, toConnectError(err)
	}

	beer.Image = pointy.String(imageURL)

	updated, err := a.Catalog.UpdateBeer(ctx, *beer)
	if err != nil {
		a.logger.Error("error saving beer image", zap.String("beer_id", beerID.String()), zap.Error(err))

		// the beer still points at the old image
		if deleteErr := a.Images.Delete(ctx, imageURL); deleteErr != nil {
			a.logger.Warn("could not delete unused beer image", zap.String("url", imageURL), zap.Error(deleteErr))
		}

		return nil, toConnectError(err)
	}

	if oldURL != "" {
		if err := a.Images.Delete(ctx, oldURL); err != nil {
			a.logger.Warn("could not delete replaced beer image", zap.String("url", oldURL), zap.Error(err))
		}
	}

	return connect.NewResponse(&api.UploadImageResponse{Url: imageURL, Beer: convert.BeerFromModel(*updated)}), nil
}

func (a *AdminServer) AddFilterOption(ctx context.Context, request *connect.Request[api.AddFilterOptionRequest]) (*connect.Response[api.AddFilterOptionResponse], error) {
	category, option, err := optionFromRequest(request.Msg.Option)
	if err != nil {
		return nil, toConnectError(err)
	}

	added, err := a.Taxonomy.Add(ctx, category, option)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddFilterOptionResponse{Option: convert.FilterOptionFromModel(*added, 0)}), nil
}

func (a *AdminServer) UpdateFilterOption(ctx context.Context, request *connect.Request[api.UpdateFilterOptionRequest]) (*connect.Response[api.UpdateFilterOptionResponse], error) {
	category, option, err := optionFromRequest(request.Msg.Option)
	if err != nil {
		return nil, toConnectError(err)
	}

	updated, err := a.Taxonomy.Update(ctx, category, option)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateFilterOptionResponse{Option: convert.FilterOptionFromModel(*updated, 0)}), nil
}

func (a *AdminServer) DeleteFilterOption(ctx context.Context, request *connect.Request[api.DeleteFilterOptionRequest]) (*connect.Response[api.DeleteFilterOptionResponse], error) {
	category, err := filter.ParseCategory(request.Msg.Category)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := a.Taxonomy.Delete(ctx, category, request.Msg.Id); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteFilterOptionResponse{}), nil
}

func (a *AdminServer) ListPendingReviews(ctx context.Context, _ *connect.Request[api.ListPendingReviewsRequest]) (*connect.Response[api.ListPendingReviewsResponse], error) {
	pending, err := a.Reviews.GetPendingReviews(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListPendingReviewsResponse{Reviews: convert.PendingReviewsFromModel(pending)}), nil
}

func (a *AdminServer) ApproveReview(ctx context.Context, request *connect.Request[api.ApproveReviewRequest]) (*connect.Response[api.ApproveReviewResponse], error) {
	reviewID, err := parseID("review", request.Msg.Id)
	if err != nil {
		return nil, err
	}

	approved, err := a.Reviews.ApproveReview(ctx, reviewID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ApproveReviewResponse{Review: convert.ReviewFromModel(*approved)}), nil
}

func (a *AdminServer) DeleteReview(ctx context.Context, request *connect.Request[api.DeleteReviewRequest]) (*connect.Response[api.DeleteReviewResponse], error) {
	reviewID, err := parseID("review", request.Msg.Id)
	if err != nil {
		return nil, err
	}

	if err := a.Reviews.DeleteReview(ctx, reviewID); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteReviewResponse{}), nil
}

// GetUsageStats groups the usage counters by category for the statistics chart.
func (a *AdminServer) GetUsageStats(ctx context.Context, _ *connect.Request[api.GetUsageStatsRequest]) (*connect.Response[api.GetUsageStatsResponse], error) {
	stats := usage.Breakdown(a.Taxonomy.Load(ctx), a.Usage.Counts(ctx))

	response := api.GetUsageStatsResponse{
		Categories: make([]*api.FilterCategory, 0, len(stats)),
		Degraded:   a.Usage.Degraded(),
	}

	for _, stat := range stats {
		response.Categories = append(response.Categories, convert.FilterCategory(stat.Category, stat.Options, stat.Total))
	}

	return connect.NewResponse(&response), nil
}

// SearchExternalBeers looks a name up in the configured integrations, to prefill a new beer.
func (a *AdminServer) SearchExternalBeers(ctx context.Context, request *connect.Request[api.SearchExternalBeersRequest]) (*connect.Response[api.SearchExternalBeersResponse], error) {
	if request.Msg.Query == "" {
		return nil, toConnectError(fmt.Errorf("%w: query is required", ErrInvalidInput))
	}

	found, err := integrations.Search(ctx, a.Integrations, request.Msg.Query, a.logger)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	beers := make([]*model.Beer, 0, len(found))
	for i := range found {
		beers = append(beers, &found[i])
	}

	return connect.NewResponse(&api.SearchExternalBeersResponse{Beers: convert.BeersFromModel(beers, nil)}), nil
}

func beerFromRequest(pbBeer *api.Beer) (model.Beer, error) {
	if pbBeer == nil {
		return model.Beer{}, fmt.Errorf("%w: beer is required", ErrInvalidInput)
	}

	beer, err := convert.BeerToModel(pbBeer)
	if err != nil {
		return model.Beer{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if beer.Status == "" {
		beer.Status = model.StatusAvailable
	}

	return beer, validateBeer(beer)
}

func validateBeer(beer model.Beer) error {
	var problems error

	if beer.Name == "" {
		problems = multierr.Append(problems, errors.New("name is required"))
	}

	if beer.Brewery == "" {
		problems = multierr.Append(problems, errors.New("brewery is required"))
	}

	if beer.Style == "" {
		problems = multierr.Append(problems, errors.New("style is required"))
	}

	if beer.ABV < 0 {
		problems = multierr.Append(problems, errors.New("abv cannot be negative"))
	}

	if beer.IBU != nil && *beer.IBU < 0 {
		problems = multierr.Append(problems, errors.New("ibu cannot be negative"))
	}

	if len(beer.Flavor) == 0 {
		problems = multierr.Append(problems, errors.New("at least one flavor is required"))
	}

	if !beer.Status.Valid() {
		problems = multierr.Append(problems, fmt.Errorf("unknown status %q", beer.Status))
	}

	if problems != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, problems)
	}

	return nil
}

func optionFromRequest(pbOption *api.FilterOption) (filter.Category, model.FilterOption, error) {
	if pbOption == nil {
		return 0, model.FilterOption{}, fmt.Errorf("%w: option is required", ErrInvalidInput)
	}

	category, err := filter.ParseCategory(pbOption.Category)
	if err != nil {
		return 0, model.FilterOption{}, err
	}

	return category, convert.FilterOptionToModel(pbOption), nil
}

var _ taxonomyEditor = (*taxonomy.Service)(nil)
