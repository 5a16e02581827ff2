package server_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BeerFinder/configs"
	"droscher.com/BeerFinder/mocks"
	"droscher.com/BeerFinder/pkg/auth"
	"droscher.com/BeerFinder/pkg/integrations"
	"droscher.com/BeerFinder/pkg/kv"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/seed"
	"droscher.com/BeerFinder/pkg/server"
	apiv1 "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/storage"
	"droscher.com/BeerFinder/pkg/taxonomy"
	"droscher.com/BeerFinder/pkg/usage"
)

type fakeImages struct {
	stored  []string
	deleted []string
	err     error
}

func (f *fakeImages) Put(_ context.Context, beerID uuid.UUID, filename string, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	prefix := "beer"
	if beerID != uuid.Nil {
		prefix = beerID.String()
	}

	imageURL := "https://beers.test/images/" + prefix + "_" + filename
	f.stored = append(f.stored, imageURL)

	return imageURL, nil
}

func (f *fakeImages) Delete(_ context.Context, imageURL string) error {
	f.deleted = append(f.deleted, imageURL)

	return f.err
}

type fakeFinder struct {
	beers []model.Beer
	err   error
}

func (f fakeFinder) FindBeer(context.Context, string) ([]model.Beer, error) {
	return f.beers, f.err
}

type AdminTestSuite struct {
	suite.Suite
	catalogRepo  *mocks.CatalogRepository
	reviewRepo   *mocks.ReviewRepository
	taxonomyRepo *mocks.TaxonomyRepository
	usageRepo    *mocks.UsageRepository
	images       *fakeImages
	backends     server.AdminBackends
	service      *server.AdminServer
	observedLogs *observer.ObservedLogs
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (suite *AdminTestSuite) SetupTest() {
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	defaults, err := seed.Load()
	suite.Require().NoError(err)

	store := kv.NewMemory()
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	suite.reviewRepo = mocks.NewReviewRepository(suite.T())
	suite.taxonomyRepo = mocks.NewTaxonomyRepository(suite.T())
	suite.usageRepo = mocks.NewUsageRepository(suite.T())
	suite.images = &fakeImages{}

	suite.backends = server.AdminBackends{
		Auth:     auth.NewAuthManager(configs.Auth{AdminPassword: "CDERF", SecretKey: "secret", SessionTTL: time.Hour}, logger),
		Catalog:  suite.catalogRepo,
		Reviews:  suite.reviewRepo,
		Taxonomy: taxonomy.NewService(suite.taxonomyRepo, store, defaults, logger),
		Usage:    usage.NewCounter(suite.usageRepo, store, logger),
		Images:   suite.images,
	}
	suite.service = server.NewAdminServer(suite.backends, logger)
}

func newBeer() *apiv1.Beer {
	return &apiv1.Beer{
		Name:    " Presidente ",
		Brewery: "Cervecería Nacional Dominicana",
		Style:   "Lager",
		Abv:     5,
		Ibu:     pointy.Int64(12),
		Color:   "rubia",
		Flavor:  []string{"suave", " "},
		Origin:  pointy.String("República Dominicana"),
	}
}

func (suite *AdminTestSuite) TestLogin() {
	response, err := suite.service.Login(context.Background(), connect.NewRequest(&apiv1.LoginRequest{Password: "CDERF"}))
	suite.Require().NoError(err)
	suite.NotEmpty(response.Msg.Token)

	_, err = suite.service.Login(context.Background(), connect.NewRequest(&apiv1.LoginRequest{Password: "wrong"}))
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestCreateBeer_Success() {
	ctx := context.Background()

	suite.catalogRepo.EXPECT().AddBeer(ctx, mock.MatchedBy(func(beer model.Beer) bool {
		return beer.ID == uuid.Nil && beer.Name == "Presidente" && beer.Status == model.StatusAvailable &&
			len(beer.Flavor) == 1 && beer.Flavor[0] == "suave"
	})).RunAndReturn(func(_ context.Context, beer model.Beer) (*model.Beer, error) {
		beer.ID = uuid.New()

		return &beer, nil
	})

	response, err := suite.service.CreateBeer(ctx, connect.NewRequest(&apiv1.CreateBeerRequest{Beer: newBeer()}))

	suite.Require().NoError(err)
	suite.NotEmpty(response.Msg.Beer.Id)
	suite.Equal("disponible", response.Msg.Beer.Status)
	suite.Equal(1, suite.observedLogs.FilterMessage("added beer").Len())
}

func (suite *AdminTestSuite) TestCreateBeer_Validation() {
	tests := []struct {
		name   string
		mutate func(beer *apiv1.Beer)
		want   string
	}{
		{name: "missing name", mutate: func(beer *apiv1.Beer) { beer.Name = "" }, want: "name is required"},
		{name: "missing brewery", mutate: func(beer *apiv1.Beer) { beer.Brewery = " " }, want: "brewery is required"},
		{name: "missing style", mutate: func(beer *apiv1.Beer) { beer.Style = "" }, want: "style is required"},
		{name: "negative abv", mutate: func(beer *apiv1.Beer) { beer.Abv = -1 }, want: "abv cannot be negative"},
		{name: "negative ibu", mutate: func(beer *apiv1.Beer) { beer.Ibu = pointy.Int64(-4) }, want: "ibu cannot be negative"},
		{name: "no flavor", mutate: func(beer *apiv1.Beer) { beer.Flavor = nil }, want: "at least one flavor is required"},
		{name: "bad status", mutate: func(beer *apiv1.Beer) { beer.Status = "roto" }, want: `unknown status "roto"`},
		{name: "bad id", mutate: func(beer *apiv1.Beer) { beer.Id = "12" }, want: "beer id"},
	}

	for _, test := range tests {
		suite.Run(test.name, func() {
			beer := newBeer()
			test.mutate(beer)

			response, err := suite.service.CreateBeer(context.Background(), connect.NewRequest(&apiv1.CreateBeerRequest{Beer: beer}))

			suite.Nil(response)
			suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
			suite.ErrorContains(err, test.want)
		})
	}
}

func (suite *AdminTestSuite) TestUpdateBeer_RequiresID() {
	response, err := suite.service.UpdateBeer(context.Background(), connect.NewRequest(&apiv1.UpdateBeerRequest{Beer: newBeer()}))

	suite.Nil(response)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestUpdateBeer_NotFound() {
	ctx := context.Background()
	beer := newBeer()
	beer.Id = uuid.NewString()

	suite.catalogRepo.EXPECT().UpdateBeer(ctx, mock.Anything).Return(nil, repository.ErrBeerNotFound)

	response, err := suite.service.UpdateBeer(ctx, connect.NewRequest(&apiv1.UpdateBeerRequest{Beer: beer}))

	suite.Nil(response)
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestDeleteBeer_RemovesImage() {
	ctx := context.Background()
	beer := testBeers()[0]
	beer.Image = pointy.String("https://beers.test/images/chimay.png")

	suite.catalogRepo.EXPECT().DeleteBeer(ctx, beer.ID).Return(beer, nil)

	_, err := suite.service.DeleteBeer(ctx, connect.NewRequest(&apiv1.DeleteBeerRequest{Id: beer.ID.String()}))

	suite.Require().NoError(err)
	suite.Equal([]string{"https://beers.test/images/chimay.png"}, suite.images.deleted)
}

func (suite *AdminTestSuite) TestDeleteBeer_ImageFailureIsNotFatal() {
	ctx := context.Background()
	beer := testBeers()[0]
	beer.Image = pointy.String("https://beers.test/images/chimay.png")
	suite.images.err = errors.New("read-only file system")

	suite.catalogRepo.EXPECT().DeleteBeer(ctx, beer.ID).Return(beer, nil)

	_, err := suite.service.DeleteBeer(ctx, connect.NewRequest(&apiv1.DeleteBeerRequest{Id: beer.ID.String()}))

	suite.Require().NoError(err)
	suite.Equal(1, suite.observedLogs.FilterMessage("could not delete beer image").Len())
}

func (suite *AdminTestSuite) TestSetBeerStatus() {
	ctx := context.Background()
	beer := testBeers()[0]
	soldOut := *beer
	soldOut.Status = model.StatusSoldOut

	suite.catalogRepo.EXPECT().SetBeerStatus(ctx, beer.ID, model.StatusSoldOut).Return(&soldOut, nil)

	response, err := suite.service.SetBeerStatus(ctx, connect.NewRequest(&apiv1.SetBeerStatusRequest{Id: beer.ID.String(), Status: "agotado"}))
	suite.Require().NoError(err)
	suite.Equal("agotado", response.Msg.Beer.Status)

	_, err = suite.service.SetBeerStatus(ctx, connect.NewRequest(&apiv1.SetBeerStatusRequest{Id: beer.ID.String(), Status: "roto"}))
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestToggleBeerStatus() {
	ctx := context.Background()
	beer := testBeers()[2]
	available := *beer
	available.Status = model.StatusAvailable

	suite.catalogRepo.EXPECT().GetBeer(ctx, beer.ID).Return(beer, nil)
	suite.catalogRepo.EXPECT().SetBeerStatus(ctx, beer.ID, model.StatusAvailable).Return(&available, nil)

	response, err := suite.service.ToggleBeerStatus(ctx, connect.NewRequest(&apiv1.ToggleBeerStatusRequest{Id: beer.ID.String()}))

	suite.Require().NoError(err)
	suite.Equal("disponible", response.Msg.Beer.Status)
}

func (suite *AdminTestSuite) TestUploadImage_WithoutBeer() {
	response, err := suite.service.UploadImage(context.Background(), connect.NewRequest(&apiv1.UploadImageRequest{
		Filename: "new.png", ContentType: "image/png", Data: []byte("png"),
	}))

	suite.Require().NoError(err)
	suite.Equal("https://beers.test/images/beer_new.png", response.Msg.Url)
	suite.Nil(response.Msg.Beer)
}

func (suite *AdminTestSuite) TestUploadImage_ReplacesBeerImage() {
	ctx := context.Background()
	beer := testBeers()[0]
	beer.Image = pointy.String("https://beers.test/images/old.png")
	newURL := "https://beers.test/images/" + beer.ID.String() + "_label.png"

	suite.catalogRepo.EXPECT().GetBeer(ctx, beer.ID).Return(beer, nil)
	suite.catalogRepo.EXPECT().UpdateBeer(ctx, mock.MatchedBy(func(updated model.Beer) bool {
		return updated.ID == beer.ID && updated.Image != nil && *updated.Image == newURL
	})).RunAndReturn(func(_ context.Context, updated model.Beer) (*model.Beer, error) {
		return &updated, nil
	})

	response, err := suite.service.UploadImage(ctx, connect.NewRequest(&apiv1.UploadImageRequest{
		BeerId: beer.ID.String(), Filename: "label.png", ContentType: "image/png", Data: []byte("png"),
	}))

	suite.Require().NoError(err)
	suite.Equal(newURL, response.Msg.Url)
	suite.Equal(newURL, *response.Msg.Beer.ImageUrl)
	suite.Equal([]string{newURL}, suite.images.stored)
	suite.Equal([]string{"https://beers.test/images/old.png"}, suite.images.deleted)
}

func (suite *AdminTestSuite) TestUploadImage_UpdateFailsKeepsOldImage() {
	ctx := context.Background()
	beer := testBeers()[0]
	beer.Image = pointy.String("https://beers.test/images/old.png")
	newURL := "https://beers.test/images/" + beer.ID.String() + "_label.png"

	suite.catalogRepo.EXPECT().GetBeer(ctx, beer.ID).Return(beer, nil)
	suite.catalogRepo.EXPECT().UpdateBeer(ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := suite.service.UploadImage(ctx, connect.NewRequest(&apiv1.UploadImageRequest{
		BeerId: beer.ID.String(), Filename: "label.png", ContentType: "image/png", Data: []byte("png"),
	}))

	suite.Error(err)
	suite.Equal([]string{newURL}, suite.images.stored)
	suite.Equal([]string{newURL}, suite.images.deleted)
	suite.NotContains(suite.images.deleted, "https://beers.test/images/old.png")
	suite.Equal(1, suite.observedLogs.FilterMessage("error saving beer image").Len())
}

func (suite *AdminTestSuite) TestUploadImage_InvalidImage() {
	suite.images.err = storage.ErrInvalidImage

	_, err := suite.service.UploadImage(context.Background(), connect.NewRequest(&apiv1.UploadImageRequest{Filename: "notes.txt"}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestAddFilterOption() {
	ctx := context.Background()

	suite.taxonomyRepo.EXPECT().AddFilterOption(ctx, mock.MatchedBy(func(option model.FilterOption) bool {
		return option.Category == "style" && option.ID == "Porter" && option.Label == "Porter"
	})).RunAndReturn(func(_ context.Context, option model.FilterOption) (*model.FilterOption, error) {
		return &option, nil
	})

	response, err := suite.service.AddFilterOption(ctx, connect.NewRequest(&apiv1.AddFilterOptionRequest{
		Option: &apiv1.FilterOption{Category: "style", Id: "Porter"},
	}))

	suite.Require().NoError(err)
	suite.Equal("Porter", response.Msg.Option.Label)
}

func (suite *AdminTestSuite) TestAddFilterOption_Duplicate() {
	ctx := context.Background()

	suite.taxonomyRepo.EXPECT().AddFilterOption(ctx, mock.Anything).Return(nil, repository.ErrDuplicateFilterOption)

	_, err := suite.service.AddFilterOption(ctx, connect.NewRequest(&apiv1.AddFilterOptionRequest{
		Option: &apiv1.FilterOption{Category: "style", Id: "IPA"},
	}))

	suite.Equal(connect.CodeAlreadyExists, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestAddFilterOption_Degraded() {
	ctx := context.Background()

	suite.taxonomyRepo.EXPECT().AddFilterOption(ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := suite.service.AddFilterOption(ctx, connect.NewRequest(&apiv1.AddFilterOptionRequest{
		Option: &apiv1.FilterOption{Category: "color", Id: "roja", Label: "Roja"},
	}))

	suite.Equal(connect.CodeUnavailable, connect.CodeOf(err))
	suite.ErrorIs(err, taxonomy.ErrDegraded)
}

func (suite *AdminTestSuite) TestAddFilterOption_BucketCategoryRejectsUnknownID() {
	_, err := suite.service.AddFilterOption(context.Background(), connect.NewRequest(&apiv1.AddFilterOptionRequest{
		Option: &apiv1.FilterOption{Category: "strength", Id: "extreme"},
	}))

	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestDeleteFilterOption_NotFound() {
	ctx := context.Background()

	suite.taxonomyRepo.EXPECT().DeleteFilterOption(ctx, "flavor", "ahumada").Return(repository.ErrFilterOptionNotFound)

	_, err := suite.service.DeleteFilterOption(ctx, connect.NewRequest(&apiv1.DeleteFilterOptionRequest{Category: "flavor", Id: "ahumada"}))

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestReviewModeration() {
	ctx := context.Background()
	reviewID := uuid.New()
	beer := testBeers()[0]
	pending := model.Review{ID: reviewID, BeerID: beer.ID, UserName: "Ana", Rating: 4, Comment: "Rica"}

	suite.reviewRepo.EXPECT().GetPendingReviews(ctx).Return([]*model.PendingReview{{Review: pending, BeerName: beer.Name}}, nil)

	listed, err := suite.service.ListPendingReviews(ctx, connect.NewRequest(&apiv1.ListPendingReviewsRequest{}))
	suite.Require().NoError(err)
	suite.Require().Len(listed.Msg.Reviews, 1)
	suite.Equal("Chimay Azul", listed.Msg.Reviews[0].BeerName)
	suite.False(listed.Msg.Reviews[0].Review.Approved)

	approved := pending
	approved.Approved = true
	suite.reviewRepo.EXPECT().ApproveReview(ctx, reviewID).Return(&approved, nil)

	response, err := suite.service.ApproveReview(ctx, connect.NewRequest(&apiv1.ApproveReviewRequest{Id: reviewID.String()}))
	suite.Require().NoError(err)
	suite.True(response.Msg.Review.Approved)

	suite.reviewRepo.EXPECT().DeleteReview(ctx, reviewID).Return(repository.ErrReviewNotFound)

	_, err = suite.service.DeleteReview(ctx, connect.NewRequest(&apiv1.DeleteReviewRequest{Id: reviewID.String()}))
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestGetUsageStats() {
	ctx := context.Background()

	suite.taxonomyRepo.EXPECT().GetFilterOptions(ctx).Return(styleOptions(), nil)
	suite.usageRepo.EXPECT().GetFilterStats(ctx).Return(map[string]int64{"style:IPA": 3, "style:Lager": 1}, nil)

	response, err := suite.service.GetUsageStats(ctx, connect.NewRequest(&apiv1.GetUsageStatsRequest{}))

	suite.Require().NoError(err)
	suite.False(response.Msg.Degraded)
	suite.Require().Len(response.Msg.Categories, 6)

	style := response.Msg.Categories[0]
	suite.Equal(int64(4), style.Total)
	suite.Require().Len(style.Options, 2)
	suite.Equal("IPA", style.Options[0].Id)
	suite.Empty(response.Msg.Categories[1].Options)
}

func (suite *AdminTestSuite) TestSearchExternalBeers() {
	backends := suite.backends
	backends.Integrations = []integrations.Integration{
		fakeFinder{err: errors.New("blocked")},
		fakeFinder{beers: []model.Beer{{Name: "Precious Bet", Brewery: "Paronomastic", Status: model.StatusSoldOut}}},
	}
	service := server.NewAdminServer(backends, zap.NewNop())

	response, err := service.SearchExternalBeers(context.Background(), connect.NewRequest(&apiv1.SearchExternalBeersRequest{Query: "precious"}))

	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.Beers, 1)
	suite.Equal("Precious Bet", response.Msg.Beers[0].Name)
	suite.Empty(response.Msg.Beers[0].Id)
	suite.Nil(response.Msg.Beers[0].Rating)

	_, err = service.SearchExternalBeers(context.Background(), connect.NewRequest(&apiv1.SearchExternalBeersRequest{}))
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *AdminTestSuite) TestSearchExternalBeers_AllFail() {
	backends := suite.backends
	backends.Integrations = []integrations.Integration{fakeFinder{err: errors.New("blocked")}}
	service := server.NewAdminServer(backends, zap.NewNop())

	_, err := service.SearchExternalBeers(context.Background(), connect.NewRequest(&apiv1.SearchExternalBeersRequest{Query: "precious"}))

	suite.Equal(connect.CodeUnavailable, connect.CodeOf(err))
}
