package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeerFinder/configs"
	"droscher.com/BeerFinder/mocks"
	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/server"
	apiv1 "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/taxonomy"
	"droscher.com/BeerFinder/pkg/wizard"
)

type fixedTaxonomy struct{}

func (fixedTaxonomy) Load(context.Context) *taxonomy.Taxonomy {
	options := make([]model.FilterOption, 0, len(styleOptions()))
	for _, option := range styleOptions() {
		options = append(options, *option)
	}

	return taxonomy.New(options)
}

type noUsage struct{}

func (noUsage) Record(context.Context, filter.Category, string) {}

func (noUsage) Counts(context.Context) map[string]int64 {
	return map[string]int64{}
}

type WizardTestSuite struct {
	suite.Suite
	catalogRepo *mocks.CatalogRepository
	reviewRepo  *mocks.ReviewRepository
	manager     *wizard.Manager
	service     *server.WizardServer
}

func TestWizardTestSuite(t *testing.T) {
	suite.Run(t, new(WizardTestSuite))
}

func (suite *WizardTestSuite) SetupTest() {
	logger := zaptest.NewLogger(suite.T())
	suite.catalogRepo = mocks.NewCatalogRepository(suite.T())
	suite.reviewRepo = mocks.NewReviewRepository(suite.T())
	suite.manager = wizard.NewManager(configs.Wizard{IdleTimeout: time.Minute, OptionLimit: 6}, fixedTaxonomy{}, noUsage{}, nil, logger)
	suite.service = server.NewWizardServer(suite.manager, suite.catalogRepo, suite.reviewRepo, logger)
}

func (suite *WizardTestSuite) TearDownTest() {
	suite.manager.Shutdown()
}

func (suite *WizardTestSuite) start() *apiv1.WizardTurn {
	response, err := suite.service.StartConversation(context.Background(), connect.NewRequest(&apiv1.StartConversationRequest{}))
	suite.Require().NoError(err)

	return response.Msg.Turn
}

func (suite *WizardTestSuite) answer(sessionID string, choice string) (*apiv1.WizardTurn, error) {
	response, err := suite.service.Answer(context.Background(), connect.NewRequest(&apiv1.AnswerRequest{SessionId: sessionID, Choice: choice}))
	if err != nil {
		return nil, err
	}

	return response.Msg.Turn, nil
}

func (suite *WizardTestSuite) TestStartConversation_OffersIntents() {
	turn := suite.start()

	suite.NotEmpty(turn.SessionId)
	suite.Equal("initial", turn.State)
	suite.False(turn.Done)
	suite.Len(turn.Options, 7)
	suite.Equal("country", turn.Options[0].Id)
}

func (suite *WizardTestSuite) TestAnswer_SingleCategoryEndsWithBeers() {
	turn := suite.start()

	next, err := suite.answer(turn.SessionId, "style")
	suite.Require().NoError(err)
	suite.Equal("style", next.State)
	suite.Len(next.Options, 3)

	beers := testBeers()
	suite.catalogRepo.EXPECT().ListBeers(context.Background(), (*model.BeerStatus)(nil)).Return(beers, nil)
	suite.reviewRepo.EXPECT().GetApprovedRatings(context.Background(), []uuid.UUID{beers[2].ID}).Return([]model.BeerRating{
		{BeerID: beers[2].ID, Rating: 4},
		{BeerID: beers[2].ID, Rating: 5},
	}, nil)

	last, err := suite.answer(turn.SessionId, "IPA")
	suite.Require().NoError(err)
	suite.True(last.Done)
	suite.Equal([]string{"IPA"}, last.Filters["style"])
	suite.Require().Len(last.Beers, 1)
	suite.Equal("Casera", last.Beers[0].Name)
	suite.Require().NotNil(last.Beers[0].Rating)
	suite.True(last.Beers[0].Rating.HasRating)
	suite.InDelta(4.5, *last.Beers[0].Rating.Average, 0.001)

	_, err = suite.service.GetConversation(context.Background(), connect.NewRequest(&apiv1.GetConversationRequest{SessionId: turn.SessionId}))
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *WizardTestSuite) TestAnswer_InvalidChoice() {
	turn := suite.start()

	_, err := suite.answer(turn.SessionId, "price")
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = suite.answer(turn.SessionId, "style")
	suite.Require().NoError(err)

	_, err = suite.answer(turn.SessionId, "Porter")
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *WizardTestSuite) TestAnswer_UnknownSession() {
	_, err := suite.answer("nope", "style")

	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *WizardTestSuite) TestCloseConversation() {
	turn := suite.start()

	_, err := suite.service.CloseConversation(context.Background(), connect.NewRequest(&apiv1.CloseConversationRequest{SessionId: turn.SessionId}))
	suite.Require().NoError(err)
	suite.Zero(suite.manager.Len())

	_, err = suite.service.CloseConversation(context.Background(), connect.NewRequest(&apiv1.CloseConversationRequest{SessionId: turn.SessionId}))
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}
