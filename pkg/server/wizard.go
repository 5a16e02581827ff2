package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/model"
	api "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
	"droscher.com/BeerFinder/pkg/server/convert"
	"droscher.com/BeerFinder/pkg/wizard"
)

type conversations interface {
	Start(ctx context.Context) (*wizard.Turn, error)
	Answer(ctx context.Context, sessionID string, choice string) (*wizard.Turn, error)
	Get(ctx context.Context, sessionID string) (*wizard.Turn, error)
	Close(sessionID string) error
}

type beerLister interface {
	ListBeers(ctx context.Context, status *model.BeerStatus) ([]*model.Beer, error)
}

type WizardServer struct {
	apiv1connect.UnimplementedWizardServiceHandler
	conversations conversations
	catalog       beerLister
	ratings       ratingRepository
	logger        *zap.Logger
}

func NewWizardServer(conversations conversations, catalog beerLister, ratings ratingRepository, logger *zap.Logger) *WizardServer {
	return &WizardServer{conversations: conversations, catalog: catalog, ratings: ratings, logger: logger}
}

func (w *WizardServer) StartConversation(ctx context.Context, _ *connect.Request[api.StartConversationRequest]) (*connect.Response[api.StartConversationResponse], error) {
	turn, err := w.conversations.Start(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.StartConversationResponse{Turn: convert.TurnFromWizard(turn)}), nil
}

// Answer moves a conversation on. The final turn carries the beers matching everything that was chosen.
func (w *WizardServer) Answer(ctx context.Context, request *connect.Request[api.AnswerRequest]) (*connect.Response[api.AnswerResponse], error) {
	turn, err := w.conversations.Answer(ctx, request.Msg.SessionId, request.Msg.Choice)
	if err != nil {
		return nil, toConnectError(err)
	}

	pbTurn := convert.TurnFromWizard(turn)

	if turn.Done() {
		beers, err := w.catalog.ListBeers(ctx, nil)
		if err != nil {
			w.logger.Error("error listing beers for finished conversation", zap.String("session", turn.SessionID), zap.Error(err))
		} else {
			matches := filter.Apply(beers, turn.Selection)
			pbTurn.Beers = convert.BeersFromModel(matches, ratingsFor(ctx, w.ratings, w.logger, matches))
		}
	}

	return connect.NewResponse(&api.AnswerResponse{Turn: pbTurn}), nil
}

func (w *WizardServer) GetConversation(ctx context.Context, request *connect.Request[api.GetConversationRequest]) (*connect.Response[api.GetConversationResponse], error) {
	turn, err := w.conversations.Get(ctx, request.Msg.SessionId)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetConversationResponse{Turn: convert.TurnFromWizard(turn)}), nil
}

func (w *WizardServer) CloseConversation(_ context.Context, request *connect.Request[api.CloseConversationRequest]) (*connect.Response[api.CloseConversationResponse], error) {
	if err := w.conversations.Close(request.Msg.SessionId); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.CloseConversationResponse{}), nil
}
