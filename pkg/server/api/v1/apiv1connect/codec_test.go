package apiv1connect_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
)

type catalog struct {
	apiv1connect.UnimplementedCatalogServiceHandler
}

func (catalog) GetBeer(_ context.Context, request *connect_go.Request[v1.GetBeerRequest]) (*connect_go.Response[v1.GetBeerResponse], error) {
	return connect_go.NewResponse(&v1.GetBeerResponse{Beer: &v1.Beer{Id: request.Msg.Id, Name: "Presidente", Flavor: []string{"suave"}}}), nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle(apiv1connect.NewCatalogServiceHandler(catalog{}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestCatalogHandler_JSONRoundTrip(t *testing.T) {
	server := newServer(t)

	client := connect_go.NewClient[v1.GetBeerRequest, v1.GetBeerResponse](
		server.Client(), server.URL+apiv1connect.CatalogServiceGetBeerProcedure, connect_go.WithCodec(apiv1connect.Codec{}),
	)

	response, err := client.CallUnary(context.Background(), connect_go.NewRequest(&v1.GetBeerRequest{Id: "abc"}))
	require.NoError(t, err)
	assert.Equal(t, "abc", response.Msg.Beer.Id)
	assert.Equal(t, []string{"suave"}, response.Msg.Beer.Flavor)
}

func TestCatalogHandler_Unimplemented(t *testing.T) {
	server := newServer(t)

	client := connect_go.NewClient[v1.ListBeersRequest, v1.ListBeersResponse](
		server.Client(), server.URL+apiv1connect.CatalogServiceListBeersProcedure, connect_go.WithCodec(apiv1connect.Codec{}),
	)

	_, err := client.CallUnary(context.Background(), connect_go.NewRequest(&v1.ListBeersRequest{}))
	assert.Equal(t, connect_go.CodeUnimplemented, connect_go.CodeOf(err))
}

func TestCodec_RejectsUnknownFields(t *testing.T) {
	var request v1.GetBeerRequest

	require.NoError(t, apiv1connect.Codec{}.Unmarshal(nil, &request))
	require.NoError(t, apiv1connect.Codec{}.Unmarshal([]byte(`{"id":"x"}`), &request))
	assert.Equal(t, "x", request.Id)
	assert.Error(t, apiv1connect.Codec{}.Unmarshal([]byte(`{"beer":"x"}`), &request))
}
