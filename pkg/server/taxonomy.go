package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/filter"
	api "droscher.com/BeerFinder/pkg/server/api/v1"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
	"droscher.com/BeerFinder/pkg/server/convert"
	"droscher.com/BeerFinder/pkg/taxonomy"
)

type filterOptions interface {
	Load(ctx context.Context) *taxonomy.Taxonomy
	Degraded() bool
}

type usageCounter interface {
	Record(ctx context.Context, category filter.Category, optionID string)
	Counts(ctx context.Context) map[string]int64
	Degraded() bool
}

type TaxonomyServer struct {
	apiv1connect.UnimplementedTaxonomyServiceHandler
	options filterOptions
	usage   usageCounter
	logger  *zap.Logger
}

func NewTaxonomyServer(options filterOptions, usage usageCounter, logger *zap.Logger) *TaxonomyServer {
	return &TaxonomyServer{options: options, usage: usage, logger: logger}
}

// GetFilterOptions returns every category with its options, most used first.
func (t *TaxonomyServer) GetFilterOptions(ctx context.Context, _ *connect.Request[api.GetFilterOptionsRequest]) (*connect.Response[api.GetFilterOptionsResponse], error) {
	options := t.options.Load(ctx)
	counts := t.usage.Counts(ctx)

	response := api.GetFilterOptionsResponse{
		Categories: make([]*api.FilterCategory, 0, len(filter.Categories())),
		Degraded:   t.options.Degraded() || t.usage.Degraded(),
	}

	for _, category := range filter.Categories() {
		ranked := filter.SortByUsage(category, options.Options(category), counts)
		response.Categories = append(response.Categories, convert.FilterCategory(category, ranked, 0))
	}

	return connect.NewResponse(&response), nil
}

// RecordSelection counts one use of an option picked in the filter grid.
func (t *TaxonomyServer) RecordSelection(ctx context.Context, request *connect.Request[api.RecordSelectionRequest]) (*connect.Response[api.RecordSelectionResponse], error) {
	category, err := filter.ParseCategory(request.Msg.Category)
	if err != nil {
		return nil, toConnectError(err)
	}

	if _, found := t.options.Load(ctx).Lookup(category, request.Msg.OptionId); !found {
		return nil, toConnectError(fmt.Errorf("%w: no %s option %q", ErrInvalidInput, category, request.Msg.OptionId))
	}

	t.usage.Record(ctx, category, request.Msg.OptionId)

	return connect.NewResponse(&api.RecordSelectionResponse{}), nil
}
