// Package integrations looks beers up in external catalogs so that admins can import them.
package integrations

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	untappdweb "droscher.com/BeerFinder/pkg/integrations/untappd-web"
	"droscher.com/BeerFinder/pkg/model"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type Integration interface {
	FindBeer(ctx context.Context, name string) ([]model.Beer, error)
}

func GetIntegration(name string, logger *zap.Logger) (Integration, error) {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappedWebIntegration(logger), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownIntegration, name)
}

// Search asks every integration and returns what the working ones found. It only fails when all of them do.
func Search(ctx context.Context, integrations []Integration, name string, logger *zap.Logger) ([]model.Beer, error) {
	var (
		results []model.Beer
		errs    []error
	)

	for _, integration := range integrations {
		beers, err := integration.FindBeer(ctx, name)
		if err != nil {
			logger.Error("External beer search failed", zap.String("query", name), zap.Error(err))
			errs = append(errs, err)
		}

		results = append(results, beers...)
	}

	if len(results) == 0 && len(errs) > 0 && len(errs) == len(integrations) {
		return nil, multierr.Combine(errs...)
	}

	return results, nil
}
