package cmd

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/configs"
	"droscher.com/BeerFinder/pkg/kv"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/seed"
	"droscher.com/BeerFinder/pkg/taxonomy"
)

type SeedCmd struct {
	ConfigFile string `default:".BeerFinder.toml" help:"Path to config file" short:"c"`
	Catalog    bool   `help:"Also add the sample beers when the catalog is empty"`
}

func (s *SeedCmd) Run(cliCtx *Context) error {
	logger := toolLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	store, err := kv.Open(ctx, conf.Cache, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	defaults, err := seed.Load()
	if err != nil {
		return err
	}

	if err := taxonomy.NewService(repo, store, defaults, logger).EnsureDefaults(ctx); err != nil {
		logger.Error("error loading default filter options", zap.Error(err))

		return err
	}

	if !s.Catalog {
		return nil
	}

	return seedCatalog(ctx, repo, defaults, logger)
}

func seedCatalog(ctx context.Context, catalog repository.CatalogRepository, defaults *seed.Defaults, logger *zap.Logger) error {
	existing, err := catalog.ListBeers(ctx, nil)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		logger.Info("catalog already has beers, skipping samples", zap.Int("beers", len(existing)))

		return nil
	}

	var errs error

	for _, beer := range defaults.CatalogBeers() {
		if _, err := catalog.AddBeer(ctx, beer); err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		logger.Info("added sample beer", zap.String("name", beer.Name))
	}

	return errs
}
