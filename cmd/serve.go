package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"droscher.com/BeerFinder/configs"
	"droscher.com/BeerFinder/pkg/auth"
	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/integrations"
	"droscher.com/BeerFinder/pkg/kv"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/seed"
	"droscher.com/BeerFinder/pkg/server"
	"droscher.com/BeerFinder/pkg/server/api/v1/apiv1connect"
	"droscher.com/BeerFinder/pkg/storage"
	"droscher.com/BeerFinder/pkg/taxonomy"
	"droscher.com/BeerFinder/pkg/usage"
	"droscher.com/BeerFinder/pkg/wizard"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".BeerFinder.toml" help:"Path to config file" short:"c"`
}

type services struct {
	catalog  *server.CatalogServer
	taxonomy *server.TaxonomyServer
	reviews  *server.ReviewServer
	wizard   *server.WizardServer
	admin    *server.AdminServer
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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

	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("error closing cache", zap.Error(err))
		}
	}()

	defaults, err := seed.Load()
	if err != nil {
		return err
	}

	images, err := storage.New(conf.Storage, conf.Server.PublicURL, logger)
	if err != nil {
		logger.Error("error opening image store", zap.Error(err))

		return err
	}

	finders, err := loadIntegrations(conf.Integrations.Beer, logger)
	if err != nil {
		return err
	}

	options := taxonomy.NewService(repo, store, defaults, logger)
	if err := options.EnsureDefaults(ctx); err != nil {
		logger.Warn("could not load default filter options", zap.Error(err))
	}

	counter := usage.NewCounter(repo, store, logger)

	conversations := wizard.NewManager(conf.Wizard, options, counter, func(sessionID string, selection filter.Selection) {
		logger.Info("conversation finished", zap.String("session", sessionID), zap.Stringers("categories", selection.Populated()))
	}, logger)
	defer conversations.Shutdown()

	authManager := auth.NewAuthManager(conf.Auth, logger)

	handler := newRouter(conf, services{
		catalog:  server.NewCatalogServer(repo, repo, logger),
		taxonomy: server.NewTaxonomyServer(options, counter, logger),
		reviews:  server.NewReviewServer(repo, logger),
		wizard:   server.NewWizardServer(conversations, repo, repo, logger),
		admin: server.NewAdminServer(server.AdminBackends{
			Auth:         authManager,
			Catalog:      repo,
			Reviews:      repo,
			Taxonomy:     options,
			Usage:        counter,
			Images:       images,
			Integrations: finders,
		}, logger),
	}, authManager, images)

	scheduler := cron.New()

	_, err = scheduler.AddFunc(conf.Usage.FlushSchedule, func() {
		_ = counter.Flush(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: flush schedule %q: %w", configs.ErrConfiguration, conf.Usage.FlushSchedule, err)
	}

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: timeout,
		Handler:           h2c.NewHandler(configureCORS(handler), &http2.Server{}),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting server", zap.String("address", svr.Addr))

		if err := svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	})

	group.Go(func() error {
		scheduler.Start()
		<-groupCtx.Done()
		<-scheduler.Stop().Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return svr.Shutdown(shutdownCtx)
	})

	err = group.Wait()

	flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if flushErr := counter.Flush(flushCtx); flushErr != nil {
		logger.Warn("filter usage left buffered", zap.Error(flushErr))
	}

	return err
}

func loadIntegrations(names []string, logger *zap.Logger) ([]integrations.Integration, error) {
	finders := make([]integrations.Integration, 0, len(names))

	for _, name := range names {
		finder, err := integrations.GetIntegration(name, logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", configs.ErrConfiguration, err)
		}

		finders = append(finders, finder)
	}

	return finders, nil
}

func newRouter(conf *configs.Config, svc services, authManager *auth.Manager, images *storage.Store) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	mount := func(path string, handler http.Handler) {
		router.Handle(path+"*", handler)
	}

	mount(apiv1connect.NewCatalogServiceHandler(svc.catalog))
	mount(apiv1connect.NewTaxonomyServiceHandler(svc.taxonomy))
	mount(apiv1connect.NewReviewServiceHandler(svc.reviews))
	mount(apiv1connect.NewWizardServiceHandler(svc.wizard))
	mount(apiv1connect.NewAdminServiceHandler(svc.admin,
		connect.WithInterceptors(authManager.AdminInterceptor(apiv1connect.AdminServiceLoginProcedure))))

	checker := grpchealth.NewStaticChecker(
		apiv1connect.CatalogServiceName,
		apiv1connect.TaxonomyServiceName,
		apiv1connect.ReviewServiceName,
		apiv1connect.WizardServiceName,
		apiv1connect.AdminServiceName,
	)
	mount(grpchealth.NewHandler(checker))

	imagePath := strings.TrimSuffix(conf.Storage.ImagePath, "/")
	router.Handle(imagePath+"/*", http.StripPrefix(imagePath, images.Handler()))

	return router
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
