package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wozmarket/config"
	"wozmarket/internal/delivery/cli"
	"wozmarket/internal/domain/entity"
	"wozmarket/internal/domain/lifecycle"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/domain/service"
	"wozmarket/internal/infra/generator"
	logs "wozmarket/internal/infra/log"
	"wozmarket/internal/infra/persistence/blobstore"
	"wozmarket/internal/infra/qrcode"
	"wozmarket/internal/infra/random"
	"wozmarket/internal/infra/validator"
	"wozmarket/internal/usecase"
	"wozmarket/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - list:     Filtered catalog, batch by batch
// - search:   Debounced free-text search
// - show:     Product detail view
// - checkout: Single-item order summary
// - export:   CSV export of the filtered catalog
// - submit:   Publish a user listing
// - facets:   Filter option lists
// - qr:       Share QR code of a product
// - reset:    Clear the store

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var runner *cli.Runner

	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Provide(cli.NewRunner),
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := runner.Run(context.Background(), args)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "stop application")
	}

	return runErr
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		blobstore.New,
		newClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			blobstore.NewCatalogRepository,
			newDetailCaches,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			random.NewFromConfig,
			generator.NewDefault,
			qrcode.NewFromConfig,
			fx.Annotate(
				validator.New,
				fx.As(new(impl.InputValidator)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewDetailService,
			newCatalogSession,
		),
	)
}

func newClock() service.Clock {
	return time.Now
}

// newDetailCaches binds each derived collection to its key prefix in the store
func newDetailCaches(store repository.KeyValueStore, logger *slog.Logger) impl.DetailCaches {
	return impl.DetailCaches{
		Logistics:    blobstore.NewCache[entity.Logistics](store, repository.PrefixLogistics, logger),
		Sellers:      blobstore.NewCache[entity.SellerProfile](store, repository.PrefixSellerProfiles, logger),
		Comments:     blobstore.NewCache[[]entity.Comment](store, repository.PrefixComments, logger),
		Descriptions: blobstore.NewCache[string](store, repository.PrefixDescriptions, logger),
	}
}

// newCatalogSession creates the session and cancels its pending query on stop
func newCatalogSession(
	lc fx.Lifecycle,
	catalog usecase.CatalogUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogSession {
	session := impl.NewCatalogSession(catalog, cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			session.Close()

			return nil
		},
	})

	return session
}
