package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/address"
	"ordertaking/internal/adapters/out/catalog"
	"ordertaking/internal/adapters/out/notification"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/jobs"
)

type CompositionRoot struct {
	configs        Config
	logger         *slog.Logger
	catalog        *catalog.Catalog
	addressChecker address.PassThroughChecker
	letterRenderer *notification.LetterRenderer
	sender         *notification.LoggingSender
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (CompositionRoot, error) {
	c, err := catalog.Load(configs.CatalogPath)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return CompositionRoot{
		configs:        configs,
		logger:         logger,
		catalog:        c,
		addressChecker: address.NewPassThroughChecker(),
		letterRenderer: notification.NewLetterRenderer(configs.AcknowledgmentFrom, logger),
		sender:         notification.NewLoggingSender(configs.AcknowledgmentsEnabled, configs.AcknowledgmentFrom, logger),
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.catalog,
		c.addressChecker,
		c.catalog,
		services.NewShippingCalculator(),
		c.letterRenderer,
		c.sender,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.catalog, c.configs.CatalogRefreshSchedule, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*httpadapter.Server, error) {
	api, err := httpadapter.LoadAPIDocument(ctx)
	if err != nil {
		return nil, err
	}
	return httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetProductsQueryHandler(),
		api,
		c.logger,
	), nil
}
