package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"event-rollup/internal/aggregators"
	"event-rollup/internal/enumerators"
	internalhttp "event-rollup/internal/http"
	"event-rollup/internal/loaders"
	"event-rollup/internal/models"
	"event-rollup/internal/pipelines"
	"event-rollup/internal/reconcilers"
	"event-rollup/internal/seeders"
	"event-rollup/internal/shared/configs"
	"event-rollup/internal/shared/filestorages"
	"event-rollup/internal/shared/loggers"
	"event-rollup/internal/shared/metrics"
	"event-rollup/internal/stores"
	"event-rollup/internal/warehouses"

	"github.com/brianvoe/gofakeit/v6"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	warehouse warehouses.Warehouse
	pipeline  pipelines.RollupPipeline
	seeder    seeders.EventSeeder
}

// New creates and initializes a new App instance. The caller owns Close.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(ctx, config, appLogger)
}

// NewWithLogger is New with a caller-built logger.
func NewWithLogger(ctx context.Context, config *configs.Config, appLogger loggers.Logger) (*App, error) {
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "event-rollup").
		Logger()

	format, err := models.ParseSummaryFormat(config.Summary.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize summary format: %w", err)
	}

	// Initialize buckets
	sourceStorage, err := newFileStorage(ctx, config.Storage, config.Source.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize source storage: %w", err)
	}
	summaryStorage, err := newFileStorage(ctx, config.Storage, config.Summary.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize summary storage: %w", err)
	}

	// Initialize warehouse
	warehouse, err := warehouses.Open(ctx, config.Warehouse.Driver, config.Warehouse.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize warehouse: %w", err)
	}

	// Initialize pipeline steps
	summaryStore := stores.NewSummaryStore(summaryStorage, format)
	enumerator := enumerators.NewRecordEnumerator(sourceStorage, time.Now)
	aggregator := aggregators.NewEventAggregator(sourceStorage, aggregators.NewEventRolluper())
	loader := loaders.NewStagingLoader(summaryStore, warehouse)
	reconciler := reconcilers.NewMergeReconciler(warehouse, config.Warehouse.AddMissingColumns)

	pipeline := pipelines.NewRollupPipeline(
		pipelines.Config{
			HoursThreshold: config.Source.HoursThreshold,
			StagingTable:   warehouses.TableRef{Dataset: config.Warehouse.Dataset, Table: config.Warehouse.StagingTable},
			MainTable:      warehouses.TableRef{Dataset: config.Warehouse.Dataset, Table: config.Warehouse.Table},
		},
		enumerator, aggregator, summaryStore, loader, reconciler, time.Now,
	)

	seeder := seeders.NewEventSeeder(stores.NewEventRecordStore(sourceStorage), gofakeit.New(0))

	// Initialize http router
	httpLogger := loggers.Component(appLogger, "http")
	router := internalhttp.NewRouter(pipeline, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		warehouse: warehouse,
		pipeline:  pipeline,
		seeder:    seeder,
	}, nil
}

func newFileStorage(ctx context.Context, cfg configs.StorageConfig, bucket string) (filestorages.FileStorage, error) {
	switch cfg.Driver {
	case filestorages.SchemeS3:
		return filestorages.NewS3Storage(ctx, bucket, filestorages.S3Config{
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
	case filestorages.SchemeLocal:
		return filestorages.NewFileStorage(cfg.RootDir, bucket)
	}
	return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
}

// Logger returns the application logger.
func (app *App) Logger() loggers.Logger {
	return app.appLogger
}

// Run executes one rollup run with the application logger in context.
func (app *App) Run(ctx context.Context, opts pipelines.RunOptions) (*pipelines.RunResult, error) {
	ctx = loggers.Component(app.appLogger, "job").WithContext(ctx)
	return app.pipeline.Run(ctx, opts)
}

// Seed writes synthetic event records into the source bucket.
func (app *App) Seed(ctx context.Context, opts seeders.SeedOptions) (*seeders.SeedResult, error) {
	ctx = loggers.Component(app.appLogger, "seeder").WithContext(ctx)
	return app.seeder.Seed(ctx, opts)
}

// PushMetrics sends the collected metrics to the configured Pushgateway. No-op without one.
func (app *App) PushMetrics() error {
	if app.config.Metrics.PushgatewayURL == "" {
		return nil
	}
	if err := metrics.Push(app.config.Metrics.PushgatewayURL, app.config.Metrics.Job); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	app.appLogger.Debug().Str("job", app.config.Metrics.Job).Msg("pushed metrics")
	return nil
}

// Start starts the HTTP run trigger in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting event-rollup trigger on port %d (log_level=%s, storage=%s, warehouse=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Driver,
			app.config.Warehouse.Driver)

	return app.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server and releases the warehouse.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	serverErr := app.server.Shutdown(ctx)
	if serverErr != nil {
		serverErr = fmt.Errorf("server shutdown failed: %w", serverErr)
	} else {
		app.appLogger.Info().Msg("Server stopped")
	}
	return errors.Join(serverErr, app.Close())
}

// Close releases the warehouse connection.
func (app *App) Close() error {
	if err := app.warehouse.Close(); err != nil {
		return fmt.Errorf("warehouse close failed: %w", err)
	}
	return nil
}
