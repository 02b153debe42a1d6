package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"datamart/internal/config"
	"datamart/internal/extract"
	"datamart/internal/load"
	"datamart/internal/profile"
	"datamart/internal/telemetry"
	"datamart/internal/transform"
	"datamart/internal/warehouse"
)

func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	// Every run is tagged so interleaved operator runs can be told apart in
	// aggregated logs.
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

func newDatabase(cfg *config.Config, lc fx.Lifecycle) (*sql.DB, error) {
	db, err := load.OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func newTracer() trace.Tracer {
	return telemetry.GetTracer("datamart/etl")
}

type pipeline struct {
	fx.In

	Config       *config.Config
	Logger       *zap.Logger
	Tracer       trace.Tracer
	Reader       *extract.Reader
	Requirements *transform.RequirementsTransformer
	Products     *transform.ProductsTransformer
	Warehouse    *load.Warehouse
}

func run(p pipeline) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.Config.LoadTimeout)
	defer cancel()

	if p.Config.OTLPCollectorURL != "" {
		shutdown, err := telemetry.InitTracer(ctx, "datamart-etl", p.Config.OTLPCollectorURL)
		if err != nil {
			p.Logger.Warn("tracing disabled", zap.Error(err))
		} else {
			defer shutdown()
		}
	}

	ctx, span := p.Tracer.Start(ctx, "BatchRun")
	defer span.End()

	rawRequirements, err := p.Reader.ReadRequirements(p.Config.RequirementsPath)
	if err != nil {
		return err
	}
	requirements, err := p.Requirements.Transform(rawRequirements)
	if err != nil {
		return err
	}

	_, decomposeSpan := p.Tracer.Start(ctx, "Decompose")
	star := warehouse.Decompose(requirements)
	decomposeSpan.SetAttributes(
		telemetry.Int("companies", len(star.Companies)),
		telemetry.Int("locations", len(star.Locations)),
		telemetry.Int("facts", len(star.Facts)),
	)
	decomposeSpan.End()

	rawProducts, err := p.Reader.ReadProducts(p.Config.ProductsPath)
	if err != nil {
		return err
	}
	products := p.Products.Transform(rawProducts)

	requirementsTable := profile.RequirementsTable(requirements)
	productsTable := profile.ProductsTable(products)
	fmt.Println(profile.Render(requirementsTable, p.Config.ProfileExcludeColumns...))
	fmt.Println(profile.Render(productsTable))

	if p.Config.CleanedCSV {
		for name, table := range map[string]*profile.Table{
			"requirements_cleaned": requirementsTable,
			"products_cleaned":     productsTable,
		} {
			path, err := load.SaveCSV(p.Config.OutputDir, name, table)
			if err != nil {
				return err
			}
			p.Logger.Info("saved cleaned table", zap.String("path", path))
		}
	}

	loadCtx, loadSpan := p.Tracer.Start(ctx, "Load",
		trace.WithAttributes(telemetry.String("database", p.Config.DBName)))
	defer loadSpan.End()
	return p.Warehouse.Load(loadCtx, star, products)
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newDatabase,
			newTracer,
			extract.NewReader,
			transform.NewRequirementsTransformer,
			transform.NewProductsTransformer,
			load.NewWarehouse,
		),
		fx.Invoke(run),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	if err := app.Stop(context.Background()); err != nil {
		log.Fatal(err)
	}
}
