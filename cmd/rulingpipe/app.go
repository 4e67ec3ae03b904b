package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/c360studio/rulingpipe/config"
	"github.com/c360studio/rulingpipe/fulltext"
	"github.com/c360studio/rulingpipe/markup"
	"github.com/c360studio/rulingpipe/metadata"
	"github.com/c360studio/rulingpipe/pipeline"
)

// App wires the pipeline components from a configuration.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	driver    *pipeline.Driver
	metrics   *pipeline.Metrics
	publisher pipeline.Publisher
}

// NewApp builds the converter, driver and optional metrics and publisher.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		cfg:       cfg,
		logger:    logger,
		metrics:   pipeline.NewMetrics(),
		publisher: pipeline.NopPublisher(),
	}

	if cfg.Publish.NATSURL != "" {
		pub, err := pipeline.NewNATSPublisher(cfg.Publish.NATSURL, cfg.Publish.Subject, logger)
		if err != nil {
			return nil, err
		}
		app.publisher = pub
	}

	source := &pipeline.Source{
		Dir:       cfg.Input.Dir,
		Extension: cfg.Input.Extension,
		Include:   cfg.Input.Include,
		Exclude:   cfg.Input.Exclude,
		MaxSize:   cfg.Input.MaxSize,
	}
	app.driver = pipeline.NewDriver(source, newConverter(cfg),
		pipeline.NewWriter(cfg.Output.Dir, cfg.Output.Extension),
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(app.metrics, cfg.Metrics.Textfile),
		pipeline.WithPublisher(app.publisher),
	)
	return app, nil
}

// newConverter builds the document converter described by cfg.
func newConverter(cfg *config.Config) *pipeline.Converter {
	meta := metadata.NewConverter()
	meta.OmitContext = cfg.Output.OmitContext
	if !slices.Contains(meta.BodyElements, cfg.Extract.BodyElement) {
		meta.BodyElements = append(slices.Clone(meta.BodyElements), cfg.Extract.BodyElement)
	}

	parser := markup.NewParser()
	parser.InlineElements = cfg.Extract.InlineElements

	extractor := &fulltext.Extractor{
		RootElement: cfg.Extract.RootElement,
		BodyElement: cfg.Extract.BodyElement,
		Filter:      fulltext.NewFilter(fulltext.Order(cfg.Extract.Order), cfg.Extract.Sections...),
	}
	return pipeline.NewConverter(meta, parser, extractor)
}

// Convert runs a single batch.
func (a *App) Convert(ctx context.Context) (*pipeline.Summary, error) {
	return a.driver.Run(ctx)
}

// Watch runs a batch and then keeps converting changed documents until ctx ends.
func (a *App) Watch(ctx context.Context) (*pipeline.Summary, error) {
	return a.driver.Watch(ctx, a.cfg.Watch.DebounceDelay)
}

// Close releases the publisher connection.
func (a *App) Close() error {
	return a.publisher.Close()
}
