package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/profiler"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal"
	"github.com/erictt/bq-metadata-search/bqmetadata/service"
	"github.com/erictt/bq-metadata-search/common"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/logger"
)

// signalContext returns a context cancelled on SIGINT or SIGTERM, and the
// channel the web app uses to request the same shutdown.
func signalContext(parent context.Context) (context.Context, chan os.Signal, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-shutdown:
			log.Printf("%v : start shutdown", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, shutdown, func() {
		signal.Stop(shutdown)
		cancel()
	}
}

func startProfiler(cfg *config.AppConfig) {
	if !cfg.ProfilerEnabled {
		return
	}

	if err := profiler.Start(profiler.Config{
		Service:        common.ServiceName,
		ServiceVersion: common.ServiceVersion,
		ProjectID:      cfg.ProjectID,
	}); err != nil {
		log.Printf("main: could not start profiler: %v", err)
	}
}

// newExtractor builds the extractor reading the catalog through client.
func newExtractor(cfg *config.AppConfig, loggerProvider logger.Provider, client *bigquery.Client) *service.Extractor {
	catalog := dal.NewRateLimitedCatalog(
		dal.NewBigqueryCatalog(loggerProvider, client),
		cfg.Catalog.RateLimit,
		cfg.Catalog.RateBurst,
	)

	return service.NewExtractor(
		loggerProvider,
		catalog,
		service.NewDatasetFilter(cfg.Filter),
		cfg.Extract.Workers,
	)
}
