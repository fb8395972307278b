package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/erictt/bq-metadata-search/cmd/api"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/framework/connection"
	"github.com/erictt/bq-metadata-search/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the metadata API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Profiler initialization, best done as early as possible.
	startProfiler(cfg)

	ctx, shutdown, stop := signalContext(cmd.Context())
	defer stop()

	// Initialize cloud logging clients
	logging, err := logger.NewLogging(ctx, cfg.ProjectID, cfg.GCPLogging)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}
	defer logging.Close()

	// Initialize bigquery and metadata store connections
	conn, err := connection.NewConnection(ctx, cfg, logging, cfg.ProjectID)
	if err != nil {
		log.Printf("main: could not initialize connections. error %s", err)
		return err
	}
	defer conn.Close()

	log.Print("started: initializing api support")

	extractor := newExtractor(cfg, logging.Logger, conn.Bigquery(ctx))
	a := api.NewAPI(shutdown, cfg, logging, conn.Store, extractor)

	return a.Build().Run(ctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout)
}
