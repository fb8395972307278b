package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/erictt/bq-metadata-search/bqmetadata/dal/store"
	"github.com/erictt/bq-metadata-search/bqmetadata/service"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/logger"
)

func newRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Restore tables that only exist through their fields",
		Long: `Repair looks for fields whose table has no row in the metadata store, as
left behind by stores written before tables were saved with their fields,
and saves a placeholder table for each of them.`,
		Args: cobra.NoArgs,
		RunE: runRepair,
	}
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, _, stop := signalContext(cmd.Context())
	defer stop()

	logging, err := logger.NewLogging(ctx, cfg.ProjectID, cfg.GCPLogging)
	if err != nil {
		return err
	}
	defer logging.Close()

	ctx = logger.WithLogger(ctx, logger.New())

	st, err := store.Open(ctx, cfg.Database, logging.Logger)
	if err != nil {
		return err
	}
	defer st.Close()

	summary, repairErr := service.NewRepairer(logging.Logger, st).RepairMissingTables(ctx)
	if summary == nil {
		return repairErr
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err := enc.Encode(summary); err != nil {
		return err
	}

	if repairErr != nil {
		return fmt.Errorf("%d tables could not be added", summary.Failed)
	}

	return nil
}
