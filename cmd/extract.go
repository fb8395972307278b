package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/erictt/bq-metadata-search/bqmetadata/domain"
	"github.com/erictt/bq-metadata-search/bqmetadata/service"
	"github.com/erictt/bq-metadata-search/common"
	"github.com/erictt/bq-metadata-search/config"
	"github.com/erictt/bq-metadata-search/framework/connection"
	"github.com/erictt/bq-metadata-search/logger"
)

type extractOptions struct {
	projectID       string
	output          string
	noDB            bool
	excludeSuffixes string
}

func newExtractCmd() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the metadata of a BigQuery project",
		Long: `Extract walks the datasets, tables and fields of a BigQuery project and
saves them to the metadata store. With --output the metadata is also written
as JSON to a local file or a gs://bucket/object.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.projectID, "project", "p", "", "BigQuery project ID to extract")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "JSON output path or gs://bucket/object")
	cmd.Flags().BoolVar(&opts.noDB, "no-db", false, "Do not save to the metadata store")
	cmd.Flags().StringVar(&opts.excludeSuffixes, "exclude-suffixes", "", "Comma separated dataset suffixes to skip, overrides FILTER_EXCLUDED_SUFFIXES")

	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func runExtract(cmd *cobra.Command, opts extractOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if opts.excludeSuffixes != "" {
		cfg.Filter.ExcludedSuffixes = common.SplitAndTrim(opts.excludeSuffixes)
	}

	ctx, _, stop := signalContext(cmd.Context())
	defer stop()

	logging, err := logger.NewLogging(ctx, cfg.ProjectID, cfg.GCPLogging)
	if err != nil {
		return err
	}
	defer logging.Close()

	ctx = logger.WithLogger(ctx, logger.New())

	billingProjectID := cfg.ProjectID
	if billingProjectID == "" {
		billingProjectID = opts.projectID
	}

	var (
		doc     *domain.Document
		summary *domain.Summary
		runErr  error
	)

	if opts.noDB {
		bq, err := connection.NewBigQuery(ctx, logging, billingProjectID)
		if err != nil {
			return err
		}
		defer bq.Close()

		doc, err = newExtractor(cfg, logging.Logger, bq.Bigquery(ctx)).ExtractAll(ctx, opts.projectID)
		if err != nil {
			return err
		}

		summary = &domain.Summary{
			ProjectID: opts.projectID,
			Datasets:  len(doc.Datasets),
			Tables:    len(doc.Tables),
			Fields:    len(doc.Fields),
		}
	} else {
		conn, err := connection.NewConnection(ctx, cfg, logging, billingProjectID)
		if err != nil {
			return err
		}
		defer conn.Close()

		if opts.output != "" {
			doc = domain.NewDocument(opts.projectID)
		}

		extractor := newExtractor(cfg, logging.Logger, conn.Bigquery(ctx))
		runner := service.NewRunner(logging.Logger, extractor, conn.Store, cfg.Extract.Buffer)

		summary, runErr = runner.Run(ctx, opts.projectID, doc)

		var merr *multierror.Error
		if runErr != nil && !errors.As(runErr, &merr) {
			return runErr
		}
	}

	if opts.output != "" {
		if err := service.NewExporter(logging.Logger).Export(ctx, doc, opts.output); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(summary); err != nil {
		return err
	}

	if runErr != nil {
		return fmt.Errorf("%d entities could not be saved", summary.FailedEntities)
	}

	return nil
}
