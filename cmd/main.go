package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erictt/bq-metadata-search/common"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "bq-metadata",
		Short:         "BigQuery metadata extraction and search",
		Version:       common.ServiceVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newRepairCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
