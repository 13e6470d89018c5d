package cmd

import (
	"fmt"
	"os"

	"github.com/awlabs/awmcp/internal/parquet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:     "export <bucket-id>",
	Short:   "Export events from a bucket to a Parquet file.",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		bucketID, err := requireBucketID(args)
		if err != nil {
			return err
		}
		outputFile := viper.GetString("output-file")
		if outputFile == "" {
			return fmt.Errorf("--output-file is required for parquet export")
		}
		limit := viper.GetInt("limit")
		events, err := client.GetEvents(rootCtx, bucketID,
			&limit, viper.GetString("start"), viper.GetString("end"))
		if err != nil {
			return err
		}
		records, err := parquet.ConvertEvents(bucketID, events)
		if err != nil {
			return err
		}
		if err := parquet.WriteEventsParquet(records, outputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d events to %s\n", len(records), outputFile)
		return nil
	},
}
