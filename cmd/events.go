package cmd

import (
	"github.com/awlabs/awmcp/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var eventsCmd = &cobra.Command{
	Use:     "events <bucket-id>",
	Short:   "List events from a bucket, newest first.",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		bucketID, err := requireBucketID(args)
		if err != nil {
			return err
		}
		limit := viper.GetInt("limit")
		events, err := client.GetEvents(rootCtx, bucketID,
			&limit, viper.GetString("start"), viper.GetString("end"))
		if err != nil {
			return err
		}
		maxSummaryWidth := outwriter.GetMaxTitleWidth(viper.GetInt("width"))
		return outwriter.WriteEvents(bucketID, events, outputFormat(),
			viper.GetString("output-file"), maxSummaryWidth)
	},
}
