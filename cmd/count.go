package cmd

import (
	"github.com/awlabs/awmcp/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var countCmd = &cobra.Command{
	Use:     "count <bucket-id>",
	Short:   "Count events in a bucket, optionally within a time window.",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		bucketID, err := requireBucketID(args)
		if err != nil {
			return err
		}
		start, end := viper.GetString("start"), viper.GetString("end")
		count, err := client.GetEventCount(rootCtx, bucketID, start, end)
		if err != nil {
			return err
		}
		return outwriter.WriteCount(bucketID, count, start, end, viper.GetString("output-file"))
	},
}
