package cmd

import (
	"github.com/awlabs/awmcp/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var bucketsCmd = &cobra.Command{
	Use:     "buckets",
	Short:   "List all buckets on the ActivityWatch server.",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		buckets, err := client.ListBuckets(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.WriteBuckets(buckets, outputFormat(), viper.GetString("output-file"))
	},
}
