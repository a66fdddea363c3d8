package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "verstamp",
	Short: "verstamp - production version stamps",
	Long: `verstamp encodes, decodes, and publishes fixed 64-byte production
version stamps: product, semantic version, build counter, release channel,
metadata tag, commit reference, and build timestamp in a single
platform-independent blob.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Registry location shared by the publish/query commands
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the stamp registry")
}
