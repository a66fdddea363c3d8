package cmd

import (
	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/registry"
)

// latestCmd represents the latest command
var latestCmd = &cobra.Command{
	Use:   "latest <product>",
	Short: "Show a product's latest published stamp",
	Long: `Show the most recently published stamp for a product.

Example:
  verstamp latest ACME`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		reg, err := registry.Open(dataDir)
		if err != nil {
			return err
		}
		defer reg.Close()

		rec, err := reg.Latest(args[0])
		if err != nil {
			return err
		}

		cmd.Print(describeRecord(rec))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
