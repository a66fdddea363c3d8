package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/registry"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history <product>",
	Short: "List a product's publication history, newest first",
	Long: `List the stamps published for a product, newest first.

Example:
  verstamp history ACME --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		limit, _ := cmd.Flags().GetInt("limit")

		reg, err := registry.Open(dataDir)
		if err != nil {
			return err
		}
		defer reg.Close()

		entries, err := reg.History(args[0], limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			cmd.Printf("No stamps published for %s\n", args[0])
			return nil
		}

		for _, e := range entries {
			cmd.Printf("%s  %s  %s\n",
				e.ID.String(),
				e.Record.BuildTime().Format(time.RFC3339),
				e.Record.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("limit", 0, "Maximum number of entries to list (0 = all)")
}
