package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/registry"
)

// stampCmd represents the stamp command
var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Encode a version stamp and publish it to the registry",
	Long: `Encode version metadata and publish it as the product's latest
stamp in the local registry.

Example:
  verstamp stamp --product ACME --version 1.2.3 --build 7 --channel beta --commit abc1234`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := recordFromFlags(cmd)
		if err != nil {
			return err
		}

		dataDir, _ := cmd.Flags().GetString("data-dir")
		reg, err := registry.Open(dataDir)
		if err != nil {
			return err
		}
		defer reg.Close()

		id, err := reg.Publish(rec)
		if err != nil {
			return err
		}

		cmd.Printf("Published %s as %s\n", rec.String(), id.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stampCmd)
	addRecordFlags(stampCmd)
	if err := stampCmd.MarkFlagRequired("product"); err != nil {
		panic(fmt.Sprintf("mark product flag required: %v", err))
	}
}
