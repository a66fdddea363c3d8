package cmd

import (
	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/codec"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file|hex>",
	Short: "Decode a stamp and print its fields",
	Long: `Decode a 64-byte stamp from a file or a hex string and print every
field it carries.

Example:
  verstamp inspect version.bin
  verstamp inspect 0141434d45...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readStampArg(args[0])
		if err != nil {
			return err
		}

		rec, err := codec.NewVersionCodec().Decode(data)
		if err != nil {
			return err
		}

		cmd.Print(describeRecord(rec))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
