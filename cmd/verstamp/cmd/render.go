package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/codec"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <file|hex>",
	Short: "Decode a stamp and print its display string",
	Long: `Decode a stamp and print only the human-readable version string,
e.g. "ACME 1.2.3b (abc1234)".

With --max-len the command fails rather than print a truncated string.

Example:
  verstamp render version.bin
  verstamp render version.bin --max-len 32`,
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

		maxLen, _ := cmd.Flags().GetInt("max-len")
		if maxLen > 0 {
			s := rec.Render(maxLen)
			if s == "" {
				return fmt.Errorf("rendered string exceeds %d bytes", maxLen)
			}
			cmd.Println(s)
			return nil
		}

		cmd.Println(rec.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Int("max-len", 0, "Fail if the rendered string is longer than this (0 = no limit)")
}
