package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/codec"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a version stamp",
	Long: `Encode version metadata into the fixed 64-byte stamp format.

The stamp is written as hex to stdout, or as raw bytes to --out.

Example:
  verstamp encode --product ACME --version 1.2.3 --build 7 --channel beta --commit abc1234
  verstamp encode --product ACME --version 1.2.3 --channel release --out version.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := recordFromFlags(cmd)
		if err != nil {
			return err
		}

		stamp := codec.NewVersionCodec().Encode(rec)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			cmd.Println(hex.EncodeToString(stamp))
			return nil
		}

		if err := os.WriteFile(out, stamp, 0644); err != nil {
			return fmt.Errorf("write stamp: %w", err)
		}
		cmd.Printf("Wrote %d-byte stamp to %s\n", len(stamp), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addRecordFlags(encodeCmd)
	encodeCmd.Flags().StringP("out", "o", "", "Write the raw stamp to this file instead of hex to stdout")
}
