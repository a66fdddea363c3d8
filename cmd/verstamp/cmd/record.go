package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verstamp/verstamp/pkg/codec"
)

// addRecordFlags registers the stamp field flags shared by encode and stamp.
func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("product", "", "Product identifier (truncated to 24 bytes on the wire)")
	cmd.Flags().String("version", "0.0.0", "Semantic version as major.minor.patch")
	cmd.Flags().Uint16("build", 0, "Build counter")
	cmd.Flags().String("channel", "dev", "Release channel (name or single-character tag)")
	cmd.Flags().String("metadata", "", "Metadata tag (truncated to 15 bytes on the wire)")
	cmd.Flags().String("commit", "", "Commit reference prefix (truncated to 7 bytes on the wire)")
	cmd.Flags().Uint64("timestamp", 0, "Build timestamp as Unix seconds (default: now)")
}

// recordFromFlags builds a VersionRecord from the flags registered by
// addRecordFlags.
func recordFromFlags(cmd *cobra.Command) (*codec.VersionRecord, error) {
	product, _ := cmd.Flags().GetString("product")
	version, _ := cmd.Flags().GetString("version")
	build, _ := cmd.Flags().GetUint16("build")
	channelFlag, _ := cmd.Flags().GetString("channel")
	metadata, _ := cmd.Flags().GetString("metadata")
	commit, _ := cmd.Flags().GetString("commit")
	timestamp, _ := cmd.Flags().GetUint64("timestamp")

	major, minor, patch, err := parseVersionTriple(version)
	if err != nil {
		return nil, err
	}

	channel, err := parseChannelArg(channelFlag)
	if err != nil {
		return nil, err
	}

	if timestamp == 0 {
		timestamp = uint64(time.Now().Unix())
	}

	return &codec.VersionRecord{
		Product:   product,
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Build:     build,
		Channel:   channel,
		Metadata:  metadata,
		CommitRef: commit,
		Timestamp: timestamp,
	}, nil
}

// parseVersionTriple parses "major.minor.patch" into three 16-bit values.
func parseVersionTriple(s string) (major, minor, patch uint16, err error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}

	nums := make([]uint16, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid version %q: %w", s, err)
		}
		nums[i] = uint16(v)
	}
	return nums[0], nums[1], nums[2], nil
}

// parseChannelArg resolves a channel name or tag. Unrecognized single
// characters pass through raw, like the wire format itself.
func parseChannelArg(s string) (codec.Channel, error) {
	if s == "" {
		return 0, fmt.Errorf("channel is required")
	}
	if c, ok := codec.ParseChannel(s); ok {
		return c, nil
	}
	if len(s) == 1 {
		return codec.Channel(s[0]), nil
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// readStampArg reads a stamp from a file path or, when no such file exists,
// treats the argument as the hex encoding of the stamp.
func readStampArg(arg string) ([]byte, error) {
	if _, err := os.Stat(arg); err == nil {
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read stamp file: %w", err)
		}
		return data, nil
	}

	data, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return nil, fmt.Errorf("argument is neither a readable file nor valid hex: %w", err)
	}
	return data, nil
}

// describeRecord renders a decoded record for terminal output.
func describeRecord(rec *codec.VersionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product:   %s\n", orDash(rec.Product))
	fmt.Fprintf(&b, "Version:   %d.%d.%d\n", rec.Major, rec.Minor, rec.Patch)
	fmt.Fprintf(&b, "Build:     %d\n", rec.Build)
	fmt.Fprintf(&b, "Channel:   %s (%c)\n", rec.Channel.Name(), rune(rec.Channel))
	fmt.Fprintf(&b, "Metadata:  %s\n", orDash(rec.Metadata))
	fmt.Fprintf(&b, "Commit:    %s\n", orDash(rec.CommitRef))
	fmt.Fprintf(&b, "Built:     %s (%d)\n", rec.BuildTime().Format(time.RFC3339), rec.Timestamp)
	fmt.Fprintf(&b, "Display:   %s\n", rec.String())
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
