package codec

import (
	"time"
)

// Channel is the single-character release channel tag carried in a stamp.
// Seven values are defined; decode preserves any other byte as-is so that
// channels added later round-trip through older readers without a format bump.
type Channel byte

const (
	ChannelDev       Channel = 'd' // development/bench builds, not expected to function
	ChannelInternal  Channel = 'i' // internal-only use
	ChannelAlpha     Channel = 'a' // ready for functional testing
	ChannelBeta      Channel = 'b' // reliable but unreleased
	ChannelCandidate Channel = 'c' // release candidate
	ChannelRelease   Channel = 'r' // production build
	ChannelFactory   Channel = 'f' // factory test/updater software
)

// Known reports whether c is one of the seven defined channel tags.
func (c Channel) Known() bool {
	switch c {
	case ChannelDev, ChannelInternal, ChannelAlpha, ChannelBeta,
		ChannelCandidate, ChannelRelease, ChannelFactory:
		return true
	}
	return false
}

// Name returns a human-readable name for the channel, or "unknown" for tags
// outside the defined set.
func (c Channel) Name() string {
	switch c {
	case ChannelDev:
		return "dev"
	case ChannelInternal:
		return "internal"
	case ChannelAlpha:
		return "alpha"
	case ChannelBeta:
		return "beta"
	case ChannelCandidate:
		return "candidate"
	case ChannelRelease:
		return "release"
	case ChannelFactory:
		return "factory"
	}
	return "unknown"
}

// ParseChannel maps a channel name or single-character tag to a Channel.
// It accepts both "beta" and "b".
func ParseChannel(s string) (Channel, bool) {
	if len(s) == 1 {
		c := Channel(s[0])
		if c.Known() {
			return c, true
		}
		return 0, false
	}
	for _, c := range []Channel{
		ChannelDev, ChannelInternal, ChannelAlpha, ChannelBeta,
		ChannelCandidate, ChannelRelease, ChannelFactory,
	} {
		if c.Name() == s {
			return c, true
		}
	}
	return 0, false
}

// VersionRecord is a product release's version metadata. The in-memory record
// keeps the caller's full strings; text fields are truncated to their wire
// widths only when encoded.
type VersionRecord struct {
	Product string // product/part identifier, 24 bytes on the wire

	// Semantic version triple.
	Major uint16
	Minor uint16
	Patch uint16

	// Build counter, conventionally reset to 0 whenever the semantic
	// version changes. The codec does not enforce that convention.
	Build uint16

	Channel Channel

	Metadata  string // free-form tag for part numbers or variants, 15 bytes on the wire
	CommitRef string // leading characters of the source revision, empty when none applies

	// Timestamp is the build time as Unix seconds, UTC.
	Timestamp uint64
}

// NewVersionRecord creates a record for the given product and version triple,
// stamped with the current time and the dev channel.
func NewVersionRecord(product string, major, minor, patch uint16) *VersionRecord {
	return &VersionRecord{
		Product:   product,
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Channel:   ChannelDev,
		Timestamp: uint64(time.Now().Unix()),
	}
}

// BuildTime returns the stamp's build timestamp as a time.Time in UTC.
func (r *VersionRecord) BuildTime() time.Time {
	return time.Unix(int64(r.Timestamp), 0).UTC()
}
