package codec

// FormatVersion is the layout generation tag written as the first byte of
// every encoded stamp. It versions the byte layout itself, independent of the
// product's semantic version. The untagged first-generation layout is not
// supported; any other tag value is rejected on decode.
const FormatVersion = 1

// Field widths for the fixed-size text slots. Text longer than the slot is
// truncated on encode, keeping the leading bytes.
const (
	ProductWidth  = 24
	MetadataWidth = 15
	CommitWidth   = 7
)

// EncodedSize is the total wire size of a stamp. Every field has a declared
// width, so no length prefixes are needed and the size never varies.
const EncodedSize = 1 + ProductWidth + 8 + 1 + MetadataWidth + CommitWidth + 8

// Byte offsets of each field within the encoded stamp.
const (
	offFormat    = 0
	offProduct   = 1
	offMajor     = offProduct + ProductWidth
	offMinor     = offMajor + 2
	offPatch     = offMinor + 2
	offBuild     = offPatch + 2
	offChannel   = offBuild + 2
	offMetadata  = offChannel + 1
	offCommit    = offMetadata + MetadataWidth
	offTimestamp = offCommit + CommitWidth
)
