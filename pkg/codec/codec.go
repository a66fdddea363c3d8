package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// VersionCodec handles serialization and deserialization of version stamps.
type VersionCodec struct{}

// NewVersionCodec creates a new version stamp codec instance.
func NewVersionCodec() *VersionCodec {
	return &VersionCodec{}
}

// Encode serializes a record into the fixed 64-byte stamp format.
// Format: [Tag(1)][Product(24)][Major(2)][Minor(2)][Patch(2)][Build(2)][Channel(1)][Metadata(15)][Commit(7)][Timestamp(8)]
// Integers are big-endian; text slots are NUL-padded and truncated to width.
// Encode never fails: over-length text is truncated, not rejected, and the
// output length is always exactly EncodedSize. The record is not mutated.
func (c *VersionCodec) Encode(r *VersionRecord) []byte {
	buf := make([]byte, EncodedSize)
	// Cannot fail: buf is exactly EncodedSize.
	_, _ = c.EncodeTo(buf, r)
	return buf
}

// EncodeTo serializes a record into dst and returns the number of bytes
// written, always EncodedSize on success. It fails only with
// ErrBufferTooSmall when dst is shorter than EncodedSize.
func (c *VersionCodec) EncodeTo(dst []byte, r *VersionRecord) (int, error) {
	if len(dst) < EncodedSize {
		return 0, fmt.Errorf("encode stamp: %w: need %d bytes, have %d",
			ErrBufferTooSmall, EncodedSize, len(dst))
	}

	dst[offFormat] = FormatVersion
	putPadded(dst[offProduct:offProduct+ProductWidth], r.Product)
	binary.BigEndian.PutUint16(dst[offMajor:], r.Major)
	binary.BigEndian.PutUint16(dst[offMinor:], r.Minor)
	binary.BigEndian.PutUint16(dst[offPatch:], r.Patch)
	binary.BigEndian.PutUint16(dst[offBuild:], r.Build)
	dst[offChannel] = byte(r.Channel)
	putPadded(dst[offMetadata:offMetadata+MetadataWidth], r.Metadata)
	putPadded(dst[offCommit:offCommit+CommitWidth], r.CommitRef)
	binary.BigEndian.PutUint64(dst[offTimestamp:], r.Timestamp)

	return EncodedSize, nil
}

// Decode deserializes a 64-byte stamp into a VersionRecord.
// It fails with ErrLengthMismatch when the input is not exactly EncodedSize
// bytes, and with ErrUnsupportedFormatVersion when the format tag does not
// match. The tag is checked before any other field so a future layout cannot
// be misread as this one. The channel byte is preserved as read, recognized
// or not. On failure no record is returned.
func (c *VersionCodec) Decode(data []byte) (*VersionRecord, error) {
	if len(data) != EncodedSize {
		return nil, fmt.Errorf("decode stamp: %w: need %d bytes, have %d",
			ErrLengthMismatch, EncodedSize, len(data))
	}
	if data[offFormat] != FormatVersion {
		return nil, fmt.Errorf("decode stamp: %w: got tag %d, support %d",
			ErrUnsupportedFormatVersion, data[offFormat], FormatVersion)
	}

	return &VersionRecord{
		Product:   trimPadded(data[offProduct : offProduct+ProductWidth]),
		Major:     binary.BigEndian.Uint16(data[offMajor:]),
		Minor:     binary.BigEndian.Uint16(data[offMinor:]),
		Patch:     binary.BigEndian.Uint16(data[offPatch:]),
		Build:     binary.BigEndian.Uint16(data[offBuild:]),
		Channel:   Channel(data[offChannel]),
		Metadata:  trimPadded(data[offMetadata : offMetadata+MetadataWidth]),
		CommitRef: trimPadded(data[offCommit : offCommit+CommitWidth]),
		Timestamp: binary.BigEndian.Uint64(data[offTimestamp:]),
	}, nil
}

// putPadded copies s into the slot, truncating to the slot width and filling
// the remainder with NUL bytes. Truncation keeps the leading bytes.
func putPadded(slot []byte, s string) {
	n := copy(slot, s)
	for i := n; i < len(slot); i++ {
		slot[i] = 0
	}
}

// trimPadded returns the slot's text up to the first NUL byte. A slot with no
// NUL carries a full-width field with no padding.
func trimPadded(slot []byte) string {
	if i := bytes.IndexByte(slot, 0); i >= 0 {
		slot = slot[:i]
	}
	return string(slot)
}
