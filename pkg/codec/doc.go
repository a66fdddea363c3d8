// Package codec implements the verstamp binary version-stamp format.
//
// A stamp carries a software release's version metadata (product identifier,
// semantic version triple, build counter, release channel, free-form metadata
// tag, commit reference, and build timestamp) in a fixed 64-byte layout that
// independent implementations on different platforms encode and decode
// identically, byte for byte.
//
// # Stamp Format
//
// Stamps are serialized in a fixed binary layout:
//
//	[Tag(1)][Product(24)][Major(2)][Minor(2)][Patch(2)][Build(2)][Channel(1)][Metadata(15)][Commit(7)][Timestamp(8)]
//
// Fields:
//   - Tag: format-version tag identifying the layout generation (currently 1)
//   - Product: product identifier, NUL-padded, truncated to 24 bytes
//   - Major/Minor/Patch/Build: 16-bit unsigned integers (big-endian)
//   - Channel: single-character release channel tag
//   - Metadata: free-form tag, NUL-padded, truncated to 15 bytes
//   - Commit: source revision prefix, NUL-padded, truncated to 7 bytes
//   - Timestamp: 64-bit Unix seconds, UTC (big-endian)
//
// The total size is always 64 bytes; there are no variable-length fields and
// no length prefixes. Multi-byte integers are big-endian throughout.
//
// # Forward Compatibility
//
// The leading format-version tag versions the layout itself, independent of
// the product's semantic version. Decode checks it before reading anything
// else and rejects unknown tags with ErrUnsupportedFormatVersion, so a future
// layout change is detected instead of silently misparsed. The release
// channel byte, by contrast, is deliberately not validated on decode:
// unrecognized channel tags are preserved so new channels can be introduced
// without a format bump.
//
// # Usage
//
// Basic encoding and decoding:
//
//	codec := codec.NewVersionCodec()
//
//	stamp := codec.Encode(&record)          // always 64 bytes
//
//	record, err := codec.Decode(stamp)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(record.String())            // e.g. "ACME 1.2.3b (abc1234)"
//
// # Error Handling
//
// The failure set is closed and every error is detectable from the input
// alone: ErrBufferTooSmall (EncodeTo destination undersized),
// ErrLengthMismatch (decode input not exactly 64 bytes), and
// ErrUnsupportedFormatVersion (unknown layout tag). Match them with
// errors.Is. Encode itself cannot fail; over-length text is truncated, never
// rejected, and decode either returns a fully populated record or none.
//
// # Thread Safety
//
// All operations are pure functions of their inputs. VersionCodec instances
// hold no state and are safe for concurrent use; the encoder never mutates
// its input record.
package codec
