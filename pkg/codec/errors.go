package codec

import "errors"

// The codec's failure modes form a closed set. All are immediately detectable
// from the input alone and non-retryable; callers match them with errors.Is.
var (
	// ErrBufferTooSmall is returned by EncodeTo when the destination holds
	// fewer than EncodedSize bytes. It is encoding's only failure mode.
	ErrBufferTooSmall = errors.New("destination buffer too small")

	// ErrLengthMismatch is returned by Decode when the input is not exactly
	// EncodedSize bytes. The format is not self-delimiting; shorter and
	// longer buffers are both rejected.
	ErrLengthMismatch = errors.New("encoded stamp length mismatch")

	// ErrUnsupportedFormatVersion is returned by Decode when the first byte
	// is not the format-version tag this implementation understands. A
	// different layout generation is rejected rather than guessed at.
	ErrUnsupportedFormatVersion = errors.New("unsupported format version")
)
