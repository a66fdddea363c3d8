package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestVersionCodec_EncodeDecodeRoundTrip(t *testing.T) {
	codec := NewVersionCodec()

	testCases := []struct {
		name   string
		record VersionRecord
	}{
		{
			name: "typical release",
			record: VersionRecord{
				Product:   "ACME",
				Major:     1,
				Minor:     2,
				Patch:     3,
				Build:     7,
				Channel:   ChannelRelease,
				Metadata:  "",
				CommitRef: "abc1234",
				Timestamp: 1700000000,
			},
		},
		{
			name: "beta with metadata",
			record: VersionRecord{
				Product:   "ND-PRODVER",
				Major:     1,
				Minor:     0,
				Patch:     1,
				Build:     37,
				Channel:   ChannelBeta,
				Metadata:  "stripped",
				CommitRef: "7b5a2fe",
				Timestamp: 1699999999,
			},
		},
		{
			name:   "zero value",
			record: VersionRecord{},
		},
		{
			name: "max width text fields",
			record: VersionRecord{
				Product:   strings.Repeat("p", ProductWidth),
				Metadata:  strings.Repeat("m", MetadataWidth),
				CommitRef: strings.Repeat("c", CommitWidth),
				Channel:   ChannelAlpha,
			},
		},
		{
			name: "max integer values",
			record: VersionRecord{
				Product:   "MAX",
				Major:     0xFFFF,
				Minor:     0xFFFF,
				Patch:     0xFFFF,
				Build:     0xFFFF,
				Channel:   ChannelFactory,
				Timestamp: 0xFFFFFFFFFFFFFFFF,
			},
		},
		{
			name: "unrecognized channel tag preserved",
			record: VersionRecord{
				Product: "FUTURE",
				Channel: Channel('x'),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := codec.Encode(&tc.record)

			if len(encoded) != EncodedSize {
				t.Fatalf("Encoded length: got %d, want %d", len(encoded), EncodedSize)
			}

			decoded, err := codec.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if *decoded != tc.record {
				t.Errorf("Round-trip mismatch:\n got %+v\nwant %+v", *decoded, tc.record)
			}
		})
	}
}

func TestVersionCodec_Truncation(t *testing.T) {
	codec := NewVersionCodec()

	record := VersionRecord{
		Product:   strings.Repeat("P", ProductWidth+10),
		Metadata:  strings.Repeat("M", MetadataWidth+3),
		CommitRef: "abcdef0123456789",
		Channel:   ChannelDev,
	}

	decoded, err := codec.Decode(codec.Encode(&record))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// Truncation keeps the leading characters, with no padding visible.
	if want := record.Product[:ProductWidth]; decoded.Product != want {
		t.Errorf("Product: got %q, want %q", decoded.Product, want)
	}
	if want := record.Metadata[:MetadataWidth]; decoded.Metadata != want {
		t.Errorf("Metadata: got %q, want %q", decoded.Metadata, want)
	}
	if want := record.CommitRef[:CommitWidth]; decoded.CommitRef != want {
		t.Errorf("CommitRef: got %q, want %q", decoded.CommitRef, want)
	}

	// The encoder must not mutate its input.
	if len(record.Product) != ProductWidth+10 {
		t.Error("Encode mutated the source record")
	}
}

func TestVersionCodec_FixedLength(t *testing.T) {
	codec := NewVersionCodec()

	records := []VersionRecord{
		{},
		{Product: "x"},
		{Product: strings.Repeat("x", 100), Metadata: strings.Repeat("y", 100)},
	}

	for _, r := range records {
		if got := len(codec.Encode(&r)); got != EncodedSize {
			t.Errorf("Encode length for %+v: got %d, want %d", r, got, EncodedSize)
		}
	}
}

func TestVersionCodec_EncodeTo(t *testing.T) {
	codec := NewVersionCodec()
	record := VersionRecord{Product: "ACME", Major: 1}

	t.Run("exact size buffer", func(t *testing.T) {
		buf := make([]byte, EncodedSize)
		n, err := codec.EncodeTo(buf, &record)
		if err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		if n != EncodedSize {
			t.Errorf("Written bytes: got %d, want %d", n, EncodedSize)
		}
	})

	t.Run("dirty buffer is fully overwritten", func(t *testing.T) {
		buf := bytes.Repeat([]byte{0xAA}, EncodedSize)
		if _, err := codec.EncodeTo(buf, &record); err != nil {
			t.Fatalf("EncodeTo failed: %v", err)
		}
		if !bytes.Equal(buf, codec.Encode(&record)) {
			t.Error("EncodeTo into dirty buffer differs from fresh encode")
		}
	})

	t.Run("undersized buffer", func(t *testing.T) {
		buf := make([]byte, EncodedSize-1)
		n, err := codec.EncodeTo(buf, &record)
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Errorf("Expected ErrBufferTooSmall, got %v", err)
		}
		if n != 0 {
			t.Errorf("Written bytes on failure: got %d, want 0", n)
		}
	})
}

func TestVersionCodec_DecodeRejection(t *testing.T) {
	codec := NewVersionCodec()

	t.Run("length mismatch", func(t *testing.T) {
		for _, size := range []int{0, 1, EncodedSize - 1, EncodedSize + 1, 128} {
			_, err := codec.Decode(make([]byte, size))
			if !errors.Is(err, ErrLengthMismatch) {
				t.Errorf("Decode of %d bytes: expected ErrLengthMismatch, got %v", size, err)
			}
		}
	})

	t.Run("unsupported format version", func(t *testing.T) {
		for _, tag := range []byte{0, 2, 0xFF} {
			buf := make([]byte, EncodedSize)
			buf[0] = tag
			_, err := codec.Decode(buf)
			if !errors.Is(err, ErrUnsupportedFormatVersion) {
				t.Errorf("Decode with tag %d: expected ErrUnsupportedFormatVersion, got %v", tag, err)
			}
		}
	})
}

func TestVersionCodec_Endianness(t *testing.T) {
	codec := NewVersionCodec()

	record := VersionRecord{
		Product:   "ACME",
		Major:     0x0102,
		Minor:     0x0304,
		Patch:     0x0506,
		Build:     0x0708,
		Timestamp: 0x0102030405060708,
	}
	encoded := codec.Encode(&record)

	// Most significant byte first.
	if encoded[25] != 0x01 || encoded[26] != 0x02 {
		t.Errorf("Major bytes: got % x, want 01 02", encoded[25:27])
	}
	if encoded[27] != 0x03 || encoded[28] != 0x04 {
		t.Errorf("Minor bytes: got % x, want 03 04", encoded[27:29])
	}
	if encoded[31] != 0x07 || encoded[32] != 0x08 {
		t.Errorf("Build bytes: got % x, want 07 08", encoded[31:33])
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(encoded[56:64], want) {
		t.Errorf("Timestamp bytes: got % x, want % x", encoded[56:64], want)
	}
}

func TestVersionCodec_WireLayout(t *testing.T) {
	codec := NewVersionCodec()

	record := VersionRecord{
		Product:   "ACME",
		Major:     1,
		Minor:     2,
		Patch:     3,
		Build:     7,
		Channel:   ChannelRelease,
		CommitRef: "abc1234",
		Timestamp: 1700000000,
	}
	encoded := codec.Encode(&record)

	if encoded[0] != FormatVersion {
		t.Errorf("Format tag: got %d, want %d", encoded[0], FormatVersion)
	}
	if !bytes.Equal(encoded[1:5], []byte("ACME")) {
		t.Errorf("Product bytes: got % x", encoded[1:5])
	}
	// Product slot padding is all NUL.
	for i := 5; i < 25; i++ {
		if encoded[i] != 0 {
			t.Errorf("Product padding at offset %d: got %#x, want 0", i, encoded[i])
		}
	}
	if encoded[25] != 0x00 || encoded[26] != 0x01 {
		t.Errorf("Major bytes: got % x, want 00 01", encoded[25:27])
	}
	if encoded[33] != byte(ChannelRelease) {
		t.Errorf("Channel byte: got %q, want %q", encoded[33], byte(ChannelRelease))
	}
	if !bytes.Equal(encoded[49:56], []byte("abc1234")) {
		t.Errorf("Commit bytes: got % x", encoded[49:56])
	}
}

func TestChannel(t *testing.T) {
	known := []Channel{
		ChannelDev, ChannelInternal, ChannelAlpha, ChannelBeta,
		ChannelCandidate, ChannelRelease, ChannelFactory,
	}
	for _, c := range known {
		if !c.Known() {
			t.Errorf("Channel %q should be known", byte(c))
		}
		if c.Name() == "unknown" {
			t.Errorf("Channel %q should have a name", byte(c))
		}
	}

	if Channel('x').Known() {
		t.Error("Channel 'x' should not be known")
	}
	if got := Channel('x').Name(); got != "unknown" {
		t.Errorf("Channel 'x' name: got %q, want %q", got, "unknown")
	}

	parseCases := []struct {
		in   string
		want Channel
		ok   bool
	}{
		{"beta", ChannelBeta, true},
		{"b", ChannelBeta, true},
		{"release", ChannelRelease, true},
		{"factory", ChannelFactory, true},
		{"x", 0, false},
		{"nightly", 0, false},
		{"", 0, false},
	}
	for _, tc := range parseCases {
		got, ok := ParseChannel(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseChannel(%q): got (%q, %v), want (%q, %v)",
				tc.in, byte(got), ok, byte(tc.want), tc.ok)
		}
	}
}
