package codec_test

import (
	"fmt"

	"github.com/verstamp/verstamp/pkg/codec"
)

func ExampleVersionCodec_Encode() {
	c := codec.NewVersionCodec()

	record := codec.VersionRecord{
		Product:   "ACME",
		Major:     1,
		Minor:     2,
		Patch:     3,
		Build:     7,
		Channel:   codec.ChannelRelease,
		CommitRef: "abc1234",
		Timestamp: 1700000000,
	}

	stamp := c.Encode(&record)
	fmt.Println(len(stamp))
	fmt.Println(stamp[0])
	// Output:
	// 64
	// 1
}

func ExampleVersionCodec_Decode() {
	c := codec.NewVersionCodec()

	stamp := c.Encode(&codec.VersionRecord{
		Product:   "ACME",
		Major:     1,
		Minor:     2,
		Patch:     3,
		Channel:   codec.ChannelBeta,
		CommitRef: "abc1234",
	})

	record, err := c.Decode(stamp)
	if err != nil {
		panic(err)
	}
	fmt.Println(record.String())
	// Output:
	// ACME 1.2.3b (abc1234)
}

func ExampleVersionRecord_String() {
	record := codec.VersionRecord{
		Product:   "ACME",
		Major:     1,
		Minor:     2,
		Patch:     3,
		Channel:   codec.ChannelRelease,
		CommitRef: "abc1234",
	}

	// Production builds omit the commit reference.
	fmt.Println(record.String())

	record.Channel = codec.ChannelBeta
	fmt.Println(record.String())
	// Output:
	// ACME 1.2.3r
	// ACME 1.2.3b (abc1234)
}
