package codec

import (
	"fmt"
	"strings"
)

// String renders the record for logs and diagnostics. The form is
//
//	PRODUCT MAJOR.MINOR.PATCHc-METADATA (COMMIT)
//
// where the product and its trailing space appear only when the product is
// non-empty, the metadata suffix only when metadata is non-empty, and the
// parenthesized commit reference only on non-release channels with a commit
// set; production builds omit the commit from the human-readable form. The
// build counter is never rendered. The output is display-only and is not
// parseable back into a record.
func (r *VersionRecord) String() string {
	var b strings.Builder
	if r.Product != "" {
		b.WriteString(r.Product)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%d.%d.%d%c", r.Major, r.Minor, r.Patch, rune(r.Channel))
	if r.Metadata != "" {
		b.WriteByte('-')
		b.WriteString(r.Metadata)
	}
	if r.Channel != ChannelRelease && r.CommitRef != "" {
		fmt.Fprintf(&b, " (%s)", r.CommitRef)
	}
	return b.String()
}

// Render is String bounded to maxLen bytes. When the rendering would exceed
// maxLen it returns the empty string, never a truncated one.
func (r *VersionRecord) Render(maxLen int) string {
	s := r.String()
	if len(s) > maxLen {
		return ""
	}
	return s
}
