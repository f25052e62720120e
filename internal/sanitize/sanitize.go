// Package sanitize strips markup from user-submitted text. Names and
// comments are stored as plain text only; no tags survive.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes every HTML element from s, so "<b>hi</b>" comes back as
// "hi". The output is stored as the sanitizer emits it: special characters
// stay entity-escaped, which keeps entity-encoded input from turning back
// into literal markup.
func Text(s string) string {
	return policy.Sanitize(s)
}

// Name trims and sanitizes a display name.
func Name(s string) string {
	return strings.TrimSpace(Text(strings.TrimSpace(s)))
}
