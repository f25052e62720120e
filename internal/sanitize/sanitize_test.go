package sanitize_test

import (
	"testing"

	"pinpost/internal/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestTextStripsMarkup(t *testing.T) {
	assert.Equal(t, "hi", sanitize.Text("<b>hi</b>"))
	assert.Equal(t, "nice shot", sanitize.Text("<script>alert(1)</script>nice shot"))
	assert.Equal(t, "plain", sanitize.Text("plain"))
	assert.Equal(t, "", sanitize.Text("<img src=x onerror=alert(1)>"))
}

func TestTextEscapesSpecialCharacters(t *testing.T) {
	assert.Equal(t, "a &lt; b &amp; c", sanitize.Text("a < b & c"))
}

func TestTextDoesNotReviveEncodedMarkup(t *testing.T) {
	// Entity-encoded input must stay escaped text, never become live tags.
	got := sanitize.Text("&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", got)
	assert.NotContains(t, got, "<script>")

	got = sanitize.Text("&lt;img src=x onerror=alert(1)&gt;")
	assert.NotContains(t, got, "<img")
}

func TestNameTrimsAndStrips(t *testing.T) {
	assert.Equal(t, "alice", sanitize.Name("  alice  "))
	assert.Equal(t, "bob", sanitize.Name("<i>bob</i>"))
	assert.Equal(t, "", sanitize.Name("   "))
	assert.Equal(t, "", sanitize.Name("<b> </b>"))
}
