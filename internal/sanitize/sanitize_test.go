package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStripsEventHandlers(t *testing.T) {
	got := Clean(`<p onclick="steal()">hello</p>`)
	assert.Equal(t, `<p>hello</p>`, got)
}

func TestCleanStripsScriptButKeepsText(t *testing.T) {
	got := Clean(`<div><script>alert(1)</script><p>kept</p></div>`)
	assert.NotContains(t, got, "<script")
	assert.Contains(t, got, "kept")
}

func TestCleanKeepsLinkHref(t *testing.T) {
	got := Clean(`<a href="https://example.com/">link</a>`)
	assert.Contains(t, got, `href="https://example.com/"`)
	assert.Contains(t, got, "link")
}

func TestCleanKeepsImageAttrs(t *testing.T) {
	got := Clean(`<img src="photo.jpg" alt="a photo" onerror="x()">`)
	assert.Contains(t, got, `src="photo.jpg"`)
	assert.Contains(t, got, `alt="a photo"`)
	assert.NotContains(t, got, "onerror")
}

func TestCleanKeepsClasses(t *testing.T) {
	got := Clean(`<p class="econtextmax meta og:title">X</p>`)
	assert.Contains(t, got, `class="econtextmax meta og:title"`)
}

func TestCleanDropsStyleAttr(t *testing.T) {
	got := Clean(`<p style="display:none">hidden</p>`)
	assert.Equal(t, `<p>hidden</p>`, got)
}
