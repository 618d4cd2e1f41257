package readability

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawTitle(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><title>  My Article  </title></head><body></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "My Article", RawTitle(doc))
}

func TestShortenTitleHierarchicalSeparator(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	full := "Article Headline About Something Long | Example News Site"
	got := ShortenTitle(doc, full)
	assert.Equal(t, "Article Headline About Something Long", got)
}

func TestShortenTitleFallsBackWhenTooShortAfterSplit(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	full := "Ab Cd | Example News Site With A Rather Long Name"
	got := ShortenTitle(doc, full)
	// word count after drop-final-part is < 3, so it falls back to
	// dropping the first part instead.
	assert.Equal(t, "Example News Site With A Rather Long Name", got)
}

func TestShortenTitleColonFallback(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	full := "Breaking: city council approves new budget plan"
	got := ShortenTitle(doc, full)
	assert.Equal(t, "city council approves new budget plan", got)
}

func TestShortenTitleUsesSingleH1WhenTitleEmpty(t *testing.T) {
	html := `<html><body><h1>The One True Headline For This Page</h1></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	got := ShortenTitle(doc, "")
	assert.Equal(t, "The One True Headline For This Page", got)
}

func TestShortenTitleNoChangeWithoutSeparator(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body></body></html>`))
	require.NoError(t, err)

	full := "A Perfectly Normal Title With No Separators And Decent Length"
	got := ShortenTitle(doc, full)
	assert.Equal(t, full, got)
}
