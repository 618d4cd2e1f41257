package readability

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneUnlikelyCandidatesRemovesMatch(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div class="sidebar">junk</div><p>keep me</p></body></html>`))
	require.NoError(t, err)

	PruneUnlikelyCandidates(doc.Selection)

	assert.Equal(t, 0, doc.Find("div.sidebar").Length())
	assert.Equal(t, 1, doc.Find("p").Length())
}

func TestPruneUnlikelyCandidatesRescuesOkToken(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div class="comment-content">keep</div></body></html>`))
	require.NoError(t, err)

	PruneUnlikelyCandidates(doc.Selection)

	assert.Equal(t, 1, doc.Find("div").Length(), "content token should rescue the comment match")
}

func TestPruneUnlikelyCandidatesExemptsHtmlAndBody(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html class="nav"><body class="menu"><p>text</p></body></html>`))
	require.NoError(t, err)

	PruneUnlikelyCandidates(doc.Selection)

	assert.Equal(t, 1, doc.Find("body").Length())
	assert.Equal(t, 1, doc.Find("p").Length())
}

func TestRetagBlocklessDivsToP(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div>just text, no block children</div></body></html>`))
	require.NoError(t, err)

	NormalizeDivsToParagraphs(doc.Selection)

	assert.Equal(t, 0, doc.Find("div").Length())
	assert.Equal(t, 1, doc.Find("p").Length())
}

func TestRetagBlocklessDivsKeepsDivWithBlockChild(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div><p>already a paragraph</p></div></body></html>`))
	require.NoError(t, err)

	NormalizeDivsToParagraphs(doc.Selection)

	assert.Equal(t, 1, doc.Find("div").Length(), "div with a block child stays a div")
}

func TestSplitDivTextDoesNotDuplicateLeadingText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div>leading text<span>inline</span></div></body></html>`))
	require.NoError(t, err)

	// force splitDivText's path directly: retagBlocklessDivs would
	// retag this div to <p> (no block-level child), so calling
	// splitDivText alone exercises the leading-text split on a genuine
	// <div>.
	splitDivText(doc.Selection)

	full := doc.Find("body").Text()
	assert.Equal(t, 1, strings.Count(full, "leading text"), "leading text must not be duplicated")

	p := doc.Find("div > p").First()
	require.Equal(t, 1, doc.Find("div > p").Length())
	assert.Equal(t, "leading text", strings.TrimSpace(p.Text()))
}

func TestSplitDivTextDoesNotDuplicateTailText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div><span>inline</span>trailing text</div></body></html>`))
	require.NoError(t, err)

	splitDivText(doc.Selection)

	full := doc.Find("body").Text()
	assert.Equal(t, 1, strings.Count(full, "trailing text"))
}

func TestSplitDivTextDropsBr(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div>one<br>two</div></body></html>`))
	require.NoError(t, err)

	splitDivText(doc.Selection)

	assert.Equal(t, 0, doc.Find("br").Length())
}
