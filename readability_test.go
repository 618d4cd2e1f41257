package readability

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<html>
<head>
	<title>City Council Approves The New Budget Plan | Example Gazette</title>
	<meta name="og:description" content="Budget approved after debate">
	<script>trackPageView();</script>
</head>
<body>
	<nav>Home / News / Politics</nav>
	<div class="comment">first post!</div>
	<article>
		<p>The city council voted on Tuesday to approve the new budget plan, ending a debate that had stretched across three separate sessions and drawn hundreds of residents to the chamber.</p>
		<p>Supporters of the plan argued that the increased funding for road repair was long overdue, pointing to years of deferred maintenance across the city's aging street grid.</p>
		<p>Opponents countered that the accompanying fee increases would fall hardest on small businesses, several of which sent representatives to speak during the public comment period.</p>
	</article>
	<footer>Copyright Example Gazette</footer>
</body>
</html>`

func TestSummaryExtractsArticle(t *testing.T) {
	doc := New([]byte(articlePage))

	out, err := doc.Summary(false)
	require.NoError(t, err)

	assert.Contains(t, out, "voted on Tuesday")
	assert.Contains(t, out, "road repair")
	assert.Contains(t, out, "public comment period")
	assert.NotContains(t, out, "first post!")
	assert.NotContains(t, out, "Copyright Example Gazette")
}

func TestSummaryPartial(t *testing.T) {
	doc := NewFromString(articlePage)

	out, err := doc.Summary(true)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<div"))
	assert.NotContains(t, out, "<html")
	assert.Contains(t, out, "voted on Tuesday")
}

func TestSummaryIsDeterministic(t *testing.T) {
	doc := New([]byte(articlePage))

	first, err := doc.Summary(false)
	require.NoError(t, err)
	second, err := doc.Summary(false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSummaryIncludesMetaBlock(t *testing.T) {
	doc := New([]byte(articlePage))

	out, err := doc.Summary(false)
	require.NoError(t, err)

	assert.Contains(t, out, "econtextmax meta og:description")
	assert.Contains(t, out, "Budget approved after debate")
}

func TestTitle(t *testing.T) {
	doc := New([]byte(articlePage))
	assert.Equal(t, "City Council Approves The New Budget Plan | Example Gazette", doc.Title())
}

func TestShortTitle(t *testing.T) {
	doc := New([]byte(articlePage))
	assert.Equal(t, "City Council Approves The New Budget Plan", doc.ShortTitle())
}

func TestContentStripsBadTagsAndScripts(t *testing.T) {
	doc := New([]byte(articlePage))

	content := doc.Content()

	assert.Contains(t, content, "voted on Tuesday")
	assert.NotContains(t, content, "Home / News / Politics")
	assert.NotContains(t, content, "Copyright Example Gazette")
	assert.NotContains(t, content, "trackPageView")
}

func TestArticleView(t *testing.T) {
	page := strings.Replace(articlePage, "<article>",
		`<p class="byline">By Dana Field</p><article>`, 1)
	doc := New([]byte(page))

	article, err := doc.Article()
	require.NoError(t, err)

	assert.Equal(t, "City Council Approves The New Budget Plan | Example Gazette", article.Title)
	assert.Equal(t, "City Council Approves The New Budget Plan", article.ShortTitle)
	assert.Contains(t, article.Summary, "voted on Tuesday")
	assert.Contains(t, article.Content, "voted on Tuesday")
	assert.Equal(t, "Dana Field", article.Byline)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 25, o.MinTextLength)
	assert.Equal(t, 250, o.RetryLength)
}

func TestOptionConstructors(t *testing.T) {
	o := DefaultOptions()
	for _, opt := range []Option{
		WithURL("https://example.com/a"),
		WithDomain("example.com"),
		WithMinTextLength(40),
		WithRetryLength(500),
		WithDebug(true),
	} {
		opt(&o)
	}

	assert.Equal(t, "https://example.com/a", o.URL)
	assert.Equal(t, "example.com", o.Domain)
	assert.Equal(t, 40, o.MinTextLength)
	assert.Equal(t, 500, o.RetryLength)
	assert.True(t, o.Debug)
}

func TestUnparseableWrapsCause(t *testing.T) {
	cause := errors.New("dom corrupted")
	err := NewUnparseable("summary", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "summary")
	assert.Contains(t, err.Error(), "dom corrupted")
}
