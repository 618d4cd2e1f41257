// Package sanitize cleans the attributes of a final output fragment.
// It runs once, after extraction returns, never inside the
// scoring/sanitization state machine.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// ArticlePolicy allows the element and attribute set an extracted
// article fragment legitimately needs, stripping everything else
// (onclick handlers, style attributes, tracking pixels' script
// wrappers, and so on).
func ArticlePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "b", "em", "i", "u", "s",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"table", "thead", "tbody", "tr", "td", "th",
		"div", "span", "figure", "figcaption",
		"a", "img",
	)

	p.AllowAttrs("href").OnElements("a")
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes").OnElements("img")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6", "div", "span", "p")
	p.AllowAttrs("title").Globally()

	return p
}

// KeepClasses reports whether class attributes survive sanitization;
// callers that want a bare-bones fragment can strip them afterward.
const KeepClasses = true

// Clean runs html through ArticlePolicy and returns the sanitized
// fragment.
func Clean(html string) string {
	return ArticlePolicy().Sanitize(html)
}
