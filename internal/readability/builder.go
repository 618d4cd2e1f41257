package readability

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BuildDocument creates the output root for summary(). When partial is
// true the root is a bare <div>; otherwise the factory builds
// <html><body><div id="readability-content"></div></body></html> and
// the returned Selection addresses the inner div by a named,
// re-findable path rather than a positional index, so the factory's
// shape and this addressing path cannot drift apart.
func BuildDocument(partial bool) (root *goquery.Selection, full *goquery.Selection) {
	if partial {
		doc, _ := goquery.NewDocumentFromReader(strings.NewReader(`<div></div>`))
		return doc.Find("div").First(), nil
	}
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div id="readability-content"></div></body></html>`))
	return doc.Find("body").Children().First(), doc.Selection
}

// BuildArticle gathers best's eligible siblings into a freshly built
// output root and returns both that root and, for the full-document
// path, the <html> wrapper it lives in.
func BuildArticle(best *Candidate, candidates *Candidates, partial bool) (*goquery.Selection, *goquery.Selection) {
	root, full := BuildDocument(partial)

	threshold := math.Max(10, best.Score*0.2)

	var siblings []*goquery.Selection
	parent := best.Node.Parent()
	if parent == nil {
		siblings = []*goquery.Selection{best.Node.Selection()}
	} else {
		parent.Selection().Children().Each(func(_ int, s *goquery.Selection) {
			siblings = append(siblings, s)
		})
	}

	bestKey := best.Node.Key()
	for _, sib := range siblings {
		node := Wrap(sib)
		if node == nil {
			continue
		}
		include := node.Key() == bestKey
		if !include {
			if cand, ok := candidates.Get(node); ok && cand.Score >= threshold {
				include = true
			}
		}
		if !include && node.Tag() == "P" {
			// The element's own leading text, not the whole subtree:
			// a paragraph that opens with a link contributes nothing
			// here no matter how long the link text is.
			text := node.LeadingText()
			density := LinkDensity(node)
			if len(text) > 80 && density < 0.25 {
				include = true
			} else if len(text) <= 80 && density == 0 && RegexpSentenceEnd.MatchString(text) {
				include = true
			}
		}
		if include {
			// Moved, not cloned: the Sanitizer looks candidates up by
			// element identity, so a clone here would orphan every
			// div/table/ul the Scorer already scored inside sib.
			root.AppendSelection(sib)
		}
	}

	return root, full
}

// fallbackArticle builds the same output shape as BuildArticle but
// from the whole <body> (or document root), for the Driver's
// no-candidate retry fallback.
func fallbackArticle(doc *goquery.Document, partial bool) (*goquery.Selection, *goquery.Selection) {
	root, full := BuildDocument(partial)

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	var children []*goquery.Selection
	body.Children().Each(func(_ int, c *goquery.Selection) { children = append(children, c) })
	for _, c := range children {
		root.AppendSelection(c)
	}

	return root, full
}
