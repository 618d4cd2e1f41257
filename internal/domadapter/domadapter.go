// Package domadapter parses HTML into a goquery document, resolves
// relative links against a base URL, and strips script/style content
// before the scoring core ever sees the DOM.
package domadapter

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse builds a goquery document from r, resolves relative hrefs and
// srcs against baseURL (falling back to a <base href> element in the
// document when baseURL is empty), and strips <script>/<style>
// elements so downstream stages never see executable or presentational
// content.
func Parse(r io.Reader, baseURL string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("domadapter: parse: %w", err)
	}

	resolved := baseURL
	if resolved == "" {
		if href, ok := doc.Find("base").First().Attr("href"); ok {
			resolved = href
		}
	}

	doc.Find("script, style").Remove()

	if resolved != "" {
		if err := resolveLinks(doc, resolved); err != nil {
			return nil, fmt.Errorf("domadapter: resolve base url: %w", err)
		}
	}

	return doc, nil
}

// resolveLinks rewrites every relative href/src in the document to an
// absolute URL against base.
func resolveLinks(doc *goquery.Document, base string) error {
	baseURL, err := url.Parse(base)
	if err != nil {
		return err
	}

	for _, pair := range []struct{ selector, attr string }{
		{"a[href]", "href"},
		{"img[src]", "src"},
		{"source[src]", "src"},
	} {
		doc.Find(pair.selector).Each(func(_ int, s *goquery.Selection) {
			raw, exists := s.Attr(pair.attr)
			if !exists || raw == "" || strings.HasPrefix(raw, "#") {
				return
			}
			ref, err := url.Parse(raw)
			if err != nil {
				return
			}
			s.SetAttr(pair.attr, baseURL.ResolveReference(ref).String())
		})
	}
	return nil
}
