package readability

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MetaBlock is the detached container the Meta Collector builds; it is
// inserted as the first child of <body> at the end of summary().
type MetaBlock struct {
	container *goquery.Selection
}

// CollectMeta runs both Meta Collector passes over doc and returns the
// resulting detached container.
func CollectMeta(doc *goquery.Document, domain string) *MetaBlock {
	frag, _ := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="meta product content descriptions"></div>`))
	container := frag.Find("div").First()

	seen := map[string]string{}

	doc.Find("meta").Each(func(_ int, meta *goquery.Selection) {
		prop, exists := meta.Attr("name")
		if !exists || prop == "" {
			prop, exists = meta.Attr("property")
			if !exists {
				return
			}
		}
		if _, ok := MetaProps[prop]; !ok {
			return
		}
		content, _ := meta.Attr("content")
		content = stripDomain(content, domain)
		content = RegexpTagStrip.ReplaceAllString(content, "")
		content = strings.TrimSpace(content)

		key := prop
		if idx := strings.Index(prop, ":"); idx != -1 {
			key = prop[idx+1:]
		}
		if prior, ok := seen[key]; ok && prior == content {
			return
		}
		seen[key] = content

		p, err := goquery.NewDocumentFromReader(strings.NewReader(
			fmt.Sprintf(`<p class="econtextmax meta %s">%s</p>`, prop, html.EscapeString(content))))
		if err != nil {
			return
		}
		container.PrependSelection(p.Find("p"))
	})

	itemSeen := map[string]struct{}{}
	doc.Find("[itemprop]").Each(func(_ int, el *goquery.Selection) {
		name, _ := el.Attr("itemprop")
		if _, ok := ItemProps[name]; !ok {
			return
		}
		if hasBadAncestor(el) {
			return
		}
		if _, ok := itemSeen[name]; ok {
			return
		}

		content, exists := el.Attr("content")
		if !exists || content == "" {
			content = el.Text()
		}
		content = Clean(RegexpTagStrip.ReplaceAllString(content, ""))
		itemSeen[name] = struct{}{}

		p, err := goquery.NewDocumentFromReader(strings.NewReader(
			fmt.Sprintf(`<p class="econtextmax itemprop %s">%s</p>`, name, html.EscapeString(content))))
		if err != nil {
			return
		}
		container.PrependSelection(p.Find("p"))
	})

	return &MetaBlock{container: container}
}

func hasBadAncestor(s *goquery.Selection) bool {
	for p := s.Parent(); p.Length() > 0; p = p.Parent() {
		tag := strings.ToLower(goquery.NodeName(p))
		if _, ok := BadTags[tag]; ok {
			return true
		}
	}
	return false
}

// InsertInto prepends the meta block as the first child of the given
// selection: the output document's <body>, or the fragment root when
// the output has no body.
func (m *MetaBlock) InsertInto(body *goquery.Selection) {
	if m == nil || m.container == nil || m.container.Children().Length() == 0 {
		return
	}
	body.PrependSelection(m.container)
}

// stripDomain case-insensitively removes a configured domain prefix
// and/or suffix from s.
func stripDomain(s, domain string) string {
	d := strings.TrimSpace(domain)
	if d == "" {
		return s
	}
	lowerD := strings.ToLower(d)
	if lower := strings.ToLower(s); strings.HasPrefix(lower, lowerD) {
		s = s[len(d):]
	}
	if lower := strings.ToLower(s); strings.HasSuffix(lower, lowerD) {
		s = s[:len(s)-len(d)]
	}
	return strings.TrimSpace(s)
}
