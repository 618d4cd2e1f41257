package readability

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PruneUnlikelyCandidates walks every element in document order and
// detaches those whose class/id marks them as navigation, ads,
// comments, footers, legal text, social chrome, or video chrome,
// unless a rescue token is also present. html and body are exempt.
func PruneUnlikelyCandidates(root *goquery.Selection) {
	var toRemove []*goquery.Selection

	walkElements(root, func(s *goquery.Selection) {
		tag := strings.ToLower(goquery.NodeName(s))
		if tag == "html" || tag == "body" {
			return
		}
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		key := class + " " + id
		if len(key) < 2 {
			return
		}
		if RegexpUnlikelyCandidates.MatchString(key) && !RegexpOkMaybeItsACandidate.MatchString(key) {
			toRemove = append(toRemove, s)
			return
		}
		if style, exists := s.Attr("style"); exists && RegexpNegativeStyles.MatchString(style) {
			toRemove = append(toRemove, s)
		}
	})

	for _, s := range toRemove {
		s.Remove()
	}
}

// NormalizeDivsToParagraphs runs both Div→P passes over every <div>
// descendant of root.
func NormalizeDivsToParagraphs(root *goquery.Selection) {
	retagBlocklessDivs(root)
	splitDivText(root)
}

// retagBlocklessDivs retags a <div> as <p> when none of its direct
// children's serialized HTML contains a true block tag.
func retagBlocklessDivs(root *goquery.Selection) {
	var divs []*goquery.Selection
	root.Find("div").Each(func(_ int, s *goquery.Selection) { divs = append(divs, s) })

	for _, div := range divs {
		var childHTML strings.Builder
		div.Contents().Each(func(_ int, c *goquery.Selection) {
			if h, err := goquery.OuterHtml(c); err == nil {
				childHTML.WriteString(h)
			}
		})
		if !RegexpDivToPElements.MatchString(childHTML.String()) {
			Wrap(div).ReplaceTag("p")
		}
	}
}

// splitDivText wraps each remaining <div>'s own leading text and each
// child's trailing text into new <p> elements, and detaches <br>
// children.
func splitDivText(root *goquery.Selection) {
	var divs []*goquery.Selection
	root.Find("div").Each(func(_ int, s *goquery.Selection) { divs = append(divs, s) })

	for _, div := range divs {
		node := Wrap(div)
		if leading := node.LeadingText(); strings.TrimSpace(leading) != "" {
			p, err := goquery.NewDocumentFromReader(strings.NewReader("<p>" + html.EscapeString(leading) + "</p>"))
			if err == nil {
				node.RemoveLeadingText()
				div.PrependSelection(p.Find("p"))
			}
		}

		var children []*goquery.Selection
		div.Children().Each(func(_ int, c *goquery.Selection) { children = append(children, c) })
		for _, c := range children {
			cn := Wrap(c)
			tail := cn.Tail()
			if strings.TrimSpace(tail) != "" {
				p, err := goquery.NewDocumentFromReader(strings.NewReader("<p>" + html.EscapeString(tail) + "</p>"))
				if err == nil {
					cn.RemoveTail()
					c.AfterSelection(p.Find("p"))
				}
			}
		}

		div.Find("br").Remove()
	}
}
