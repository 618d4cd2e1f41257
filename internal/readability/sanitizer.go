package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Sanitize removes bad headers, forms, and iframes unconditionally,
// then conditionally removes tables/lists/divs by weight, link
// density, and element-count heuristics, with a sibling-context
// rescue, and finally drops every element left with empty text.
func Sanitize(root *goquery.Selection, candidates *Candidates, minTextLength int) {
	dropBadHeaders(root)
	dropUnconditional(root, "form", "iframe", "textarea")
	cleanConditionally(root, candidates, minTextLength, "table", "ul", "div")
	unwrapSingleCellTables(root)
	dropEmptyElements(root)
}

func dropBadHeaders(root *goquery.Selection) {
	var drop []*goquery.Selection
	root.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		n := Wrap(s)
		if ClassWeight(n) < 0 || LinkDensity(n) > 0.33 {
			drop = append(drop, s)
		}
	})
	for _, s := range drop {
		s.Remove()
	}
}

func dropUnconditional(root *goquery.Selection, tags ...string) {
	for _, tag := range tags {
		root.Find(tag).Remove()
	}
}

// cleanConditionally runs the conditional-cleaning rules over every
// element with the given tags. Each tag's elements are visited in
// reverse document order, tag by tag; the "allowed" set the sibling
// rescue populates is shared across all tags, so a rescued table can
// protect the uls and divs nested inside it.
func cleanConditionally(root *goquery.Selection, candidates *Candidates, minTextLength int, tags ...string) {
	var elems []*goquery.Selection
	for _, tag := range tags {
		var forTag []*goquery.Selection
		root.Find(tag).Each(func(_ int, s *goquery.Selection) { forTag = append(forTag, s) })
		for i := len(forTag) - 1; i >= 0; i-- {
			elems = append(elems, forTag[i])
		}
	}

	allowed := map[*html.Node]bool{}

	for _, el := range elems {
		node := Wrap(el)
		if node == nil || allowed[node.Key()] {
			continue
		}
		weight := float64(ClassWeight(node))
		contentScore := 0.0
		if cand, ok := candidates.Get(node); ok {
			contentScore = cand.Score
		}

		if weight+contentScore < 0 {
			el.Remove()
			continue
		}

		if CommaCount(node.TextContent()) >= 10 {
			continue
		}

		p := el.Find("p").Length()
		img := el.Find("img").Length()
		li := el.Find("li").Length() - 100
		embed := el.Find("embed").Length()
		input := el.Find("input").Length()

		contentLength := TextLength(node)
		density := LinkDensity(node)

		remove := false
		switch {
		case p > 0 && img > p:
			remove = true
		case li > p && node.Tag() != "UL" && node.Tag() != "OL":
			remove = true
		case float64(input) > float64(p)/3:
			remove = true
		case contentLength < minTextLength && (img == 0 || img > 2):
			remove = true
		case weight < 25 && density > 0.2:
			remove = true
		case weight >= 25 && density > 0.5:
			remove = true
		case (embed == 1 && contentLength < 75) || embed > 1:
			remove = true
		}

		if remove && rescueSiblings(el) {
			remove = false
			allowed[node.Key()] = true
			el.Find("table, ul, div").Each(func(_ int, d *goquery.Selection) {
				allowed[d.Get(0)] = true
			})
		}

		if remove {
			el.Remove()
		}
	}
}

// rescueSiblings finds the first non-empty following sibling and the
// first non-empty preceding sibling, skipping empty ones; if their
// combined text length exceeds 1000, the pending removal is cancelled.
func rescueSiblings(el *goquery.Selection) bool {
	total := 0
	found := false

	for sib := el.Next(); sib.Length() > 0; sib = sib.Next() {
		if l := TextLength(Wrap(sib)); l > 0 {
			total += l
			found = true
			break
		}
	}
	for sib := el.Prev(); sib.Length() > 0; sib = sib.Prev() {
		if l := TextLength(Wrap(sib)); l > 0 {
			total += l
			found = true
			break
		}
	}

	return found && total > 1000
}

// unwrapSingleCellTables replaces a <table> containing exactly one
// <tr> containing exactly one <td> with that cell's content, as a <p>
// if the cell holds only phrasing content, else a <div>.
func unwrapSingleCellTables(root *goquery.Selection) {
	var tables []*goquery.Selection
	root.Find("table").Each(func(_ int, s *goquery.Selection) { tables = append(tables, s) })

	for _, table := range tables {
		rows := table.Find("tr")
		if rows.Length() != 1 {
			continue
		}
		cells := rows.First().Find("td")
		if cells.Length() != 1 {
			continue
		}
		cell := cells.First()
		inner, err := cell.Html()
		if err != nil {
			continue
		}
		tag := "div"
		if cell.Find("table, ul, ol, div, blockquote, pre").Length() == 0 {
			tag = "p"
		}
		wrapped, err := goquery.NewDocumentFromReader(strings.NewReader("<" + tag + ">" + inner + "</" + tag + ">"))
		if err != nil {
			continue
		}
		table.ReplaceWithSelection(wrapped.Find(tag).First())
	}
}

// dropEmptyElements removes every element whose cleaned text content
// is empty, in reverse document order.
func dropEmptyElements(root *goquery.Selection) {
	var elems []*goquery.Selection
	root.Find("*").Each(func(_ int, s *goquery.Selection) { elems = append(elems, s) })

	for i := len(elems) - 1; i >= 0; i-- {
		el := elems[i]
		if el.Parent().Length() == 0 {
			continue
		}
		if Clean(el.Text()) == "" {
			el.Remove()
		}
	}
}
