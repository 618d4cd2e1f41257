package readability

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Node is the DOM Adapter: a narrow handle over a single element backed
// by a *goquery.Selection. Its identity is the underlying *html.Node
// pointer, which is what the Candidate Scorer keys its map on.
type Node struct {
	sel *goquery.Selection
}

// Wrap adapts a *goquery.Selection (expected to hold exactly one
// element) into a Node.
func Wrap(sel *goquery.Selection) *Node {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return &Node{sel: sel}
}

// Selection exposes the underlying goquery handle for collaborators
// (the Sanitizer and Article Builder both need raw Selection methods
// the adapter does not wrap).
func (n *Node) Selection() *goquery.Selection { return n.sel }

// Raw returns the underlying *html.Node, whose pointer value is this
// node's identity.
func (n *Node) Raw() *html.Node {
	if n == nil || n.sel.Length() == 0 {
		return nil
	}
	return n.sel.Get(0)
}

// Key returns the stable identity used as a candidates-map key.
func (n *Node) Key() *html.Node { return n.Raw() }

func (n *Node) Tag() string {
	raw := n.Raw()
	if raw == nil || raw.Type != html.ElementNode {
		return ""
	}
	return strings.ToUpper(raw.Data)
}

func (n *Node) ID() string {
	v, _ := n.sel.Attr("id")
	return v
}

func (n *Node) Class() string {
	v, _ := n.sel.Attr("class")
	return v
}

func (n *Node) Style() string {
	v, _ := n.sel.Attr("style")
	return v
}

func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text is the element's full descendant text, unmodified.
func (n *Node) Text() string { return n.sel.Text() }

// TextContent is an alias for Text, named after the DOM method it
// stands in for.
func (n *Node) TextContent() string { return n.Text() }

// Tail is the text immediately following this node's closing tag, up
// to (not including) the next element sibling.
func (n *Node) Tail() string {
	raw := n.Raw()
	if raw == nil {
		return ""
	}
	var sb strings.Builder
	for sib := raw.NextSibling; sib != nil && sib.Type == html.TextNode; sib = sib.NextSibling {
		sb.WriteString(sib.Data)
	}
	return sb.String()
}

// LeadingText is the node's own text before its first child element.
func (n *Node) LeadingText() string {
	raw := n.Raw()
	if raw == nil {
		return ""
	}
	var sb strings.Builder
	for c := raw.FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		sb.WriteString(c.Data)
	}
	return sb.String()
}

// RemoveLeadingText detaches the text nodes LeadingText reads, so a
// caller that rehomes that text elsewhere does not leave it behind
// duplicated in place.
func (n *Node) RemoveLeadingText() {
	raw := n.Raw()
	if raw == nil {
		return
	}
	for c := raw.FirstChild; c != nil && c.Type == html.TextNode; {
		next := c.NextSibling
		raw.RemoveChild(c)
		c = next
	}
}

// RemoveTail detaches the text nodes Tail reads.
func (n *Node) RemoveTail() {
	raw := n.Raw()
	if raw == nil || raw.Parent == nil {
		return
	}
	parent := raw.Parent
	for sib := raw.NextSibling; sib != nil && sib.Type == html.TextNode; {
		next := sib.NextSibling
		parent.RemoveChild(sib)
		sib = next
	}
}

func (n *Node) Parent() *Node {
	p := n.sel.Parent()
	if p.Length() == 0 {
		return nil
	}
	return Wrap(p)
}

func (n *Node) Children() []*Node {
	var out []*Node
	n.sel.Children().Each(func(_ int, s *goquery.Selection) {
		out = append(out, Wrap(s.Eq(0)))
	})
	return out
}

func (n *Node) Ancestors() []*Node {
	var out []*Node
	p := n.sel.Parent()
	for p.Length() > 0 {
		out = append(out, Wrap(p))
		p = p.Parent()
	}
	return out
}

// Siblings returns either the preceding or following element siblings,
// depending on direction ("next" or "prev"), nearest sibling first.
func (n *Node) Siblings(direction string) []*Node {
	var out []*Node
	raw := n.Raw()
	if raw == nil {
		return out
	}
	if direction == "prev" {
		for sib := raw.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type == html.ElementNode {
				out = append(out, Wrap(goquery.NewDocumentFromNode(sib).Selection))
			}
		}
		return out
	}
	for sib := raw.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode {
			out = append(out, Wrap(goquery.NewDocumentFromNode(sib).Selection))
		}
	}
	return out
}

// FindDescendants returns every descendant element with the given tag
// name, in document order.
func (n *Node) FindDescendants(tag string) []*Node {
	var out []*Node
	n.sel.Find(tag).Each(func(_ int, s *goquery.Selection) {
		out = append(out, Wrap(s.Eq(0)))
	})
	return out
}

// FindXPath runs an XPath expression rooted at this node. It is an ad
// hoc structural query, distinct from the tag-name walks the core
// pipeline relies on, for callers that need expressiveness a plain
// Find(tag) cannot offer.
func (n *Node) FindXPath(query string) ([]*Node, error) {
	raw := n.Raw()
	if raw == nil {
		return nil, fmt.Errorf("FindXPath: nil node")
	}
	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("FindXPath: %w", err)
	}
	nodes := htmlquery.QuerySelectorAll(raw, expr)
	out := make([]*Node, 0, len(nodes))
	for _, hn := range nodes {
		if hn.Type != html.ElementNode {
			continue
		}
		out = append(out, Wrap(goquery.NewDocumentFromNode(hn).Selection))
	}
	return out, nil
}

// Detach removes this node and its subtree from the DOM.
func (n *Node) Detach() { n.sel.Remove() }

// InsertAt inserts other as a child of this node at the given index.
func (n *Node) InsertAt(index int, other *Node) {
	children := n.sel.Children()
	if index <= 0 || children.Length() == 0 {
		n.sel.PrependSelection(other.sel)
		return
	}
	if index >= children.Length() {
		n.sel.AppendSelection(other.sel)
		return
	}
	children.Eq(index).BeforeSelection(other.sel)
}

// ReplaceTag changes this node's tag name in place, preserving
// attributes and children, and returns the replacement node.
func (n *Node) ReplaceTag(newTag string) *Node {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fmt.Sprintf("<%s></%s>", newTag, newTag)))
	if err != nil {
		return n
	}
	replacement := doc.Find(newTag)
	for _, attr := range n.Raw().Attr {
		replacement.SetAttr(attr.Key, attr.Val)
	}
	if inner, err := n.sel.Html(); err == nil {
		replacement.SetHtml(inner)
	}
	n.sel.ReplaceWithSelection(replacement)
	return Wrap(replacement)
}

// MakeFragment parses an HTML fragment string into a detached Node
// subtree, not attached to any document.
func MakeFragment(htmlString string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlString))
	if err != nil {
		return nil, err
	}
	body := doc.Find("body").Children().First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("MakeFragment: empty fragment")
	}
	return Wrap(body), nil
}

// nextInDocumentOrder walks depth-first: children, then next sibling,
// then the nearest ancestor's next sibling.
func nextInDocumentOrder(sel *goquery.Selection, ignoreSelfAndKids bool) *goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	if !ignoreSelfAndKids {
		if first := sel.Children().First(); first.Length() > 0 {
			return first
		}
	}
	if next := sel.Next(); next.Length() > 0 {
		return next
	}
	for parent := sel.Parent(); parent.Length() > 0; parent = parent.Parent() {
		if next := parent.Next(); next.Length() > 0 {
			return next
		}
	}
	return nil
}

// walkElements visits every element under root in document order,
// calling fn on each. fn must not mutate the tree; callers that need
// to remove nodes should collect them here and detach after the walk.
func walkElements(root *goquery.Selection, fn func(*goquery.Selection)) {
	if root == nil || root.Length() == 0 {
		return
	}
	top := root.Get(0)
	cur := root
	for cur != nil && cur.Length() > 0 {
		if cur.Get(0).Type == html.ElementNode {
			fn(cur)
		}
		cur = nextInDocumentOrder(cur, false)
		if cur == nil {
			return
		}
		inside := false
		for n := cur.Get(0); n != nil; n = n.Parent {
			if n == top {
				inside = true
				break
			}
		}
		if !inside {
			return
		}
	}
}
