package readability

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Candidate pairs an element with its running content score.
type Candidate struct {
	Node  *Node
	Score float64
}

// Candidates is the element->Candidate map the Scorer builds,
// keyed by element identity, plus the insertion order needed for
// deterministic link-density scaling.
type Candidates struct {
	byKey map[*html.Node]*Candidate
	order []*Candidate
}

// NewCandidates returns an empty candidate set.
func NewCandidates() *Candidates {
	return &Candidates{byKey: map[*html.Node]*Candidate{}}
}

// Ensure returns the existing Candidate for n, or creates one seeded
// with scoreNode(n).
func (c *Candidates) Ensure(n *Node) *Candidate {
	key := n.Key()
	if cand, ok := c.byKey[key]; ok {
		return cand
	}
	cand := &Candidate{Node: n, Score: scoreNode(n)}
	c.byKey[key] = cand
	c.order = append(c.order, cand)
	return cand
}

// Get looks up the Candidate for n without creating one.
func (c *Candidates) Get(n *Node) (*Candidate, bool) {
	if n == nil {
		return nil, false
	}
	cand, ok := c.byKey[n.Key()]
	return cand, ok
}

// ScaleByLinkDensity multiplies every candidate's score by
// (1 - link_density(elem)), in insertion order.
func (c *Candidates) ScaleByLinkDensity() {
	for _, cand := range c.order {
		cand.Score *= 1 - LinkDensity(cand.Node)
	}
}

// Best returns the highest-scored candidate, or nil if the set is
// empty.
func (c *Candidates) Best() *Candidate {
	var best *Candidate
	for _, cand := range c.order {
		if best == nil || cand.Score > best.Score {
			best = cand
		}
	}
	return best
}

// scoreNode computes a new candidate's seed score from its tag and
// class/id weight.
func scoreNode(n *Node) float64 {
	score := float64(ClassWeight(n))
	switch n.Tag() {
	case "DIV":
		score += 5
	case "PRE", "TD", "BLOCKQUOTE":
		score += 3
	case "ADDRESS", "OL", "UL", "DL", "DD", "DT", "LI", "FORM":
		score -= 3
	case "H1", "H2", "H3", "H4", "H5", "H6", "TH":
		score -= 5
	}
	return score
}

// Score walks every <p>, <pre>, <td> descendant of root and builds the
// candidate set, as described by the Candidate Scorer.
func Score(root *goquery.Selection, minTextLength int) *Candidates {
	candidates := NewCandidates()

	root.Find(strings.Join(TagsToScore, ", ")).Each(func(_ int, s *goquery.Selection) {
		parentSel := s.Parent()
		if parentSel.Length() == 0 {
			return
		}
		elem := Wrap(s)
		inner := Clean(elem.TextContent())
		if len(inner) < minTextLength {
			return
		}

		parent := Wrap(parentSel)
		parentCand := candidates.Ensure(parent)

		contentScore := 1 + float64(CommaCount(inner)) + math.Min(float64(len(inner))/100.0, 3)
		parentCand.Score += contentScore

		if gpSel := parentSel.Parent(); gpSel.Length() > 0 {
			gpCand := candidates.Ensure(Wrap(gpSel))
			gpCand.Score += contentScore / 2
		}
	})

	candidates.ScaleByLinkDensity()
	return candidates
}
