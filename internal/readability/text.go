package readability

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean normalizes s to Unicode NFKC form, collapses runs of
// two-or-more space/tab into a single space, then collapses
// whitespace around newlines into a single newline, then trims
// leading/trailing whitespace. NFKC folds compatibility characters
// (no-break spaces, fullwidth forms) before the whitespace rules run,
// so visually-identical text measures and dedupes identically.
func Clean(s string) string {
	s = norm.NFKC.String(s)
	s = RegexpWhitespaceRun.ReplaceAllString(s, " ")
	s = RegexpNewlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// TextLength is the length of the cleaned text content of a node.
func TextLength(n *Node) int {
	if n == nil {
		return 0
	}
	return len(Clean(n.TextContent()))
}

// ClassWeight scores an element's class and id attributes: each
// contributes independently, adding 25 per positive-token match and
// subtracting 35 per negative-token match.
func ClassWeight(n *Node) int {
	if n == nil {
		return 0
	}
	weight := 0
	for _, attr := range []string{n.Class(), n.ID()} {
		if attr == "" {
			continue
		}
		weight += ClassWeightPositive * len(RegexpPositive.FindAllString(attr, -1))
		weight -= ClassWeightNegative * len(RegexpNegative.FindAllString(attr, -1))
	}
	return weight
}

// WordCount counts whitespace-delimited words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// LinkDensity is the fraction of a node's cleaned text length
// contributed by descendant <a> elements.
func LinkDensity(n *Node) float64 {
	if n == nil {
		return 0
	}
	total := TextLength(n)
	if total == 0 {
		return 0
	}
	linkLen := 0
	for _, a := range n.FindDescendants("a") {
		linkLen += TextLength(a)
	}
	density := float64(linkLen) / float64(total)
	if density > 1 {
		density = 1
	}
	if density < 0 {
		density = 0
	}
	return density
}

// CommaCount counts commas in s.
func CommaCount(s string) int {
	return strings.Count(s, ",")
}
