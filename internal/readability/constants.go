package readability

import "regexp"

// ClassWeightPositive and ClassWeightNegative are the per-match weights
// class_weight applies for class and id attributes.
const (
	ClassWeightPositive = 25
	ClassWeightNegative = 35
)

// DefaultMinTextLength and DefaultRetryLength are the Driver's defaults
// when an Options value of zero is supplied.
const (
	DefaultMinTextLength = 25
	DefaultRetryLength   = 250
)

// TagsToScore lists the element tags the Candidate Scorer walks.
var TagsToScore = []string{"p", "pre", "td"}

// MetaProps is the fixed set of meta name/property values the Meta
// Collector's first pass recognizes.
var MetaProps = map[string]struct{}{
	"description":         {},
	"title":               {},
	"keywords":            {},
	"og:title":            {},
	"og:description":      {},
	"twitter:description": {},
	"twitter:title":       {},
}

// ItemProps is the fixed set of itemprop values the Meta Collector's
// second pass recognizes.
var ItemProps = map[string]struct{}{
	"model":       {},
	"brand":       {},
	"description": {},
	"name":        {},
}

// BadTags never appear in the output of summary() or content().
var BadTags = map[string]struct{}{
	"footer": {},
	"header": {},
	"nav":    {},
	"aside":  {},
	"script": {},
	"style":  {},
}

// DivToPElems are the tags whose presence inside a <div>'s direct
// children marks it a true block container, ineligible for div->p
// retagging.
var DivToPElems = []string{"a", "article", "blockquote", "dl", "div", "img", "ol", "p", "pre", "table", "ul", "main"}

// Regexp* are the exact, case-insensitive, pipe-delimited token sets.
// The lists are part of the external contract and must not drift.
var (
	RegexpUnlikelyCandidates = regexp.MustCompile(`(?i)ad-break|agegate|cart|combx|comment|community|disclaimer|disqus|extra|foot|header|hidden|legal|menu|modal|nav|pager|pagination|polic|popup|reference|remark|review|rss|shoutbox|sidebar|slideshow|sponsor|toc|tweet|twitter|video|warranty`)

	RegexpOkMaybeItsACandidate = regexp.MustCompile(`(?i)econtextmax|and|article|body|column|content|main|shadow|product|feature|detail|spec|about|text|story`)

	RegexpPositive = regexp.MustCompile(`(?i)econtextmax|and|article|body|column|content|main|shadow|product|feature|detail|spec|about|text|story|itemprop|story-content`)

	RegexpNegative = regexp.MustCompile(`(?i)ad-break|agegate|cart|combx|comment|community|disclaimer|disqus|extra|foot|header|hidden|legal|menu|modal|nav|pager|pagination|polic|popup|reference|remark|review|rss|shoutbox|sidebar|slideshow|sponsor|toc|tweet|twitter|video|warranty|ad|citation|feedback|form|fulfillment|item|placeholder|qa|question|return|small`)

	RegexpDivToPElements = regexp.MustCompile(`(?i)<(a|article|blockquote|dl|div|img|ol|p|pre|table|ul|main)`)

	RegexpNegativeStyles = regexp.MustCompile(`(?i)display:.?none|visibility:.?hidden`)

	// RegexpByline backs the byline extractor, not the scored core.
	RegexpByline = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)

	// RegexpSentenceEnd backs the Article Builder's short-paragraph
	// sentence-period heuristic.
	RegexpSentenceEnd = regexp.MustCompile(`\.( |$)`)

	// RegexpWhitespaceRun and RegexpNewlineRun back Clean: runs of
	// space/tab collapse to one space, whitespace runs containing a
	// newline collapse to one newline.
	RegexpWhitespaceRun = regexp.MustCompile(`[ \t]{2,}`)
	RegexpNewlineRun    = regexp.MustCompile(`\s*\n\s*`)

	// RegexpTagStrip strips embedded HTML tags from meta content, per the
	// Meta Collector.
	RegexpTagStrip = regexp.MustCompile(`<.*?>`)
)
