package readability

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	hierarchicalSeparator     = regexp.MustCompile(` [\|\-\\/>»] `)
	hierarchicalSeparatorWide = regexp.MustCompile(` [\\/>»] `)
	dropFinalPart             = regexp.MustCompile(`(.*)[\|\-\\/>»] .*`)
	dropFirstPart             = regexp.MustCompile(`[^\|\-\\/>»]*[\|\-\\/>»](.*)`)
	stripAllSeparators        = regexp.MustCompile(`[\|\-\\/>»]+`)
)

// RawTitle returns the document's <title> text, otherwise untouched.
func RawTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// ShortenTitle strips a trailing or leading site-name segment from a
// hierarchical title ("Article Headline | Site Name"), falling back
// to the colon-separated and h1-based heuristics the title might need
// when it has no hierarchical separator at all, and to the untouched
// title whenever shortening would leave too little behind.
func ShortenTitle(doc *goquery.Document, full string) string {
	origTitle := full
	title := full
	hadWideSeparator := false

	switch {
	case hierarchicalSeparator.MatchString(title):
		hadWideSeparator = hierarchicalSeparatorWide.MatchString(title)
		title = dropFinalPart.ReplaceAllString(title, "$1")
		if WordCount(title) < 3 {
			title = dropFirstPart.ReplaceAllString(origTitle, "$1")
		}
	case strings.Contains(title, ": "):
		matchFound := false
		doc.Find("h1, h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.TrimSpace(s.Text()) == title {
				matchFound = true
				return false
			}
			return true
		})
		if !matchFound {
			if idx := strings.LastIndex(origTitle, ":"); idx != -1 {
				title = strings.TrimSpace(origTitle[idx+1:])
				if WordCount(title) < 3 {
					title = strings.TrimSpace(origTitle[:idx])
					if WordCount(title) > 5 {
						title = origTitle
					}
				}
			}
		}
	case title == "" || len(title) > 150 || len(title) < 15:
		h1s := doc.Find("h1")
		if h1s.Length() == 1 {
			title = strings.TrimSpace(h1s.Text())
		}
	}

	title = Clean(title)

	if WordCount(title) <= 4 {
		strippedWordCount := WordCount(stripAllSeparators.ReplaceAllString(origTitle, "")) - 1
		if !hadWideSeparator || WordCount(title) != strippedWordCount {
			title = origTitle
		}
	}

	return title
}
