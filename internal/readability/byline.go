package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bylineSelectors orders candidate byline sources by confidence,
// highest first.
var bylineSelectors = []string{
	"meta[property='article:author']",
	"meta[property='og:article:author']",
	"meta[name='author']",
	"meta[name='sailthru.author']",
	"meta[name='byl']",
	"meta[name='dc.creator']",
	"meta[name='dcterms.creator']",
	"a[rel='author']",
	"[itemprop~='author']",
}

// Byline extracts an article's byline. It is a supplement to the
// scored core: a match sets Article.Byline but never enters the meta
// <p> block the Meta Collector builds.
func Byline(doc *goquery.Document) string {
	for _, selector := range bylineSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		var value string
		if strings.HasPrefix(selector, "meta") {
			value, _ = sel.Attr("content")
		} else {
			value = sel.Text()
		}
		if cleaned := cleanByline(value); cleaned != "" {
			return cleaned
		}
	}
	return bylineFromByline(doc)
}

// bylineFromByline falls back to scanning for elements whose class or
// id matches RegexpByline, and to "By ..." paragraph prefixes.
func bylineFromByline(doc *goquery.Document) string {
	var found string
	doc.Find("*[class], *[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		if !RegexpByline.MatchString(class) && !RegexpByline.MatchString(id) {
			return true
		}
		text := strings.TrimSpace(s.Text())
		if text == "" || len(text) > 100 {
			return true
		}
		found = cleanByline(text)
		return found == ""
	})
	if found != "" {
		return found
	}

	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		lower := strings.ToLower(strings.TrimSpace(text))
		if strings.HasPrefix(lower, "by ") || strings.HasPrefix(lower, "written by ") {
			found = cleanByline(text)
			return false
		}
		return true
	})
	return found
}

var bylinePrefixes = []string{"By ", "by ", "Author: ", "Written by ", "Posted by ", "Published by ", "Reported by "}
var bylineSuffixes = []string{" | Author", " | Writer", " | Reporter", " | Staff"}

func cleanByline(byline string) string {
	byline = strings.TrimSpace(byline)
	for _, prefix := range bylinePrefixes {
		if strings.HasPrefix(byline, prefix) {
			byline = strings.TrimSpace(byline[len(prefix):])
			break
		}
	}
	for _, suffix := range bylineSuffixes {
		if strings.HasSuffix(byline, suffix) {
			byline = strings.TrimSpace(byline[:len(byline)-len(suffix)])
			break
		}
	}
	return byline
}
