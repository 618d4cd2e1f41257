package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseFunc returns a fresh DOM for the original input. The Driver
// calls it once per pass, since the DOM is mutated in place by the
// Pruner, Div→P transform, and Sanitizer.
type ParseFunc func() (*goquery.Document, error)

// RunOptions configures a Driver pass.
type RunOptions struct {
	Domain        string
	MinTextLength int
	RetryLength   int
	Partial       bool
}

// Run is the outer retry loop: it runs the pipeline once "ruthlessly"
// and, if the result is too short, a second time with unlikely-
// candidate removal disabled.
func Run(parse ParseFunc, opts RunOptions) (string, error) {
	minTextLength := opts.MinTextLength
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	retryLength := opts.RetryLength
	if retryLength <= 0 {
		retryLength = DefaultRetryLength
	}

	ruthless := true
	var cleaned string
	var articleRoot, fullDoc *goquery.Selection

	for {
		doc, err := parse()
		if err != nil {
			return "", WrapError(err, ParseErrorType, "Run")
		}

		for tag := range BadTags {
			doc.Find(tag).Remove()
		}
		doc.Find("body").Each(func(_ int, s *goquery.Selection) { s.SetAttr("id", "readabilityBody") })

		root := doc.Selection
		if ruthless {
			PruneUnlikelyCandidates(root)
		}
		NormalizeDivsToParagraphs(root)

		candidates := Score(root, minTextLength)
		best, selErr := Select(candidates)

		switch {
		case selErr == nil:
			articleRoot, fullDoc = BuildArticle(best, candidates, opts.Partial)
		case ruthless:
			ruthless = false
			continue
		default:
			articleRoot, fullDoc = fallbackArticle(doc, opts.Partial)
		}

		Sanitize(articleRoot, candidates, minTextLength)

		cleaned, err = serialize(articleRoot, fullDoc)
		if err != nil {
			return "", err
		}

		if ruthless && len(cleaned) < retryLength {
			ruthless = false
			continue
		}
		break
	}

	if metaDoc, err := parse(); err == nil {
		meta := CollectMeta(metaDoc, opts.Domain)
		target := articleRoot
		if fullDoc != nil {
			if body := fullDoc.Find("body"); body.Length() > 0 {
				target = body
			}
		}
		meta.InsertInto(target)
	}

	return serialize(articleRoot, fullDoc)
}

func serialize(articleRoot, fullDoc *goquery.Selection) (string, error) {
	if fullDoc != nil {
		html, err := goquery.OuterHtml(fullDoc)
		if err != nil {
			return "", WrapError(err, ExtractionErrorType, "serialize")
		}
		return html, nil
	}
	html, err := goquery.OuterHtml(articleRoot)
	if err != nil {
		return "", WrapError(err, ExtractionErrorType, "serialize")
	}
	return strings.TrimSpace(html), nil
}
