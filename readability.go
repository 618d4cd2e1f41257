package readability

import (
	"bytes"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/arnegard/readability/internal/domadapter"
	core "github.com/arnegard/readability/internal/readability"
	"github.com/arnegard/readability/internal/sanitize"
)

// Document owns one HTML input and the options used to extract
// content from it. Every method call parses its own fresh DOM from the
// stored input and mutates only that DOM; the Document's own fields are
// only read, so calls do not share mutable state.
type Document struct {
	raw  []byte
	opts Options
}

// New constructs a Document from raw HTML bytes.
func New(html []byte, opts ...Option) *Document {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Document{raw: html, opts: o}
}

// NewFromString constructs a Document from an HTML string.
func NewFromString(html string, opts ...Option) *Document {
	return New([]byte(html), opts...)
}

func (d *Document) parse() (*goquery.Document, error) {
	return domadapter.Parse(bytes.NewReader(d.raw), d.opts.URL)
}

func (d *Document) log(msg string, args ...any) {
	if !d.opts.Debug {
		return
	}
	logger := d.opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug(msg, args...)
}

// Summary runs the content-scoring and sanitization pipeline and
// returns the resulting HTML. When partial is true the result is a
// single <div> subtree; otherwise it is a full document.
func (d *Document) Summary(partial bool) (string, error) {
	d.log("summary starting", "partial", partial, "bytes", len(d.raw))

	out, err := core.Run(d.parse, core.RunOptions{
		Domain:        d.opts.Domain,
		MinTextLength: d.opts.MinTextLength,
		RetryLength:   d.opts.RetryLength,
		Partial:       partial,
	})
	if err != nil {
		d.log("summary failed", "error", err)
		return "", NewUnparseable("summary", err)
	}

	d.log("summary finished", "output_len", len(out))
	return out, nil
}

// Title returns the document's raw <title> text.
func (d *Document) Title() string {
	doc, err := d.parse()
	if err != nil {
		return ""
	}
	return core.RawTitle(doc)
}

// ShortTitle returns Title with a trailing or leading site-name
// segment stripped, when the title has one.
func (d *Document) ShortTitle() string {
	doc, err := d.parse()
	if err != nil {
		return ""
	}
	return core.ShortenTitle(doc, core.RawTitle(doc))
}

// Byline returns the extracted article byline, or "" if none was
// found. It does not affect Summary's output.
func (d *Document) Byline() string {
	doc, err := d.parse()
	if err != nil {
		return ""
	}
	return core.Byline(doc)
}

// Content returns the full document body, with script/style and
// BadTags elements stripped and its attributes sanitized, independent
// of the best-candidate scoring Summary performs.
func (d *Document) Content() string {
	doc, err := d.parse()
	if err != nil {
		return ""
	}
	for tag := range core.BadTags {
		doc.Find(tag).Remove()
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	inner, err := body.Html()
	if err != nil {
		return ""
	}
	return sanitize.Clean(inner)
}

// Article runs all four operations plus the byline supplement and
// returns them together.
func (d *Document) Article() (*Article, error) {
	summary, err := d.Summary(false)
	if err != nil {
		return nil, err
	}

	doc, err := d.parse()
	if err != nil {
		return nil, NewUnparseable("article", err)
	}
	full := core.RawTitle(doc)

	return &Article{
		Title:      full,
		ShortTitle: core.ShortenTitle(doc, full),
		Content:    d.Content(),
		Summary:    summary,
		Byline:     core.Byline(doc),
	}, nil
}
