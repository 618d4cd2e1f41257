// Package encoding sniffs the character encoding of raw input bytes
// and returns a reader that decodes them to UTF-8, so the extraction
// pipeline only ever sees UTF-8 text.
package encoding

import (
	"bytes"
	"io"

	"golang.org/x/net/html/charset"
)

// Sniff wraps body in a reader that transcodes it to UTF-8, using the
// declared contentType (an HTTP Content-Type header value, or "" if
// unknown) together with a byte-level sniff of the document itself.
func Sniff(body []byte, contentType string) (io.Reader, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, err
	}
	return reader, nil
}
