// Package readability extracts the main article content from an HTML
// document using a heuristic content-scoring and sanitization
// pipeline: unlikely-candidate removal, block-element normalization,
// paragraph scoring with parent/grandparent propagation, link-density
// scaling, sibling aggregation, and conditional cleaning with a retry
// path when the result comes out too short.
//
// Basic usage:
//
//	doc := readability.New(htmlBytes, readability.WithURL("https://example.com/article"))
//	summary, err := doc.Summary(false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(summary)
//
// Advanced usage:
//
//	doc := readability.New(htmlBytes,
//		readability.WithDomain("example.com"),
//		readability.WithMinTextLength(40),
//		readability.WithDebug(true),
//	)
//	article, err := doc.Article()
package readability
