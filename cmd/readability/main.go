// Command readability extracts the main article content from an HTML
// file or, given a URL, from an HTTP response body.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/arnegard/readability"
	"github.com/arnegard/readability/internal/domadapter"
	"github.com/arnegard/readability/internal/encoding"
	core "github.com/arnegard/readability/internal/readability"
)

var (
	verbose   bool
	baseURL   string
	domain    string
	partial   bool
	output    string
	xpathExpr string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "readability [file]",
		Short:         "Extract the main article content from an HTML document",
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&baseURL, "url", "u", "", "fetch this URL instead of reading a file, and use it as the base URL")
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "domain prefix/suffix to strip from meta content")
	cmd.Flags().BoolVar(&partial, "partial", false, "emit a single <div> fragment instead of a full document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&xpathExpr, "xpath", "x", "", "print elements matching this XPath query instead of the summary")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if baseURL == "" && len(args) == 0 {
		_ = cmd.Usage()
		return fmt.Errorf("a file argument or --url is required")
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	body, contentType, err := readInput(args)
	if err != nil {
		return err
	}

	reader, err := encoding.Sniff(body, contentType)
	if err != nil {
		logger.Warn("encoding sniff failed, using raw bytes", "error", err)
		reader = nil
	}
	if reader != nil {
		if decoded, err := io.ReadAll(reader); err == nil {
			body = decoded
		}
	}

	opts := []readability.Option{
		readability.WithDebug(verbose),
		readability.WithLogger(logger),
		readability.WithDomain(domain),
	}
	if baseURL != "" {
		opts = append(opts, readability.WithURL(baseURL))
	}

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if xpathExpr != "" {
		return runXPath(out, body)
	}

	doc := readability.New(body, opts...)
	summary, err := doc.Summary(partial)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, summary)
	return nil
}

// runXPath prints the outer HTML of every element matching the query,
// one per line, against the parsed (but unscored) document.
func runXPath(out io.Writer, body []byte) error {
	doc, err := domadapter.Parse(bytes.NewReader(body), baseURL)
	if err != nil {
		return err
	}
	matches, err := core.Wrap(doc.Selection).FindXPath(xpathExpr)
	if err != nil {
		return err
	}
	for _, m := range matches {
		htmlStr, err := goquery.OuterHtml(m.Selection())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, htmlStr)
	}
	return nil
}

func readInput(args []string) (body []byte, contentType string, err error) {
	if baseURL != "" {
		resp, err := http.Get(baseURL)
		if err != nil {
			return nil, "", err
		}
		defer resp.Body.Close()
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", err
		}
		return body, resp.Header.Get("Content-Type"), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	body, err = io.ReadAll(f)
	return body, "", err
}
