// Package render turns the service's markdown summaries into highlighted
// HTML for display.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/Krish2786/LegalMind-AI/internal/highlight"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// MarkdownToHTML converts markdown to HTML with GFM tables and code
// highlighting enabled. Summaries from the analysis service lean heavily on
// tables and headings.
func MarkdownToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// Summary renders a markdown summary and applies keyword severity
// highlighting. All display paths go through here so raw rendered HTML is
// never shown unprocessed.
func Summary(markdown string) (string, error) {
	h, err := MarkdownToHTML(markdown)
	if err != nil {
		return "", err
	}
	return highlight.Highlight(h), nil
}
