// Package render turns catalog data into Markdown, sanitized HTML, and plain
// text for terminal display.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
	textStripper  *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
	textStripper = bluemonday.StrictPolicy()
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// PlainText renders markdown and strips every tag, leaving the text a
// terminal can show. Whitespace runs collapse to single spaces.
func PlainText(src string) string {
	if src == "" {
		return ""
	}

	stripped := html.UnescapeString(textStripper.Sanitize(RenderMarkdown(src)))
	return strings.Join(strings.Fields(stripped), " ")
}

// FormatPrice renders a whole-unit price the way the listing shows it.
func FormatPrice(price int) string {
	return fmt.Sprintf("$%d", price)
}

// CatalogMarkdown renders products as a GFM table. Pipes inside cells are
// escaped so they cannot split columns.
func CatalogMarkdown(title string, products []model.Product) string {
	var buf strings.Builder
	if title != "" {
		buf.WriteString("# ")
		buf.WriteString(title)
		buf.WriteString("\n\n")
	}

	if len(products) == 0 {
		buf.WriteString("_No products found._\n")
		return buf.String()
	}

	buf.WriteString("| Product | Price | Description |\n")
	buf.WriteString("|---|---:|---|\n")
	for _, p := range products {
		fmt.Fprintf(&buf, "| %s | %s | %s |\n",
			escapeCell(p.Name), FormatPrice(p.Price), escapeCell(p.Description))
	}
	return buf.String()
}

// CatalogHTML renders products as sanitized HTML via CatalogMarkdown.
func CatalogHTML(title string, products []model.Product) string {
	return RenderMarkdown(CatalogMarkdown(title, products))
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
