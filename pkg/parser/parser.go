// Package parser reduces HTML text sources to the visible text that is
// matched against keywords.
package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// nonContentTags never contribute visible text.
const nonContentTags = "script,style,noscript,template,svg,iframe,head"

// blockTags start a new line so that text from neighbouring blocks is never
// glued into one match.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

type Parser struct {
	// Readability restricts extraction to the main article content.
	Readability bool
}

// IsHTMLPath reports whether a file name looks like an HTML document.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// IsHTMLContentType reports whether an HTTP Content-Type header is HTML.
func IsHTMLContentType(contentType string) bool {
	mediaType, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	mediaType = strings.TrimSpace(mediaType)
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// ExtractText returns the visible text of an HTML document, one line per
// block element. With Readability set, the main article is located first;
// rawURL is used by readability to resolve relative links and may be empty.
func (p *Parser) ExtractText(rawURL, html string) (string, error) {
	if p.Readability {
		article, err := p.extractArticle(rawURL, html)
		if err != nil {
			return "", err
		}
		html = article
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(nonContentTags).Remove()

	var lines, current []string
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = nil
		}
	}

	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			name := goquery.NodeName(c)
			switch {
			case name == "#text":
				if text := normalizeText(c.Text()); text != "" {
					current = append(current, text)
				}
			case blockTags[name]:
				flush()
				walk(c)
				flush()
			default:
				walk(c)
			}
		})
	}
	walk(doc.Selection)
	flush()

	return strings.Join(lines, "\n"), nil
}

// extractArticle uses go-readability to find the main content and returns
// it as HTML, with the title on top.
func (p *Parser) extractArticle(rawURL, html string) (string, error) {
	var pageURL *url.URL
	if rawURL != "" {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("invalid page URL: %w", err)
		}
		pageURL = parsed
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	var b strings.Builder
	if article.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(escapeText(article.Title))
		b.WriteString("</h1>")
	}
	b.WriteString(article.Content)
	return b.String(), nil
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
