package fetch

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Pre-compiled regexes to avoid ReDoS with runtime compilation.
var (
	scriptRe         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	excessiveLinesRe = regexp.MustCompile(`\n{4,}`)
)

// ExtractResult is the readable text recovered from a fetched page.
type ExtractResult struct {
	Title string
	Text  string
}

// Extractor reduces HTML pages to markdown license text. Readability
// isolates the main content; pages it cannot handle fall back to a
// script-and-style-stripped conversion of the whole document.
type Extractor struct {
	converter *md.Converter
}

// NewExtractor creates an extractor.
func NewExtractor() *Extractor {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Extractor{converter: converter}
}

// Extract converts the fetched body of rawURL to markdown text.
func (e *Extractor) Extract(rawURL string, body []byte) (*ExtractResult, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		base = &url.URL{}
	}

	var content, title string
	article, err := readability.FromReader(bytes.NewReader(body), base)
	if err != nil {
		content = basicHTMLCleanup(string(body))
		title = extractHTMLTitle(body)
	} else {
		content = article.Content
		title = article.Title
	}

	markdown, err := e.converter.ConvertString(content)
	if err != nil {
		return nil, fmt.Errorf("convert html: %w", err)
	}
	markdown = cleanMarkdown(markdown)

	if title == "" {
		title = extractMarkdownTitle(markdown)
	}

	return &ExtractResult{Title: title, Text: markdown}, nil
}

// extractHTMLTitle extracts the title element from HTML.
func extractHTMLTitle(content []byte) string {
	doc, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		return ""
	}

	var title string
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title != "" {
				return
			}
			extract(c)
		}
	}
	extract(doc)

	return title
}

// basicHTMLCleanup strips script and style blocks when readability
// cannot parse the page.
func basicHTMLCleanup(content string) string {
	content = scriptRe.ReplaceAllString(content, "")
	content = styleRe.ReplaceAllString(content, "")
	return content
}

// cleanMarkdown cleans up converted markdown.
func cleanMarkdown(content string) string {
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	return strings.TrimSpace(content)
}

// extractMarkdownTitle extracts the first H1 heading from markdown.
func extractMarkdownTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
