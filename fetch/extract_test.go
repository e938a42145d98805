package fetch

import (
	"strings"
	"testing"
)

func TestExtractHTMLTitle(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "simple title",
			html:     "<html><head><title>MIT License</title></head><body></body></html>",
			expected: "MIT License",
		},
		{
			name:     "title with whitespace",
			html:     "<html><head><title>  Spaced Title  </title></head></html>",
			expected: "Spaced Title",
		},
		{
			name:     "no title",
			html:     "<html><head></head><body>Content</body></html>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractHTMLTitle([]byte(tt.html))
			if got != tt.expected {
				t.Errorf("extractHTMLTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractMarkdownTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{
			name:     "H1 at start",
			markdown: "# MIT License\n\nPermission is hereby granted",
			expected: "MIT License",
		},
		{
			name:     "H1 after text",
			markdown: "Some text\n\n# Title Here\n\nMore content",
			expected: "Title Here",
		},
		{
			name:     "no H1",
			markdown: "## Section\n\nContent",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractMarkdownTitle(tt.markdown)
			if got != tt.expected {
				t.Errorf("extractMarkdownTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "excessive newlines",
			input: "Line 1\n\n\n\n\n\nLine 2",
		},
		{
			name:  "trailing spaces",
			input: "Line with trailing space   \nAnother line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanMarkdown(tt.input)
			if strings.Contains(got, "\n\n\n\n") {
				t.Error("cleanMarkdown should remove excessive newlines")
			}
			for _, line := range strings.Split(got, "\n") {
				if strings.HasSuffix(line, " ") {
					t.Errorf("cleanMarkdown should remove trailing spaces: %q", line)
				}
			}
		})
	}
}

func TestExtractor(t *testing.T) {
	e := NewExtractor()

	page := []byte(`<!DOCTYPE html>
<html>
<head><title>MIT License</title></head>
<body>
<nav>Home | Licenses | About</nav>
<main>
<h1>MIT License</h1>
<p>Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:</p>
<p>The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.</p>
<p>THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.</p>
</main>
<footer>Footer links</footer>
</body>
</html>`)

	result, err := e.Extract("https://example.com/licenses/MIT", page)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if result.Title != "MIT License" {
		t.Errorf("Title = %q, want %q", result.Title, "MIT License")
	}
	if !strings.Contains(result.Text, "Permission is hereby granted") {
		t.Error("Text should contain the license grant")
	}
	if !strings.Contains(result.Text, "WITHOUT WARRANTY OF ANY KIND") {
		t.Error("Text should contain the warranty disclaimer")
	}
}
