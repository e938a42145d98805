package scan

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// identifierTag marks a license declaration inside a source file.
const identifierTag = "SPDX-License-Identifier:"

// maxScanLines bounds how deep into a file the detector looks before
// giving up.
const maxScanLines = 20

// Detection is one recognized license identifier tag.
type Detection struct {
	// Identifier is the expression following the tag.
	Identifier string
	// Line is the 1-based line the tag was found on.
	Line int
}

// Detector finds SPDX-License-Identifier tags. Go sources are parsed
// with tree-sitter and only their comments are searched, so a tag
// quoted inside a string literal is not mistaken for a declaration;
// any other file is scanned line by line. A Detector is not safe for
// concurrent use.
type Detector struct {
	parser *sitter.Parser
}

// NewDetector creates a detector.
func NewDetector() *Detector {
	p := sitter.NewParser()
	p.SetLanguage(golang.GetLanguage())
	return &Detector{parser: p}
}

// Detect returns the first identifier tag within the first 20 lines of
// content. Content that is not valid UTF-8 reports no detection.
func (d *Detector) Detect(ctx context.Context, name string, content []byte) (Detection, bool) {
	if !utf8.Valid(content) {
		return Detection{}, false
	}
	if filepath.Ext(name) == ".go" {
		return d.detectGo(ctx, content)
	}
	return detectLines(content)
}

// detectGo searches the comment nodes of a parsed Go source. When the
// parse itself fails the plain line scan is used instead.
func (d *Detector) detectGo(ctx context.Context, content []byte) (Detection, bool) {
	tree, err := d.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return detectLines(content)
	}
	defer tree.Close()

	var found Detection
	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if n.Type() == "comment" && int(n.StartPoint().Row) < maxScanLines {
			text := string(content[n.StartByte():n.EndByte()])
			for i, line := range strings.Split(text, "\n") {
				if id, ok := parseIdentifier(line); ok {
					found = Detection{Identifier: id, Line: int(n.StartPoint().Row) + 1 + i}
					return true
				}
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if walk(n.Child(i)) {
				return true
			}
		}
		return false
	}
	if walk(tree.RootNode()) {
		return found, true
	}
	return Detection{}, false
}

func detectLines(content []byte) (Detection, bool) {
	for i, line := range strings.Split(string(content), "\n") {
		if i >= maxScanLines {
			break
		}
		if id, ok := parseIdentifier(line); ok {
			return Detection{Identifier: id, Line: i + 1}, true
		}
	}
	return Detection{}, false
}

// parseIdentifier extracts the expression following the tag on one
// line, stripping a trailing comment closer.
func parseIdentifier(line string) (string, bool) {
	_, after, ok := strings.Cut(line, identifierTag)
	if !ok {
		return "", false
	}
	id := strings.TrimSpace(after)
	id = strings.TrimRight(id, "/*")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", false
	}
	return id, true
}
