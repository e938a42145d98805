package tagvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lexAll drains the token stream up to the first EOF.
func lexAll(input string) []Token {
	lex := NewLexer(input)
	var toks []Token
	for {
		tok := lex.NextToken()
		if tok.Type == TokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexer_NextToken_TagAndValue(t *testing.T) {
	assert.Equal(t, []Token{
		{Type: TokenDocName, Value: "DocumentName", Line: 1},
		{Type: TokenLine, Value: "glibc v2.11.1", Line: 1},
	}, lexAll("DocumentName: glibc v2.11.1"))
}

func TestLexer_NextToken_ValueShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   TokenType
		value string
	}{
		{"date", "Created: 2010-01-29T18:30:22Z", TokenDate, "2010-01-29T18:30:22Z"},
		{"tool", "Creator: Tool: LicenseFind-1.0", TokenToolValue, "Tool: LicenseFind-1.0"},
		{"organization", "Creator: Organization: ExampleCodeInspect ()", TokenOrgValue, "Organization: ExampleCodeInspect ()"},
		{"person", "Creator: Person: Jane Doe (jane.doe@example.com)", TokenPersonValue, "Person: Jane Doe (jane.doe@example.com)"},
		{"checksum keeps prefix", "FileChecksum: SHA1: d6a770ba38583ed4bb4525bd96e50461655d2758", TokenChecksum, "SHA1: d6a770ba38583ed4bb4525bd96e50461655d2758"},
		{"short digest is a plain line", "FileChecksum: SHA1: d6a770", TokenLine, "SHA1: d6a770"},
		{"no assertion keyword", "PackageDownloadLocation: NOASSERTION", TokenNoAssertion, "NOASSERTION"},
		{"none keyword", "PackageHomePage: NONE", TokenNone, "NONE"},
		{"file type keyword", "FileType: SOURCE", TokenSource, "SOURCE"},
		{"url after a colon stays a line", "PackageHomePage: http://ftp.gnu.org/gnu/glibc", TokenLine, "http://ftp.gnu.org/gnu/glibc"},
		{"plain line", "PackageVersion: 2.11.1", TokenLine, "2.11.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(tt.input)
			if len(toks) != 2 {
				t.Fatalf("lexAll(%q) returned %d tokens, want 2", tt.input, len(toks))
			}
			if toks[1].Type != tt.typ || toks[1].Value != tt.value {
				t.Errorf("value token = {%v %q}, want {%v %q}", toks[1].Type, toks[1].Value, tt.typ, tt.value)
			}
		})
	}
}

func TestLexer_NextToken_TextBlockSpansLines(t *testing.T) {
	input := "DocumentComment: <text>created by\nthe glibc team</text>\nDocumentName: glibc"
	assert.Equal(t, []Token{
		{Type: TokenDocComment, Value: "DocumentComment", Line: 1},
		{Type: TokenText, Value: "<text>created by\nthe glibc team</text>", Line: 1},
		{Type: TokenDocName, Value: "DocumentName", Line: 3},
		{Type: TokenLine, Value: "glibc", Line: 3},
	}, lexAll(input))
}

func TestLexer_NextToken_ExternalDocumentRef(t *testing.T) {
	input := "ExternalDocumentRef: DocumentRef-spdx-tool-2.1 https://spdx.org/spdxdocs/spdx-tools-v2.1 SHA1: d6a770ba38583ed4bb4525bd96e50461655d2758"
	assert.Equal(t, []Token{
		{Type: TokenExtDocRef, Value: "ExternalDocumentRef", Line: 1},
		{Type: TokenDocRefID, Value: "DocumentRef-spdx-tool-2.1", Line: 1},
		{Type: TokenDocURI, Value: "https://spdx.org/spdxdocs/spdx-tools-v2.1", Line: 1},
		{Type: TokenExtChecksum, Value: "SHA1: d6a770ba38583ed4bb4525bd96e50461655d2758", Line: 1},
	}, lexAll(input))
}

func TestLexer_NextToken_CommentsAndBlankLines(t *testing.T) {
	input := "# SPDX tag:value example\n\nSPDXVersion: SPDX-2.1\n"
	assert.Equal(t, []Token{
		{Type: TokenDocVersion, Value: "SPDXVersion", Line: 3},
		{Type: TokenLine, Value: "SPDX-2.1", Line: 3},
	}, lexAll(input))
}

func TestLexer_NextToken_UnknownTag(t *testing.T) {
	assert.Equal(t, []Token{
		{Type: TokenUnknownTag, Value: "SomeCustomTag", Line: 1},
		{Type: TokenLine, Value: "some value", Line: 1},
	}, lexAll("SomeCustomTag: some value"))
}

func TestLexer_NextToken_EmptyValueRecovers(t *testing.T) {
	assert.Equal(t, []Token{
		{Type: TokenDocName, Value: "DocumentName", Line: 1},
		{Type: TokenIllegal, Value: "Lexer error", Line: 1},
		{Type: TokenDocName, Value: "DocumentName", Line: 2},
		{Type: TokenLine, Value: "second", Line: 2},
	}, lexAll("DocumentName:\nDocumentName: second"))
}

func TestLexer_NextToken_IllegalByte(t *testing.T) {
	assert.Equal(t, []Token{
		{Type: TokenIllegal, Value: "Lexer error", Line: 1},
	}, lexAll("~"))
}

func TestLexer_NextToken_UnterminatedText(t *testing.T) {
	assert.Equal(t, []Token{
		{Type: TokenDocComment, Value: "DocumentComment", Line: 1},
	}, lexAll("DocumentComment: <text>never closed"))
}

func TestIsTag(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want bool
	}{
		{TokenDocVersion, true},
		{TokenSnippetLicenseInfo, true},
		{TokenLine, false},
		{TokenNoAssertion, false},
		{TokenEOF, false},
	}
	for _, tt := range tests {
		if got := IsTag(tt.typ); got != tt.want {
			t.Errorf("IsTag(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}
