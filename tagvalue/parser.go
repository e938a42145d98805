// Package tagvalue reads SPDX 2.1 documents in tag:value notation. The
// parser collects diagnostics instead of stopping at the first problem,
// and the builder enforces the cardinality and ordering rules the
// notation leaves implicit.
package tagvalue

import (
	"fmt"
	"regexp"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

var licenseRefRe = regexp.MustCompile(`^LicenseRef-.+`)

// Parser turns tag:value notation into a Document. It dispatches on the
// tag token with a single token of lookahead; when a value has the wrong
// shape the diagnostic is recorded and the offending token is left for
// the main loop to discard, so one malformed statement never poisons the
// statements after it.
//
// A Parser is not safe for concurrent use, but may be reused for any
// number of Parse calls.
type Parser struct {
	builder *Builder
	catalog *license.Catalog

	lex  *Lexer
	tok  Token
	doc  *spdx.Document
	msgs []string

	// The ArtifactOfProject tags form an optional group that must sit
	// directly behind an ArtifactOfProjectName; these carry the open
	// group across statements.
	artOpen bool
	artHome bool
	artURI  bool
}

// NewParser returns a parser that resolves license identifiers against
// cat. A nil catalog falls back to the bundled SPDX license list.
func NewParser(cat *license.Catalog) *Parser {
	if cat == nil {
		cat = license.DefaultCatalog()
	}
	return &Parser{builder: NewBuilder(cat), catalog: cat}
}

// Parse reads one SPDX document in tag:value notation. It always returns
// a document holding everything that could be understood, together with
// the parse diagnostics. When the notation itself was clean, the
// document-level validation findings are returned instead, so an empty
// slice means the document is both well-formed and valid.
func (p *Parser) Parse(input string) (*spdx.Document, []string) {
	p.doc = &spdx.Document{}
	p.msgs = nil
	p.artOpen = false
	p.artHome = false
	p.artURI = false
	p.builder.Reset()

	p.lex = NewLexer(input)
	p.next()
	for p.tok.Type != TokenEOF {
		p.statement()
	}
	p.builder.Reset()

	if len(p.msgs) > 0 {
		return p.doc, p.msgs
	}
	return p.doc, p.doc.Validate()
}

func (p *Parser) next() {
	p.tok = p.lex.NextToken()
}

// statement consumes one tag statement, or discards one stray token when
// the lookahead cannot start a statement. Any tag other than the two
// optional artifact members ends an open artifact group; a stray token
// ends it with a diagnostic.
func (p *Parser) statement() {
	t := p.tok
	switch {
	case IsTag(t.Type):
		if t.Type != TokenArtifactHome && t.Type != TokenArtifactURI {
			p.artOpen = false
		}
		p.next()
		p.dispatch(t)
	case t.Type == TokenUnknownTag:
		p.artOpen = false
		p.next()
		p.unknownTag(t)
	default:
		if p.artOpen {
			p.logf(msgArtifactOptOrder, t.Line)
			p.artOpen = false
		}
		p.next()
	}
}

func (p *Parser) dispatch(tag Token) {
	switch tag.Type {
	case TokenDocVersion:
		p.docVersion(tag)
	case TokenDocLicense:
		p.docLicense(tag)
	case TokenDocName:
		p.docName(tag)
	case TokenSPDXID:
		p.spdxID(tag)
	case TokenDocComment:
		p.docComment(tag)
	case TokenDocNamespace:
		p.docNamespace(tag)
	case TokenExtDocRef:
		p.extDocRef(tag)
	case TokenCreator:
		p.creator(tag)
	case TokenCreated:
		p.created(tag)
	case TokenCreatorComment:
		p.creatorComment(tag)
	case TokenLicenseListVersion:
		p.licenseListVersion(tag)
	case TokenReviewer:
		p.reviewer(tag)
	case TokenReviewDate:
		p.reviewDate(tag)
	case TokenReviewComment:
		p.reviewComment(tag)
	case TokenAnnotator:
		p.annotator(tag)
	case TokenAnnotationDate:
		p.annotationDate(tag)
	case TokenAnnotationComment:
		p.annotationComment(tag)
	case TokenAnnotationType:
		p.annotationType(tag)
	case TokenAnnotationRef:
		p.annotationRef(tag)
	case TokenPkgName:
		p.pkgName(tag)
	case TokenPkgVersion:
		p.pkgVersion(tag)
	case TokenPkgFileName:
		p.pkgFileName(tag)
	case TokenPkgSupplier:
		p.pkgSupplier(tag)
	case TokenPkgOriginator:
		p.pkgOriginator(tag)
	case TokenPkgDownload:
		p.pkgDownload(tag)
	case TokenPkgHomePage:
		p.pkgHome(tag)
	case TokenPkgVerifCode:
		p.pkgVerifCode(tag)
	case TokenPkgChecksum:
		p.pkgChecksum(tag)
	case TokenPkgSourceInfo:
		p.pkgSourceInfo(tag)
	case TokenPkgLicenseConcluded:
		p.pkgLicenseConcluded(tag)
	case TokenPkgLicenseFromFiles:
		p.pkgLicenseFromFiles(tag)
	case TokenPkgLicenseDeclared:
		p.pkgLicenseDeclared(tag)
	case TokenPkgLicenseComment:
		p.pkgLicenseComment(tag)
	case TokenPkgCopyright:
		p.pkgCopyright(tag)
	case TokenPkgSummary:
		p.pkgSummary(tag)
	case TokenPkgDescription:
		p.pkgDescription(tag)
	case TokenFileName:
		p.fileName(tag)
	case TokenFileType:
		p.fileType(tag)
	case TokenFileChecksum:
		p.fileChecksum(tag)
	case TokenFileLicenseConcluded:
		p.fileLicenseConcluded(tag)
	case TokenFileLicenseInfo:
		p.fileLicenseInfo(tag)
	case TokenFileCopyright:
		p.fileCopyright(tag)
	case TokenFileLicenseComment:
		p.fileLicenseComment(tag)
	case TokenFileComment:
		p.fileComment(tag)
	case TokenFileNotice:
		p.fileNotice(tag)
	case TokenFileContributor:
		p.fileContributor(tag)
	case TokenFileDependency:
		p.fileDependency(tag)
	case TokenArtifactName:
		p.artifactName(tag)
	case TokenArtifactHome:
		p.artifactHomePage(tag)
	case TokenArtifactURI:
		p.artifactURI(tag)
	case TokenLicenseID:
		p.licenseID(tag)
	case TokenLicenseText:
		p.licenseText(tag)
	case TokenLicenseName:
		p.licenseName(tag)
	case TokenLicenseCrossRef:
		p.licenseCrossRef(tag)
	case TokenLicenseComment:
		p.licenseComment(tag)
	case TokenSnippetSPDXID:
		p.snippetSPDXID(tag)
	case TokenSnippetName:
		p.snippetName(tag)
	case TokenSnippetComment:
		p.snippetComment(tag)
	case TokenSnippetCopyright:
		p.snippetCopyright(tag)
	case TokenSnippetLicenseComment:
		p.snippetLicenseComment(tag)
	case TokenSnippetFromFile:
		p.snippetFromFile(tag)
	case TokenSnippetLicenseConcluded:
		p.snippetLicenseConcluded(tag)
	case TokenSnippetLicenseInfo:
		p.snippetLicenseInfo(tag)
	}
}

func (p *Parser) unknownTag(tag Token) {
	if _, ok := p.takeLine(); !ok {
		return
	}
	p.logf(msgUnknownTag, tag.Value, tag.Line)
}

// takeLine consumes the lookahead when it is a single-line value.
func (p *Parser) takeLine() (Token, bool) {
	return p.take(TokenLine)
}

// takeText consumes the lookahead when it is a <text> block.
func (p *Parser) takeText() (Token, bool) {
	return p.take(TokenText)
}

// takeDate consumes the lookahead when it is a timestamp.
func (p *Parser) takeDate() (Token, bool) {
	return p.take(TokenDate)
}

// takeChecksum consumes the lookahead when it is a SHA1 checksum value,
// prefix included.
func (p *Parser) takeChecksum() (Token, bool) {
	return p.take(TokenChecksum)
}

func (p *Parser) take(want TokenType) (Token, bool) {
	if p.tok.Type != want {
		return Token{}, false
	}
	t := p.tok
	p.next()
	return t, true
}

// takeTextOrSentinel consumes a <text> block, NONE or NOASSERTION; the
// copyright style properties accept all three.
func (p *Parser) takeTextOrSentinel() (Token, bool) {
	switch p.tok.Type {
	case TokenText, TokenNone, TokenNoAssertion:
		t := p.tok
		p.next()
		return t, true
	}
	return Token{}, false
}

// takeLineOrSentinel consumes a single-line value, NONE or NOASSERTION;
// the download location and home page properties accept all three.
func (p *Parser) takeLineOrSentinel() (Token, bool) {
	switch p.tok.Type {
	case TokenLine, TokenNone, TokenNoAssertion:
		t := p.tok
		p.next()
		return t, true
	}
	return Token{}, false
}

// entity consumes one Tool, Organization or Person value. ok reports
// whether the lookahead had an entity shape at all; a nil Creator with
// ok true means the value failed validation and has been reported
// against its own line already.
func (p *Parser) entity() (spdx.Creator, bool) {
	t := p.tok
	switch t.Type {
	case TokenToolValue:
		p.next()
		tool, err := p.builder.BuildTool(t.Value)
		if err != nil {
			p.logf(msgToolValue, t.Value, t.Line)
			return nil, true
		}
		return tool, true
	case TokenOrgValue:
		p.next()
		org, err := p.builder.BuildOrganization(t.Value)
		if err != nil {
			p.logf(msgOrgValue, t.Value, t.Line)
			return nil, true
		}
		return org, true
	case TokenPersonValue:
		p.next()
		person, err := p.builder.BuildPerson(t.Value)
		if err != nil {
			p.logf(msgPersonValue, t.Value, t.Line)
			return nil, true
		}
		return person, true
	}
	return nil, false
}

// supplierValue consumes NOASSERTION or an entity value for the package
// supplier and originator properties.
func (p *Parser) supplierValue() (spdx.Creator, bool) {
	if p.tok.Type == TokenNoAssertion {
		p.next()
		return spdx.NoAssertion{}, true
	}
	return p.entity()
}

// concLicense consumes a concluded-license value. NOASSERTION and NONE
// map to their sentinels; a known identifier or LicenseRef becomes a
// single license, anything else goes through the expression grammar. ok
// is false when the lookahead has no license shape at all; a nil Value
// with ok true means the expression did not parse.
func (p *Parser) concLicense() (license.Value, bool) {
	switch p.tok.Type {
	case TokenNoAssertion:
		p.next()
		return license.NoAssertion, true
	case TokenNone:
		p.next()
		return license.None, true
	case TokenLine:
		v := p.tok.Value
		p.next()
		if p.catalog.Known(v) || licenseRefRe.MatchString(v) {
			return p.licenseFromIdentifier(v), true
		}
		expr, err := license.ParseExpression(p.catalog, v)
		if err != nil {
			return nil, true
		}
		return expr, true
	}
	return nil, false
}

// licenseInfoValue consumes a license-info value: a single identifier,
// NONE or NOASSERTION. Unlike concLicense it never parses expressions
// and never yields nil for a line value.
func (p *Parser) licenseInfoValue() (license.Value, bool) {
	switch p.tok.Type {
	case TokenNone:
		p.next()
		return license.None, true
	case TokenNoAssertion:
		p.next()
		return license.NoAssertion, true
	case TokenLine:
		v := p.tok.Value
		p.next()
		return p.licenseFromIdentifier(v), true
	}
	return nil, false
}

// licenseFromIdentifier builds a single license from an identifier, a
// full license name, or a LicenseRef. Unknown identifiers keep the raw
// value for both fields.
func (p *Parser) licenseFromIdentifier(v string) license.Value {
	if p.catalog.Known(v) && !p.catalog.Has(v) {
		return p.catalog.FromFullName(v)
	}
	return p.catalog.FromIdentifier(v)
}

func (p *Parser) log(msg string) {
	p.msgs = append(p.msgs, msg)
}

func (p *Parser) logf(format string, args ...interface{}) {
	p.msgs = append(p.msgs, fmt.Sprintf(format, args...))
}

func (p *Parser) moreThanOne(tag string, line int) {
	p.logf(msgMoreThanOne, tag, line)
}

func (p *Parser) orderError(first, second string, line int) {
	p.logf(msgABeforeB, first, second, line)
}
