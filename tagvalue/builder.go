package tagvalue

import (
	"regexp"
	"strings"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

var (
	sha1Re     = regexp.MustCompile(`SHA1:\s*(\S+)`)
	freeFormRe = regexp.MustCompile(`(?s)^<text>.*</text>`)
	textBodyRe = regexp.MustCompile(`(?s)^<text>(.+)</text>`)
)

// Builder applies tag values to a document under construction. Every
// single-valued property has a flag so a duplicate assignment comes
// back as CardinalityError even when the first assignment was invalid;
// properties that arrive before the element they belong to come back
// as OrderError. The builder holds no document of its own, callers
// pass the same *spdx.Document to every setter and Reset the builder
// between documents.
type Builder struct {
	catalog *license.Catalog

	docVersionSet     bool
	docDataLicenseSet bool
	docNameSet        bool
	docSPDXIDSet      bool
	docCommentSet     bool
	docNamespaceSet   bool

	createdDateSet        bool
	creationCommentSet    bool
	licenseListVersionSet bool

	reviewDateSet    bool
	reviewCommentSet bool

	annotationDateSet    bool
	annotationCommentSet bool
	annotationTypeSet    bool
	annotationSPDXIDSet  bool

	packageSet               bool
	packageVersionSet        bool
	packageFileNameSet       bool
	packageSupplierSet       bool
	packageOriginatorSet     bool
	packageDownloadSet       bool
	packageHomeSet           bool
	packageVerifSet          bool
	packageChecksumSet       bool
	packageSourceInfoSet     bool
	packageConcludedSet      bool
	packageDeclaredSet       bool
	packageLicenseCommentSet bool
	packageCopyrightSet      bool
	packageSummarySet        bool
	packageDescriptionSet    bool

	fileSPDXIDSet         bool
	fileCommentSet        bool
	fileTypeSet           bool
	fileChecksumSet       bool
	fileConcludedSet      bool
	fileLicenseCommentSet bool
	fileNoticeSet         bool
	fileCopyrightSet      bool

	extractedTextSet    bool
	extractedNameSet    bool
	extractedCommentSet bool

	snippetSPDXIDSet         bool
	snippetNameSet           bool
	snippetCommentSet        bool
	snippetCopyrightSet      bool
	snippetLicenseCommentSet bool
	snippetFromFileSet       bool
	snippetConcludedSet      bool
}

// NewBuilder returns a builder that resolves license identifiers
// through cat. A nil catalog falls back to the bundled license list.
func NewBuilder(cat *license.Catalog) *Builder {
	if cat == nil {
		cat = license.DefaultCatalog()
	}
	return &Builder{catalog: cat}
}

// Reset clears all cardinality and order state so the builder can
// populate a fresh document.
func (b *Builder) Reset() {
	*b = Builder{catalog: b.catalog}
}

// resetFile runs when a FileName tag starts a new file; each file gets
// a fresh set of per-file flags.
func (b *Builder) resetFile() {
	b.fileSPDXIDSet = false
	b.fileCommentSet = false
	b.fileTypeSet = false
	b.fileChecksumSet = false
	b.fileConcludedSet = false
	b.fileLicenseCommentSet = false
	b.fileNoticeSet = false
	b.fileCopyrightSet = false
}

func (b *Builder) resetExtracted() {
	b.extractedTextSet = false
	b.extractedNameSet = false
	b.extractedCommentSet = false
}

func (b *Builder) resetSnippet() {
	b.snippetSPDXIDSet = false
	b.snippetNameSet = false
	b.snippetCommentSet = false
	b.snippetCopyrightSet = false
	b.snippetLicenseCommentSet = false
	b.snippetFromFileSet = false
	b.snippetConcludedSet = false
}

func (b *Builder) resetReview() {
	b.reviewDateSet = false
	b.reviewCommentSet = false
}

func (b *Builder) resetAnnotation() {
	b.annotationDateSet = false
	b.annotationCommentSet = false
	b.annotationTypeSet = false
	b.annotationSPDXIDSet = false
}

func (b *Builder) hasPackage(doc *spdx.Document) bool {
	return doc.Package != nil
}

func (b *Builder) hasFile(doc *spdx.Document) bool {
	return doc.Package != nil && len(doc.Package.Files) > 0
}

// curFile returns the file currently being populated, the last one
// appended.
func (b *Builder) curFile(doc *spdx.Document) *spdx.File {
	return doc.Package.Files[len(doc.Package.Files)-1]
}

func (b *Builder) curExtracted(doc *spdx.Document) *license.ExtractedLicense {
	return doc.ExtractedLicenses[len(doc.ExtractedLicenses)-1]
}

func (b *Builder) curSnippet(doc *spdx.Document) *spdx.Snippet {
	return doc.Snippets[len(doc.Snippets)-1]
}

func (b *Builder) curReview(doc *spdx.Document) *spdx.Review {
	return doc.Reviews[len(doc.Reviews)-1]
}

func (b *Builder) curAnnotation(doc *spdx.Document) *spdx.Annotation {
	return doc.Annotations[len(doc.Annotations)-1]
}

// checksumFromSHA1 extracts the hex digest from a "SHA1: <digest>"
// value. The zero checksum comes back when the prefix is absent, which
// happens only on the mangled ExternalDocumentRef path.
func checksumFromSHA1(value string) (spdx.Checksum, bool) {
	m := sha1Re.FindStringSubmatch(value)
	if m == nil {
		return spdx.Checksum{}, false
	}
	return spdx.NewSHA1(m[1]), true
}

// isFreeFormText reports whether the value is a <text>...</text>
// block.
func isFreeFormText(value string) bool {
	return freeFormRe.MatchString(value)
}

// textBody strips the <text> delimiters from a block. An empty block
// yields the empty string.
func textBody(value string) string {
	m := textBodyRe.FindStringSubmatch(value)
	if m == nil {
		return ""
	}
	return m[1]
}

// fragment returns the part after the last '#', or the whole string
// when there is none. SPDX identifiers may arrive qualified by a
// document namespace.
func fragment(s string) string {
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		return s[i+1:]
	}
	return s
}
