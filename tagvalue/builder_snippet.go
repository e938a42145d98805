package tagvalue

import (
	"regexp"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

var (
	snippetSPDXIDRe   = regexp.MustCompile(`^SPDXRef[A-Za-z0-9.-]+$`)
	snippetFromFileRe = regexp.MustCompile(`^(DocumentRef[A-Za-z0-9.-]+:)?SPDXRef[A-Za-z0-9.-]+`)
)

// CreateSnippet opens a new snippet under the given element
// identifier, reduced to its fragment first. A failed identifier
// leaves no snippet open even when earlier snippets exist, so the
// other setters report OrderError until the next valid SnippetSPDXID.
func (b *Builder) CreateSnippet(doc *spdx.Document, value string) error {
	b.resetSnippet()
	id := fragment(value)
	if !snippetSPDXIDRe.MatchString(id) {
		return &ValueError{Field: "Snippet::SnippetSPDXID"}
	}
	doc.AddSnippet(&spdx.Snippet{SPDXID: id})
	b.snippetSPDXIDSet = true
	return nil
}

func (b *Builder) assertSnippet() error {
	if !b.snippetSPDXIDSet {
		return &OrderError{Field: "Snippet"}
	}
	return nil
}

// SetSnippetName sets the name of the open snippet.
func (b *Builder) SetSnippetName(doc *spdx.Document, value string) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	if b.snippetNameSet {
		return &CardinalityError{Field: "Snippet::SnippetName"}
	}
	b.snippetNameSet = true
	b.curSnippet(doc).Name = value
	return nil
}

// SetSnippetComment sets the open snippet's comment from a free form
// text block.
func (b *Builder) SetSnippetComment(doc *spdx.Document, value string) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	if b.snippetCommentSet {
		return &CardinalityError{Field: "Snippet::SnippetComment"}
	}
	b.snippetCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Snippet::SnippetComment"}
	}
	b.curSnippet(doc).Comment = textBody(value)
	return nil
}

// SetSnippetCopyright sets the open snippet's copyright text, either a
// free form block or one of the NONE and NOASSERTION sentinels.
func (b *Builder) SetSnippetCopyright(doc *spdx.Document, value string) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	if b.snippetCopyrightSet {
		return &CardinalityError{Field: "Snippet::SnippetCopyrightText"}
	}
	b.snippetCopyrightSet = true
	if spdx.IsSentinel(value) {
		b.curSnippet(doc).Copyright = value
		return nil
	}
	if !isFreeFormText(value) {
		return &ValueError{Field: "Snippet::SnippetCopyrightText"}
	}
	b.curSnippet(doc).Copyright = textBody(value)
	return nil
}

// SetSnippetLicenseComment sets the open snippet's license comment
// from a free form text block.
func (b *Builder) SetSnippetLicenseComment(doc *spdx.Document, value string) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	if b.snippetLicenseCommentSet {
		return &CardinalityError{Field: "Snippet::SnippetLicenseComments"}
	}
	b.snippetLicenseCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Snippet::SnippetLicenseComments"}
	}
	b.curSnippet(doc).LicenseComment = textBody(value)
	return nil
}

// SetSnippetFromFile names the file the open snippet belongs to by its
// element identifier, reduced to its fragment first.
func (b *Builder) SetSnippetFromFile(doc *spdx.Document, value string) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	id := fragment(value)
	if b.snippetFromFileSet {
		return &CardinalityError{Field: "Snippet::SnippetFromFileSPDXID"}
	}
	b.snippetFromFileSet = true
	if !snippetFromFileRe.MatchString(id) {
		return &ValueError{Field: "Snippet::SnippetFromFileSPDXID"}
	}
	b.curSnippet(doc).FileSPDXID = id
	return nil
}

// SetSnippetConcludedLicense sets the open snippet's concluded
// license. A nil value means the license expression failed to resolve.
func (b *Builder) SetSnippetConcludedLicense(doc *spdx.Document, v license.Value) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	if b.snippetConcludedSet {
		return &CardinalityError{Field: "Snippet::SnippetLicenseConcluded"}
	}
	b.snippetConcludedSet = true
	if v == nil {
		return &ValueError{Field: "Snippet::SnippetLicenseConcluded"}
	}
	b.curSnippet(doc).ConcludedLicense = v
	return nil
}

// AddSnippetLicenseInfo appends one license observed in the open
// snippet. These repeat freely.
func (b *Builder) AddSnippetLicenseInfo(doc *spdx.Document, v license.Value) error {
	if err := b.assertSnippet(); err != nil {
		return err
	}
	if v == nil {
		return &ValueError{Field: "Snippet::LicenseInfoInSnippet"}
	}
	b.curSnippet(doc).AddLicenseInSnippet(v)
	return nil
}
