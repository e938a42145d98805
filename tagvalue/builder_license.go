package tagvalue

import (
	"strings"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

func (b *Builder) hasExtracted(doc *spdx.Document) bool {
	return len(doc.ExtractedLicenses) != 0
}

// SetLicenseID opens a new extracted license definition. The
// identifier must carry the LicenseRef- prefix; per-license
// cardinality state resets even when it does not.
func (b *Builder) SetLicenseID(doc *spdx.Document, value string) error {
	b.resetExtracted()
	if !strings.HasPrefix(value, "LicenseRef-") {
		return &ValueError{Field: "ExtractedLicense::Identifier"}
	}
	doc.AddExtractedLicense(license.NewExtractedLicense(value))
	return nil
}

// SetLicenseText sets the verbatim text of the extracted license
// opened last.
func (b *Builder) SetLicenseText(doc *spdx.Document, value string) error {
	if !b.hasExtracted(doc) {
		return &OrderError{Field: "ExtractedLicense::Text"}
	}
	if b.extractedTextSet {
		return &CardinalityError{Field: "ExtractedLicense::Text"}
	}
	b.extractedTextSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "ExtractedLicense::Text"}
	}
	b.curExtracted(doc).Text = textBody(value)
	return nil
}

// SetLicenseName sets the display name of the extracted license opened
// last. NOASSERTION is allowed.
func (b *Builder) SetLicenseName(doc *spdx.Document, value string) error {
	if !b.hasExtracted(doc) {
		return &OrderError{Field: "ExtractedLicense::Name"}
	}
	if b.extractedNameSet {
		return &CardinalityError{Field: "ExtractedLicense::Name"}
	}
	b.extractedNameSet = true
	b.curExtracted(doc).Name = value
	return nil
}

// SetLicenseComment sets the comment of the extracted license opened
// last from a free form text block.
func (b *Builder) SetLicenseComment(doc *spdx.Document, value string) error {
	if !b.hasExtracted(doc) {
		return &OrderError{Field: "ExtractedLicense::Comment"}
	}
	if b.extractedCommentSet {
		return &CardinalityError{Field: "ExtractedLicense::Comment"}
	}
	b.extractedCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "ExtractedLicense::Comment"}
	}
	b.curExtracted(doc).Comment = textBody(value)
	return nil
}

// AddLicenseCrossRef appends a cross reference URL to the extracted
// license opened last. Cross references repeat freely.
func (b *Builder) AddLicenseCrossRef(doc *spdx.Document, value string) error {
	if !b.hasExtracted(doc) {
		return &OrderError{Field: "ExtractedLicense::CrossRef"}
	}
	lic := b.curExtracted(doc)
	lic.CrossRefs = append(lic.CrossRefs, value)
	return nil
}
