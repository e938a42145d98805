package tagvalue

import (
	"strings"

	"github.com/c360studio/semsbom/spdx"
)

// validDocNamespace accepts http, https and ftp URIs that carry no
// fragment part. Both the document namespace and external document
// URIs use it.
func validDocNamespace(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "ftp://") {
		return false
	}
	return !strings.Contains(s, "#")
}

// SetDocVersion parses an "SPDX-M.N" version value. The cardinality
// flag is taken even when the value is malformed, so a second
// SPDXVersion tag always reports a duplicate.
func (b *Builder) SetDocVersion(doc *spdx.Document, value string) error {
	if b.docVersionSet {
		return &CardinalityError{Field: "Document::Version"}
	}
	b.docVersionSet = true
	v, err := spdx.ParseVersion(value)
	if err != nil {
		return &ValueError{Field: "Document::Version"}
	}
	doc.Version = v
	return nil
}

// SetDocDataLicense sets the document data license, which the
// specification pins to CC0-1.0.
func (b *Builder) SetDocDataLicense(doc *spdx.Document, value string) error {
	if b.docDataLicenseSet {
		return &CardinalityError{Field: "Document::DataLicense"}
	}
	b.docDataLicenseSet = true
	if value != spdx.DataLicenseID {
		return &ValueError{Field: "Document::DataLicense"}
	}
	lic := b.catalog.FromIdentifier(value)
	doc.DataLicense = &lic
	return nil
}

// SetDocName sets the document name. Any single line is accepted.
func (b *Builder) SetDocName(doc *spdx.Document, value string) error {
	if b.docNameSet {
		return &CardinalityError{Field: "Document::Name"}
	}
	doc.Name = value
	b.docNameSet = true
	return nil
}

// SetDocSPDXID sets the document element identifier, which must be
// exactly SPDXRef-DOCUMENT. Unlike most setters the flag is only taken
// on success, so a corrected retry still lands.
func (b *Builder) SetDocSPDXID(doc *spdx.Document, value string) error {
	if b.docSPDXIDSet {
		return &CardinalityError{Field: "Document::SPDXID"}
	}
	if value != "SPDXRef-DOCUMENT" {
		return &ValueError{Field: "Document::SPDXID"}
	}
	doc.SPDXID = value
	b.docSPDXIDSet = true
	return nil
}

// SetDocComment sets the document comment from a free form text block.
func (b *Builder) SetDocComment(doc *spdx.Document, value string) error {
	if b.docCommentSet {
		return &CardinalityError{Field: "Document::Comment"}
	}
	b.docCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Document::Comment"}
	}
	doc.Comment = textBody(value)
	return nil
}

// SetDocNamespace sets the document namespace URI.
func (b *Builder) SetDocNamespace(doc *spdx.Document, value string) error {
	if b.docNamespaceSet {
		return &CardinalityError{Field: "Document::Namespace"}
	}
	b.docNamespaceSet = true
	if !validDocNamespace(value) {
		return &ValueError{Field: "Document::Namespace"}
	}
	doc.Namespace = value
	return nil
}

// SetExtDocID opens a new external document reference. References
// repeat freely, so there is no cardinality state; the URI and
// checksum setters fill in the reference opened last.
func (b *Builder) SetExtDocID(doc *spdx.Document, value string) {
	doc.AddExternalDocumentRef(spdx.ExternalDocumentRef{DocumentID: value})
}

// SetExtDocURI sets the URI of the reference opened last.
func (b *Builder) SetExtDocURI(doc *spdx.Document, value string) error {
	if !validDocNamespace(value) {
		return &ValueError{Field: "Document::ExternalDocumentRef"}
	}
	doc.ExternalDocumentRefs[len(doc.ExternalDocumentRefs)-1].URI = value
	return nil
}

// SetExtDocChecksum sets the checksum of the reference opened last. A
// value without the SHA1 prefix leaves the checksum empty.
func (b *Builder) SetExtDocChecksum(doc *spdx.Document, value string) {
	cs, _ := checksumFromSHA1(value)
	doc.ExternalDocumentRefs[len(doc.ExternalDocumentRefs)-1].Checksum = cs
}
