// Package spdx defines the object model for SPDX 2.1 documents: the
// document root, its package, files, snippets, reviews, annotations and
// creation info. Entities are populated by the tagvalue builder during a
// parse pass and consumed by the export writers; Validate reports the
// structural invariants the builder cannot check field by field.
package spdx

import (
	"fmt"

	"github.com/c360studio/semsbom/license"
)

// Document is the root of the SPDX object model. A document carries
// exactly one spec version, data license, name, namespace and element
// identifier, and owns every entity hanging off it.
type Document struct {
	Version     Version
	DataLicense *license.License
	Name        string
	SPDXID      string
	Namespace   string
	Comment     string

	ExternalDocumentRefs []ExternalDocumentRef
	CreationInfo         CreationInfo
	Package              *Package
	ExtractedLicenses    []*license.ExtractedLicense
	Reviews              []*Review
	Annotations          []*Annotation
	Snippets             []*Snippet
}

// Files returns the files owned by the document's package, or nil when
// no package has been created yet.
func (d *Document) Files() []*File {
	if d.Package == nil {
		return nil
	}
	return d.Package.Files
}

// AddExternalDocumentRef appends a reference to an element in another
// SPDX document.
func (d *Document) AddExternalDocumentRef(ref ExternalDocumentRef) {
	d.ExternalDocumentRefs = append(d.ExternalDocumentRefs, ref)
}

// AddExtractedLicense appends a non-catalog license definition.
func (d *Document) AddExtractedLicense(lic *license.ExtractedLicense) {
	d.ExtractedLicenses = append(d.ExtractedLicenses, lic)
}

// AddReview appends a legacy review record.
func (d *Document) AddReview(r *Review) {
	d.Reviews = append(d.Reviews, r)
}

// AddAnnotation appends an annotation record.
func (d *Document) AddAnnotation(a *Annotation) {
	d.Annotations = append(d.Annotations, a)
}

// AddSnippet appends a snippet record.
func (d *Document) AddSnippet(s *Snippet) {
	d.Snippets = append(d.Snippets, s)
}

// ExtractedLicense returns the extracted license with the given
// identifier, or nil when the document does not define it.
func (d *Document) ExtractedLicense(id string) *license.ExtractedLicense {
	for _, lic := range d.ExtractedLicenses {
		if lic.Identifier == id {
			return lic
		}
	}
	return nil
}

// ExternalDocumentRef points at an SPDX element that lives in another
// document. The checksum pins the exact revision of the target.
type ExternalDocumentRef struct {
	DocumentID string
	URI        string
	Checksum   Checksum
}

func (r ExternalDocumentRef) validate(msgs []string) []string {
	if r.DocumentID == "" {
		msgs = append(msgs, "external document ref missing document id")
	}
	if r.URI == "" {
		msgs = append(msgs, "external document ref missing document uri")
	}
	if r.Checksum.Value == "" {
		msgs = append(msgs, "external document ref missing checksum")
	}
	return msgs
}

// Checksum pairs a hash algorithm name with its hex digest. SPDX 2.1
// mandates SHA-1 for files and packages.
type Checksum struct {
	Algorithm string
	Value     string
}

// NewSHA1 builds a SHA-1 checksum from a hex digest.
func NewSHA1(value string) Checksum {
	return Checksum{Algorithm: "SHA1", Value: value}
}

// String renders the tag:value form, e.g. "SHA1: d6a770...".
func (c Checksum) String() string {
	return fmt.Sprintf("%s: %s", c.Algorithm, c.Value)
}
