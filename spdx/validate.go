package spdx

import "strings"

// DataLicenseID is the only data license SPDX 2.1 admits for the
// document itself.
const DataLicenseID = "CC0-1.0"

// Validate checks the structural invariants the builder cannot enforce
// field by field: mandatory fields that never arrived, required
// collections left empty, the fixed data license. It returns one
// message per violation; an empty slice means the document is sound.
func (d *Document) Validate() []string {
	var msgs []string
	if d.Version.IsZero() {
		msgs = append(msgs, "document has no version")
	}
	switch {
	case d.DataLicense == nil:
		msgs = append(msgs, "document has no data license")
	case d.DataLicense.Identifier != DataLicenseID:
		msgs = append(msgs, "document data license must be "+DataLicenseID)
	}
	if d.Name == "" {
		msgs = append(msgs, "document has no name")
	}
	switch {
	case d.SPDXID == "":
		msgs = append(msgs, "document has no SPDX identifier")
	case !strings.HasSuffix(d.SPDXID, "SPDXRef-DOCUMENT"):
		msgs = append(msgs, "invalid document SPDX identifier value")
	}
	if d.Namespace == "" {
		msgs = append(msgs, "document has no namespace")
	}
	for _, ref := range d.ExternalDocumentRefs {
		msgs = ref.validate(msgs)
	}
	msgs = d.CreationInfo.validate(msgs)
	if d.Package == nil {
		msgs = append(msgs, "document has no package")
	} else {
		msgs = d.Package.validate(msgs)
	}
	for _, lic := range d.ExtractedLicenses {
		if lic.Text == "" {
			msgs = append(msgs, "extracted license "+lic.Identifier+" text can not be empty")
		}
	}
	for _, r := range d.Reviews {
		msgs = r.validate(msgs)
	}
	for _, a := range d.Annotations {
		msgs = a.validate(msgs)
	}
	for _, s := range d.Snippets {
		msgs = s.validate(msgs)
	}
	return msgs
}
