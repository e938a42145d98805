package tagvalue

import (
	"regexp"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

// fileSPDXIDRe accepts an SPDXRef identifier, checked after any
// "namespace#" prefix is cut off.
var fileSPDXIDRe = regexp.MustCompile(`^SPDXRef-[A-Za-z0-9.-]+`)

// SetFileName starts a new file under the package. Every per-file
// cardinality flag resets; the other file setters work on the file
// started last.
func (b *Builder) SetFileName(doc *spdx.Document, name string) error {
	if !b.hasPackage(doc) {
		return &OrderError{Field: "File::Name"}
	}
	doc.Package.AddFile(&spdx.File{Name: name})
	b.resetFile()
	return nil
}

func (b *Builder) assertFile(doc *spdx.Document, field string) error {
	if !b.hasPackage(doc) || !b.hasFile(doc) {
		return &OrderError{Field: field}
	}
	return nil
}

// SetFileSPDXID sets the element identifier of the current file. A
// "namespace#SPDXRef-x" form validates against its fragment but is
// stored verbatim.
func (b *Builder) SetFileSPDXID(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::SPDXID"); err != nil {
		return err
	}
	if b.fileSPDXIDSet {
		return &CardinalityError{Field: "File::SPDXID"}
	}
	b.fileSPDXIDSet = true
	if !fileSPDXIDRe.MatchString(fragment(value)) {
		return &ValueError{Field: "File::SPDXID"}
	}
	b.curFile(doc).SPDXID = value
	return nil
}

// SetFileComment sets the current file's comment from a free form text
// block.
func (b *Builder) SetFileComment(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::Comment"); err != nil {
		return err
	}
	if b.fileCommentSet {
		return &CardinalityError{Field: "File::Comment"}
	}
	b.fileCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "File::Comment"}
	}
	b.curFile(doc).Comment = textBody(value)
	return nil
}

// SetFileType classifies the current file as SOURCE, BINARY, ARCHIVE
// or OTHER.
func (b *Builder) SetFileType(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::Type"); err != nil {
		return err
	}
	if b.fileTypeSet {
		return &CardinalityError{Field: "File::Type"}
	}
	b.fileTypeSet = true
	t, err := spdx.ParseFileType(value)
	if err != nil {
		return &ValueError{Field: "File::Type"}
	}
	b.curFile(doc).Type = t
	return nil
}

// SetFileChecksum sets the current file's checksum from a
// "SHA1: <digest>" value.
func (b *Builder) SetFileChecksum(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::CheckSum"); err != nil {
		return err
	}
	if b.fileChecksumSet {
		return &CardinalityError{Field: "File::CheckSum"}
	}
	b.fileChecksumSet = true
	cs, _ := checksumFromSHA1(value)
	b.curFile(doc).Checksum = cs
	return nil
}

// SetFileConcludedLicense sets the current file's concluded license. A
// nil value means the license expression failed to resolve.
func (b *Builder) SetFileConcludedLicense(doc *spdx.Document, v license.Value) error {
	if err := b.assertFile(doc, "File::ConcludedLicense"); err != nil {
		return err
	}
	if b.fileConcludedSet {
		return &CardinalityError{Field: "File::ConcludedLicense"}
	}
	b.fileConcludedSet = true
	if v == nil {
		return &ValueError{Field: "File::ConcludedLicense"}
	}
	b.curFile(doc).ConcludedLicense = v
	return nil
}

// AddFileLicenseInFile appends one license observed in the current
// file. These repeat freely.
func (b *Builder) AddFileLicenseInFile(doc *spdx.Document, v license.Value) error {
	if err := b.assertFile(doc, "File::LicenseInFile"); err != nil {
		return err
	}
	if v == nil {
		return &ValueError{Field: "File::LicenseInFile"}
	}
	b.curFile(doc).AddLicenseInFile(v)
	return nil
}

// SetFileLicenseComment sets the current file's license comment from a
// free form text block.
func (b *Builder) SetFileLicenseComment(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::LicenseComment"); err != nil {
		return err
	}
	if b.fileLicenseCommentSet {
		return &CardinalityError{Field: "File::LicenseComment"}
	}
	b.fileLicenseCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "File::LicenseComment"}
	}
	b.curFile(doc).LicenseComment = textBody(value)
	return nil
}

// SetFileCopyright sets the current file's copyright text, either a
// free form block or one of the NONE and NOASSERTION sentinels.
func (b *Builder) SetFileCopyright(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::CopyrightText"); err != nil {
		return err
	}
	if b.fileCopyrightSet {
		return &CardinalityError{Field: "File::CopyrightText"}
	}
	b.fileCopyrightSet = true
	if spdx.IsSentinel(value) {
		b.curFile(doc).Copyright = value
		return nil
	}
	if !isFreeFormText(value) {
		return &ValueError{Field: "File::CopyrightText"}
	}
	b.curFile(doc).Copyright = textBody(value)
	return nil
}

// SetFileNotice sets the current file's notice text from a free form
// text block.
func (b *Builder) SetFileNotice(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::Notice"); err != nil {
		return err
	}
	if b.fileNoticeSet {
		return &CardinalityError{Field: "File::Notice"}
	}
	b.fileNoticeSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "File::Notice"}
	}
	b.curFile(doc).Notice = textBody(value)
	return nil
}

// AddFileContributor records one contributor to the current file.
func (b *Builder) AddFileContributor(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::Contributor"); err != nil {
		return err
	}
	b.curFile(doc).AddContributor(value)
	return nil
}

// AddFileDependency records a dependency of the current file on
// another file, by name.
func (b *Builder) AddFileDependency(doc *spdx.Document, value string) error {
	if err := b.assertFile(doc, "File::Dependency"); err != nil {
		return err
	}
	b.curFile(doc).AddDependency(value)
	return nil
}

// SetFileArtifact appends one "artifact of project" column on the
// current file; kind is name, home or uri. The columns repeat freely
// and are not validated here, the document validator checks that the
// rows line up.
func (b *Builder) SetFileArtifact(doc *spdx.Document, kind, value string) error {
	if err := b.assertFile(doc, "File::Artifact"); err != nil {
		return err
	}
	f := b.curFile(doc)
	switch kind {
	case "name":
		f.ArtifactNames = append(f.ArtifactNames, value)
	case "home":
		f.ArtifactHomePages = append(f.ArtifactHomePages, value)
	case "uri":
		f.ArtifactURIs = append(f.ArtifactURIs, value)
	}
	return nil
}
