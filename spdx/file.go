package spdx

import (
	"fmt"

	"github.com/c360studio/semsbom/license"
)

// FileType classifies a file's contents. The zero value means the type
// was never declared.
type FileType int

const (
	FileTypeSource FileType = iota + 1
	FileTypeBinary
	FileTypeArchive
	FileTypeOther
)

// ParseFileType maps the tag:value keywords onto a FileType.
func ParseFileType(s string) (FileType, error) {
	switch s {
	case "SOURCE":
		return FileTypeSource, nil
	case "BINARY":
		return FileTypeBinary, nil
	case "ARCHIVE":
		return FileTypeArchive, nil
	case "OTHER":
		return FileTypeOther, nil
	default:
		return 0, fmt.Errorf("invalid file type %q", s)
	}
}

// String renders the tag:value keyword for the type.
func (t FileType) String() string {
	switch t {
	case FileTypeSource:
		return "SOURCE"
	case FileTypeBinary:
		return "BINARY"
	case FileTypeArchive:
		return "ARCHIVE"
	case FileTypeOther:
		return "OTHER"
	default:
		return ""
	}
}

// IsSentinel reports whether a free-text field carries one of the value
// sentinels. Sentinels serialize as plain values, anything else as a
// <text> block.
func IsSentinel(s string) bool {
	return s == string(license.NoAssertion) || s == string(license.None)
}

// File describes one file owned by the package. Dependencies reference
// other files by name; they stay verbatim strings here and are only
// resolved against declared files when the RDF writer runs.
type File struct {
	Name             string
	SPDXID           string
	Comment          string
	Type             FileType
	Checksum         Checksum
	ConcludedLicense license.Value
	LicensesInFile   []license.Value
	LicenseComment   string
	Copyright        string
	Notice           string
	Contributors     []string
	Dependencies     []string

	// Legacy "artifact of project" columns. The three slices are
	// positionally aligned; validation tolerates a ragged tail as long
	// as every home page row exists.
	ArtifactNames     []string
	ArtifactHomePages []string
	ArtifactURIs      []string
}

// AddLicenseInFile records one license observed in the file.
func (f *File) AddLicenseInFile(v license.Value) {
	f.LicensesInFile = append(f.LicensesInFile, v)
}

// AddContributor records a contributor line.
func (f *File) AddContributor(name string) {
	f.Contributors = append(f.Contributors, name)
}

// AddDependency records a dependency on another file, by file name.
func (f *File) AddDependency(name string) {
	f.Dependencies = append(f.Dependencies, name)
}

func (f *File) validate(msgs []string) []string {
	if f.ConcludedLicense == nil {
		msgs = append(msgs, fmt.Sprintf("file %s missing concluded license", f.Name))
	}
	if f.Checksum.Value == "" || f.Checksum.Algorithm != "SHA1" {
		msgs = append(msgs, fmt.Sprintf("file %s checksum algorithm must be SHA1", f.Name))
	}
	if len(f.LicensesInFile) == 0 {
		msgs = append(msgs, fmt.Sprintf("file %s must have at least one license in file", f.Name))
	}
	if f.Copyright == "" {
		msgs = append(msgs, fmt.Sprintf("file %s missing copyright text", f.Name))
	}
	if len(f.ArtifactHomePages) < max(len(f.ArtifactURIs), len(f.ArtifactNames)) {
		msgs = append(msgs, fmt.Sprintf("file %s must have as many artifact home pages as names or uris", f.Name))
	}
	if f.SPDXID == "" {
		msgs = append(msgs, fmt.Sprintf("file %s has no SPDX identifier", f.Name))
	}
	return msgs
}
