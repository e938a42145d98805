package tagvalue

import (
	"regexp"
	"strings"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

// verifCodeRe splits a verification code value into the hex code and
// the optional parenthesized excluded-files list. The list splits on
// commas verbatim, so an "excludes:" label stays glued to the first
// entry exactly as it appeared.
var verifCodeRe = regexp.MustCompile(`^([0-9a-f]+)\s*(\(\s*(.+)\))?`)

// CreatePackage opens the document's package. A document carries at
// most one.
func (b *Builder) CreatePackage(doc *spdx.Document, name string) error {
	if b.packageSet {
		return &CardinalityError{Field: "Package::Name"}
	}
	b.packageSet = true
	doc.Package = &spdx.Package{Name: name}
	return nil
}

func (b *Builder) assertPackage() error {
	if !b.packageSet {
		return &OrderError{Field: "Package"}
	}
	return nil
}

// SetPkgVersion sets the package version. Any single line is accepted.
func (b *Builder) SetPkgVersion(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageVersionSet {
		return &CardinalityError{Field: "Package::Version"}
	}
	b.packageVersionSet = true
	doc.Package.Version = value
	return nil
}

// SetPkgFileName sets the actual file name of the package artifact.
func (b *Builder) SetPkgFileName(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageFileNameSet {
		return &CardinalityError{Field: "Package::FileName"}
	}
	b.packageFileNameSet = true
	doc.Package.FileName = value
	return nil
}

// SetPkgSupplier sets the package supplier, which must be a person, an
// organization or NOASSERTION. Tools cannot supply packages.
func (b *Builder) SetPkgSupplier(doc *spdx.Document, e spdx.Creator) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageSupplierSet {
		return &CardinalityError{Field: "Package::Supplier"}
	}
	b.packageSupplierSet = true
	if !validActorOrNoAssertion(e) {
		return &ValueError{Field: "Package::Supplier"}
	}
	doc.Package.Supplier = e
	return nil
}

// SetPkgOriginator sets the package originator under the same rules as
// the supplier.
func (b *Builder) SetPkgOriginator(doc *spdx.Document, e spdx.Creator) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageOriginatorSet {
		return &CardinalityError{Field: "Package::Originator"}
	}
	b.packageOriginatorSet = true
	if !validActorOrNoAssertion(e) {
		return &ValueError{Field: "Package::Originator"}
	}
	doc.Package.Originator = e
	return nil
}

func validActorOrNoAssertion(e spdx.Creator) bool {
	switch e.(type) {
	case spdx.Person, spdx.Organization, spdx.NoAssertion:
		return true
	}
	return false
}

// SetPkgDownload sets the package download location.
func (b *Builder) SetPkgDownload(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageDownloadSet {
		return &CardinalityError{Field: "Package::DownloadLocation"}
	}
	b.packageDownloadSet = true
	doc.Package.DownloadLocation = value
	return nil
}

// SetPkgHome sets the package home page. The value may also be one of
// the NONE and NOASSERTION sentinels.
func (b *Builder) SetPkgHome(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageHomeSet {
		return &CardinalityError{Field: "Package::HomePage"}
	}
	b.packageHomeSet = true
	doc.Package.HomePage = value
	return nil
}

// SetPkgVerifCode parses a verification code value, hex code first and
// an optional "(excluded, files)" suffix after it.
func (b *Builder) SetPkgVerifCode(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageVerifSet {
		return &CardinalityError{Field: "Package::VerificationCode"}
	}
	b.packageVerifSet = true
	m := verifCodeRe.FindStringSubmatch(value)
	if m == nil {
		return &ValueError{Field: "Package::VerificationCode"}
	}
	vc := spdx.VerificationCode{Value: m[1]}
	if m[3] != "" {
		vc.ExcludedFiles = strings.Split(m[3], ",")
	}
	doc.Package.VerificationCode = vc
	return nil
}

// SetPkgChecksum sets the package checksum from a "SHA1: <digest>"
// value.
func (b *Builder) SetPkgChecksum(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageChecksumSet {
		return &CardinalityError{Field: "Package::CheckSum"}
	}
	b.packageChecksumSet = true
	cs, _ := checksumFromSHA1(value)
	doc.Package.Checksum = cs
	return nil
}

// SetPkgSourceInfo sets the package source information from a free
// form text block.
func (b *Builder) SetPkgSourceInfo(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageSourceInfoSet {
		return &CardinalityError{Field: "Package::SourceInfo"}
	}
	b.packageSourceInfoSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Package::SourceInfo"}
	}
	doc.Package.SourceInfo = textBody(value)
	return nil
}

// SetPkgConcludedLicense sets the concluded license. A nil value means
// the license expression failed to resolve.
func (b *Builder) SetPkgConcludedLicense(doc *spdx.Document, v license.Value) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageConcludedSet {
		return &CardinalityError{Field: "Package::ConcludedLicenses"}
	}
	b.packageConcludedSet = true
	if v == nil {
		return &ValueError{Field: "Package::ConcludedLicenses"}
	}
	doc.Package.ConcludedLicense = v
	return nil
}

// AddPkgLicenseFromFile appends one license observed in the package's
// files. These repeat freely.
func (b *Builder) AddPkgLicenseFromFile(doc *spdx.Document, v license.Value) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if v == nil {
		return &ValueError{Field: "Package::LicensesFromFile"}
	}
	doc.Package.AddLicenseFromFile(v)
	return nil
}

// SetPkgDeclaredLicense sets the license the package declares for
// itself.
func (b *Builder) SetPkgDeclaredLicense(doc *spdx.Document, v license.Value) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageDeclaredSet {
		return &CardinalityError{Field: "Package::LicenseDeclared"}
	}
	b.packageDeclaredSet = true
	if v == nil {
		return &ValueError{Field: "Package::LicenseDeclared"}
	}
	doc.Package.DeclaredLicense = v
	return nil
}

// SetPkgLicenseComment sets the license comment from a free form text
// block.
func (b *Builder) SetPkgLicenseComment(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageLicenseCommentSet {
		return &CardinalityError{Field: "Package::LicenseComment"}
	}
	b.packageLicenseCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Package::LicenseComment"}
	}
	doc.Package.LicenseComment = textBody(value)
	return nil
}

// SetPkgCopyright sets the copyright text, either a free form block or
// one of the NONE and NOASSERTION sentinels.
func (b *Builder) SetPkgCopyright(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageCopyrightSet {
		return &CardinalityError{Field: "Package::CopyrightText"}
	}
	b.packageCopyrightSet = true
	if spdx.IsSentinel(value) {
		doc.Package.Copyright = value
		return nil
	}
	if !isFreeFormText(value) {
		return &ValueError{Field: "Package::CopyrightText"}
	}
	doc.Package.Copyright = textBody(value)
	return nil
}

// SetPkgSummary sets the package summary from a free form text block.
func (b *Builder) SetPkgSummary(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageSummarySet {
		return &CardinalityError{Field: "Package::Summary"}
	}
	b.packageSummarySet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Package::Summary"}
	}
	doc.Package.Summary = textBody(value)
	return nil
}

// SetPkgDescription sets the package description from a free form text
// block.
func (b *Builder) SetPkgDescription(doc *spdx.Document, value string) error {
	if err := b.assertPackage(); err != nil {
		return err
	}
	if b.packageDescriptionSet {
		return &CardinalityError{Field: "Package::Description"}
	}
	b.packageDescriptionSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Package::Description"}
	}
	doc.Package.Description = textBody(value)
	return nil
}
