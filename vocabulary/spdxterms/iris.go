// Package spdxterms defines the SPDX 2.1 RDF vocabulary IRIs emitted by
// the RDF writer.
package spdxterms

// Namespace is the base IRI prefix for all SPDX terms.
const Namespace = "http://spdx.org/rdf/terms#"

// LicenseNamespace is the base IRI under which the license list
// publishes one address per catalog license.
const LicenseNamespace = "http://spdx.org/licenses/"

// Class IRIs type the nodes the writer creates.
const (
	ClassSpdxDocument            = Namespace + "SpdxDocument"
	ClassCreationInfo            = Namespace + "CreationInfo"
	ClassExternalDocumentRef     = Namespace + "ExternalDocumentRef"
	ClassChecksum                = Namespace + "Checksum"
	ClassReview                  = Namespace + "Review"
	ClassPackage                 = Namespace + "Package"
	ClassPackageVerificationCode = Namespace + "PackageVerificationCode"
	ClassFile                    = Namespace + "File"
	ClassSnippet                 = Namespace + "Snippet"
	ClassExtractedLicensingInfo  = Namespace + "ExtractedLicensingInfo"
	ClassConjunctiveLicenseSet   = Namespace + "ConjunctiveLicenseSet"
	ClassDisjunctiveLicenseSet   = Namespace + "DisjunctiveLicenseSet"
)

// Document properties.
const (
	SpecVersion               = Namespace + "specVersion"
	DataLicense               = Namespace + "dataLicense"
	Name                      = Namespace + "name"
	CreationInfoProp          = Namespace + "creationInfo"
	Reviewed                  = Namespace + "reviewed"
	ExternalDocumentRefProp   = Namespace + "externalDocumentRef"
	HasExtractedLicensingInfo = Namespace + "hasExtractedLicensingInfo"
	ReferencesFile            = Namespace + "referencesFile"
	DescribesPackage          = Namespace + "describesPackage"
)

// Creation info properties.
const (
	Created            = Namespace + "created"
	Creator            = Namespace + "creator"
	LicenseListVersion = Namespace + "licenseListVersion"
)

// External document reference and checksum properties.
const (
	ExternalDocumentID = Namespace + "externalDocumentId"
	SpdxDocument       = Namespace + "spdxDocument"
	Checksum           = Namespace + "checksum"
	Algorithm          = Namespace + "algorithm"
	ChecksumValue      = Namespace + "checksumValue"
)

// Review properties.
const (
	Reviewer   = Namespace + "reviewer"
	ReviewDate = Namespace + "reviewDate"
)

// License properties and the sentinel individuals a license position
// may carry instead of a license node.
const (
	LicenseID     = Namespace + "licenseId"
	ExtractedText = Namespace + "extractedText"
	LicenseName   = Namespace + "licenseName"
	Member        = Namespace + "member"
	NoAssertion   = Namespace + "noassertion"
	None          = Namespace + "none"
)

// Package properties.
const (
	VersionInfo                         = Namespace + "versionInfo"
	PackageFileName                     = Namespace + "packageFileName"
	Supplier                            = Namespace + "supplier"
	Originator                          = Namespace + "originator"
	DownloadLocation                    = Namespace + "downloadLocation"
	SourceInfo                          = Namespace + "sourceInfo"
	Summary                             = Namespace + "summary"
	Description                         = Namespace + "description"
	PackageVerificationCode             = Namespace + "packageVerificationCode"
	PackageVerificationCodeValue        = Namespace + "packageVerificationCodeValue"
	PackageVerificationCodeExcludedFile = Namespace + "packageVerificationCodeExcludedFile"
	LicenseInfoFromFiles                = Namespace + "licenseInfoFromFiles"
	HasFile                             = Namespace + "hasFile"
)

// File properties. The four fileType individuals are the values the
// fileType property points at.
const (
	FileName        = Namespace + "fileName"
	FileType        = Namespace + "fileType"
	FileTypeSource  = Namespace + "fileType_source"
	FileTypeBinary  = Namespace + "fileType_binary"
	FileTypeArchive = Namespace + "fileType_archive"
	FileTypeOther   = Namespace + "fileType_other"
	FileContributor = Namespace + "fileContributor"
	FileDependency  = Namespace + "fileDependency"
	NoticeText      = Namespace + "noticeText"
)

// Properties shared by files, snippets and packages.
const (
	LicenseConcluded  = Namespace + "licenseConcluded"
	LicenseDeclared   = Namespace + "licenseDeclared"
	LicenseComments   = Namespace + "licenseComments"
	LicenseInfoInFile = Namespace + "licenseInfoInFile"
	CopyrightText     = Namespace + "copyrightText"
)

// Snippet properties.
const (
	SnippetFromFile      = Namespace + "snippetFromFile"
	LicenseInfoInSnippet = Namespace + "licenseInfoInSnippet"
)
