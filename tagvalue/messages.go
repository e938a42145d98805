package tagvalue

// Diagnostic texts reported by the parser. Placeholders are filled in
// statement order: quoted values first, line numbers last. Most carry
// the line of the tag that failed; a few quote the offending value and
// point at the value's own line instead.
const (
	msgToolValue   = "Invalid tool value %s at line: %d"
	msgOrgValue    = "Invalid organization value %s at line: %d"
	msgPersonValue = "Invalid person value %s at line: %d"

	msgMoreThanOne = "Only one %s allowed, extra at line: %d"
	msgABeforeB    = "%s Can not appear before %s, line: %d"

	msgDocVersionValue       = "Invalid SPDXVersion '%s' must be SPDX-M.N where M and N are numbers. Line: %d"
	msgDocVersionValueType   = "Invalid SPDXVersion value, must be SPDX-M.N where M and N are numbers. Line: %d"
	msgDocLicenseValue       = "Invalid DataLicense value '%s', line:%d must be CC0-1.0"
	msgDocLicenseValueType   = "DataLicense must be CC0-1.0, line: %d"
	msgDocNameValue          = "DocumentName must be single line of text, line: %d"
	msgDocSPDXIDValue        = "Invalid SPDXID value, SPDXID must be SPDXRef-DOCUMENT, line: %d"
	msgExtDocRefValue        = "ExternalDocumentRef must contain External Document ID, SPDX Document URI and Checksum in the standard format, line:%d."
	msgDocCommentValueType   = "DocumentComment value must be free form text between <text></text> tags, line:%d"
	msgDocNamespaceValue     = `Invalid DocumentNamespace value %s, must contain a scheme (e.g. "https:") and should not contain the "#" delimiter, line:%d`
	msgDocNamespaceValueType = `Invalid DocumentNamespace value, must contain a scheme (e.g. "https:") and should not contain the "#" delimiter, line: %d`

	msgCreatorValueType        = "Invalid Creator value must be a Person, Organization or Tool. Line: %d"
	msgCreatedValueType        = "Created value must be date in ISO 8601 format, line: %d"
	msgCreatorCommentValueType = "CreatorComment value must be free form text between <text></text> tags, line:%d"
	msgLicListVerValue         = "Invalid LicenseListVersion value %s, must be M.N where M and N are numbers, line: %d"
	msgLicListVerValueType     = "LicenseListVersion must be M.N where M and N are numbers, line: %d"

	msgReviewerValueType      = "Invalid Reviewer value must be a Person, Organization or Tool. Line: %d"
	msgReviewDateValueType    = "ReviewDate value must be date in ISO 8601 format, line: %d"
	msgReviewCommentValueType = "ReviewComment value must be free form text between <text></text> tags, line:%d"

	msgAnnotatorValueType         = "Invalid Annotator value must be a Person, Organization or Tool. Line: %d"
	msgAnnotationDateValueType    = "AnnotationDate value must be date in ISO 8601 format, line: %d"
	msgAnnotationCommentValueType = "AnnotationComment value must be free form text between <text></text> tags, line:%d"
	msgAnnotationTypeValue        = `AnnotationType must be "REVIEW" or "OTHER". Line: %d`
	msgAnnotationSPDXIDValue      = `SPDXREF must be ["DocumentRef-"[idstring]":"]SPDXID where ["DocumentRef-"[idstring]":"] is an optional reference to an external SPDX document and SPDXID is a unique string containing letters, numbers, ".","-".`

	msgPackageNameValue    = "PackageName must be single line of text, line: %d"
	msgPkgVersionValue     = "PackageVersion must be single line of text, line: %d"
	msgPkgFileNameValue    = "PackageFileName must be single line of text, line: %d"
	msgPkgSupplierValue    = "PackageSupplier must be Organization, Person or NOASSERTION, line: %d"
	msgPkgOriginatorValue  = "PackageOriginator must be Organization, Person or NOASSERTION, line: %d"
	msgPkgDownloadValue    = "PackageDownloadLocation must be a url or NONE or NOASSERTION, line: %d"
	msgPkgHomeValue        = "PackageHomePage must be a url or NONE or NOASSERTION, line: %d"
	msgPkgSrcInfoValue     = "PackageSourceInfo must be free form text, line: %d"
	msgPkgChecksumValue    = "PackageChecksum must be a single line of text, line: %d"
	msgPkgVerifCodeValue   = "PackageVerificationCode must be a single line of text, line: %d"
	msgPkgLicsConcValue    = "PackageLicenseConcluded must be NOASSERTION, NONE, license identifier or license list, line: %d"
	msgPkgLicFromFileValue = "PackageLicenseInfoFromFiles must be, line: %d"
	msgPkgLicsDeclValue    = "PackageLicenseDeclared must be NOASSERTION, NONE, license identifier or license list, line: %d"
	msgPkgLicsCommentValue = "PackageLicenseComments must be free form text, line: %d"
	msgPkgCopyrightValue   = "Package copyright text must be free form text, line: %d"
	msgPkgSummaryValue     = "PackageSummary must be free form text, line: %d"
	msgPkgDescValue        = "PackageDescription must be free form text, line: %d"

	msgFileNameValue        = "FileName must be a single line of text, line: %d"
	msgFileCommentValue     = "FileComment must be free form text, line:%d"
	msgFileTypeValue        = "FileType must be one of OTHER, BINARY, SOURCE or ARCHIVE, line: %d"
	msgFileChecksumValue    = "FileChecksum must be a single line of text starting with 'SHA1:', line:%d"
	msgFileLicsConcValue    = "LicenseConcluded must be NOASSERTION, NONE, license identifier or license list, line:%d"
	msgFileLicsInfoValue    = "LicenseInfoInFile must be NOASSERTION, NONE or license identifier, line: %d"
	msgFileLicsCommentValue = "LicenseComments must be free form text, line: %d"
	msgFileCopyrightValue   = "FileCopyrightText must be one of NOASSERTION, NONE or free form text, line: %d"
	msgFileNoticeValue      = "FileNotice must be free form text, line: %d"
	msgFileContribValue     = "FileContributor must be a single line, line: %d"
	msgFileDepValue         = "FileDependency must be a single line, line: %d"

	msgArtifactNameValue = "ArtifactOfProjectName must be a single line, line: %d"
	msgArtifactOptOrder  = "ArtifactOfProjectHomePage and ArtifactOfProjectURI must immediately follow ArtifactOfProjectName, line: %d"
	msgArtifactHomeValue = "ArtifactOfProjectHomePage must be a URL or UNKNOWN, line: %d"
	msgArtifactURIValue  = "ArtifactOfProjectURI must be a URI or UNKNOWN, line: %d"

	msgUnknownTag = "Found unknown tag : %s at line: %d"

	msgLicsIDValue       = "LicenseID must start with 'LicenseRef-', line: %d"
	msgLicsTextValue     = "ExtractedText must be free form text, line: %d"
	msgLicsNameValue     = "LicenseName must be single line of text or NOASSERTION, line: %d"
	msgLicsCommentValue  = "LicenseComment must be free form text, line: %d"
	msgLicsCrossRefValue = "LicenseCrossReference must be uri as single line of text, line: %d"

	// Shared by the file SPDXID and SnippetSPDXID diagnostics, neither of
	// which reports a line number.
	msgSPDXRefFormat = `SPDXID must be "SPDXRef-[idstring]" where [idstring] is a unique string containing letters, numbers, ".", "-".`

	msgSnippetNameValue     = "SnippetName must be a single line of text, line: %d"
	msgSnipCommentValue     = "SnippetComment must be free form text, line: %d"
	msgSnipCopyrightValue   = "SnippetCopyrightText must be one of NOASSERTION, NONE or free form text, line: %d"
	msgSnipLicsCommentValue = "SnippetLicenseComments must be free form text, line: %d"
	msgSnipFromFileValue    = `SnippetFromFileSPDXID must be ["DocumentRef-"[idstring]":"] SPDXID where DocumentRef-[idstring]: is an optional reference to an external SPDX Document and SPDXID is a string containing letters, numbers, ".", "-".`
	msgSnipLicsConcValue    = "SnippetLicenseConcluded must be NOASSERTION, NONE, license identifier or license list, line:%d"
	msgSnipLicsInfoValue    = "LicenseInfoInSnippet must be NOASSERTION, NONE or license identifier, line: %d"
)
