package tagvalue

// TokenType identifies a lexical token in SPDX tag:value notation.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	// Value tokens. The lexer classifies a value by shape the moment it
	// reads it, so the parser never re-scans raw text.
	TokenText        // <text>...</text> block, delimiters included
	TokenLine        // single free-form line
	TokenDate        // 2006-01-02T15:04:05Z timestamp
	TokenChecksum    // SHA1: <40 hex digits>, prefix included
	TokenDocRefID    // DocumentRef-<idstring>
	TokenDocURI      // bare http/https/ftp URI
	TokenExtChecksum // bare SHA1 value inside an ExternalDocumentRef
	TokenToolValue   // Tool: <name>
	TokenOrgValue    // Organization: <name>
	TokenPersonValue // Person: <name>
	TokenUnknownTag  // tag word not in the vocabulary

	// Reserved value keywords.
	TokenNoAssertion // NOASSERTION
	TokenNone        // NONE
	TokenUnknownValue
	TokenSource
	TokenBinary
	TokenArchive
	TokenOtherType

	// Tags. The block is contiguous so IsTag can test by range; keep
	// new tags inside it.
	TokenDocVersion
	TokenDocLicense
	TokenDocName
	TokenSPDXID
	TokenDocComment
	TokenDocNamespace
	TokenExtDocRef
	TokenCreator
	TokenCreated
	TokenCreatorComment
	TokenLicenseListVersion
	TokenReviewer
	TokenReviewDate
	TokenReviewComment
	TokenAnnotator
	TokenAnnotationDate
	TokenAnnotationComment
	TokenAnnotationType
	TokenAnnotationRef
	TokenPkgName
	TokenPkgVersion
	TokenPkgDownload
	TokenPkgSummary
	TokenPkgSourceInfo
	TokenPkgFileName
	TokenPkgSupplier
	TokenPkgOriginator
	TokenPkgChecksum
	TokenPkgVerifCode
	TokenPkgDescription
	TokenPkgLicenseDeclared
	TokenPkgLicenseConcluded
	TokenPkgLicenseFromFiles
	TokenPkgLicenseComment
	TokenPkgCopyright
	TokenPkgHomePage
	TokenFileName
	TokenFileType
	TokenFileChecksum
	TokenFileLicenseConcluded
	TokenFileLicenseInfo
	TokenFileCopyright
	TokenFileLicenseComment
	TokenFileComment
	TokenFileNotice
	TokenFileContributor
	TokenFileDependency
	TokenArtifactName
	TokenArtifactHome
	TokenArtifactURI
	TokenLicenseID
	TokenLicenseText
	TokenLicenseName
	TokenLicenseCrossRef
	TokenLicenseComment
	TokenSnippetSPDXID
	TokenSnippetName
	TokenSnippetComment
	TokenSnippetCopyright
	TokenSnippetLicenseComment
	TokenSnippetFromFile
	TokenSnippetLicenseConcluded
	TokenSnippetLicenseInfo
)

// Token is one lexical unit with the line it started on. Text blocks
// report the line of the opening tag, not the closing delimiter.
type Token struct {
	Type  TokenType
	Value string
	Line  int
}

// IsTag reports whether the token type is a known SPDX tag.
func IsTag(t TokenType) bool {
	return t >= TokenDocVersion && t <= TokenSnippetLicenseInfo
}

// keywords maps tag spellings and reserved value words to their token
// types. Tag words outside this table lex as TokenUnknownTag; value
// lines that exactly equal a reserved word lex as that keyword token.
var keywords = map[string]TokenType{
	"SPDXVersion":                 TokenDocVersion,
	"DataLicense":                 TokenDocLicense,
	"DocumentName":                TokenDocName,
	"SPDXID":                      TokenSPDXID,
	"DocumentComment":             TokenDocComment,
	"DocumentNamespace":           TokenDocNamespace,
	"ExternalDocumentRef":         TokenExtDocRef,
	"Creator":                     TokenCreator,
	"Created":                     TokenCreated,
	"CreatorComment":              TokenCreatorComment,
	"LicenseListVersion":          TokenLicenseListVersion,
	"Reviewer":                    TokenReviewer,
	"ReviewDate":                  TokenReviewDate,
	"ReviewComment":               TokenReviewComment,
	"Annotator":                   TokenAnnotator,
	"AnnotationDate":              TokenAnnotationDate,
	"AnnotationComment":           TokenAnnotationComment,
	"AnnotationType":              TokenAnnotationType,
	"SPDXREF":                     TokenAnnotationRef,
	"PackageName":                 TokenPkgName,
	"PackageVersion":              TokenPkgVersion,
	"PackageDownloadLocation":     TokenPkgDownload,
	"PackageSummary":              TokenPkgSummary,
	"PackageSourceInfo":           TokenPkgSourceInfo,
	"PackageFileName":             TokenPkgFileName,
	"PackageSupplier":             TokenPkgSupplier,
	"PackageOriginator":           TokenPkgOriginator,
	"PackageChecksum":             TokenPkgChecksum,
	"PackageVerificationCode":     TokenPkgVerifCode,
	"PackageDescription":          TokenPkgDescription,
	"PackageLicenseDeclared":      TokenPkgLicenseDeclared,
	"PackageLicenseConcluded":     TokenPkgLicenseConcluded,
	"PackageLicenseInfoFromFiles": TokenPkgLicenseFromFiles,
	"PackageLicenseComments":      TokenPkgLicenseComment,
	"PackageCopyrightText":        TokenPkgCopyright,
	"PackageHomePage":             TokenPkgHomePage,
	"FileName":                    TokenFileName,
	"FileType":                    TokenFileType,
	"FileChecksum":                TokenFileChecksum,
	"LicenseConcluded":            TokenFileLicenseConcluded,
	"LicenseInfoInFile":           TokenFileLicenseInfo,
	"FileCopyrightText":           TokenFileCopyright,
	"LicenseComments":             TokenFileLicenseComment,
	"FileComment":                 TokenFileComment,
	"FileNotice":                  TokenFileNotice,
	"FileContributor":             TokenFileContributor,
	"FileDependency":              TokenFileDependency,
	"ArtifactOfProjectName":       TokenArtifactName,
	"ArtifactOfProjectHomePage":   TokenArtifactHome,
	"ArtifactOfProjectURI":        TokenArtifactURI,
	"LicenseID":                   TokenLicenseID,
	"ExtractedText":               TokenLicenseText,
	"LicenseName":                 TokenLicenseName,
	"LicenseCrossReference":       TokenLicenseCrossRef,
	"LicenseComment":              TokenLicenseComment,
	"SnippetSPDXID":               TokenSnippetSPDXID,
	"SnippetName":                 TokenSnippetName,
	"SnippetComment":              TokenSnippetComment,
	"SnippetCopyrightText":        TokenSnippetCopyright,
	"SnippetLicenseComments":      TokenSnippetLicenseComment,
	"SnippetFromFileSPDXID":       TokenSnippetFromFile,
	"SnippetLicenseConcluded":     TokenSnippetLicenseConcluded,
	"LicenseInfoInSnippet":        TokenSnippetLicenseInfo,

	"NOASSERTION": TokenNoAssertion,
	"NONE":        TokenNone,
	"UNKNOWN":     TokenUnknownValue,
	"SOURCE":      TokenSource,
	"BINARY":      TokenBinary,
	"ARCHIVE":     TokenArchive,
	"OTHER":       TokenOtherType,
}
