package tagvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsbom/spdx"
)

// exampleDoc is a complete document in the shape of the SPDX 2.1
// specification appendix: document header, external reference,
// annotation, legacy review, one package with one file, a snippet and
// an extracted license. It parses without diagnostics and validates
// without findings.
const exampleDoc = `SPDXVersion: SPDX-2.1
DataLicense: CC0-1.0
SPDXID: SPDXRef-DOCUMENT
DocumentName: glibc-v2.11.1
DocumentNamespace: https://spdx.org/spdxdocs/spdx-example-444504E0-4F89-41D3-9A0C-0305E82C3301
ExternalDocumentRef: DocumentRef-spdx-tool-2.1 https://spdx.org/spdxdocs/spdx-tools-v2.1-3F2504E0-4F89-41D3-9A0C-0305E82C3301 SHA1: d6a770ba38583ed4bb4525bd96e50461655d2758
DocumentComment: <text>This document was created using SPDX 2.1.</text>
Creator: Tool: LicenseFind-1.0
Creator: Organization: ExampleCodeInspect ()
Creator: Person: Jane Doe ()
Created: 2010-01-29T18:30:22Z
CreatorComment: <text>This package has been shipped in source and binary form.</text>
LicenseListVersion: 2.6
Annotator: Person: Jane Doe ()
AnnotationDate: 2010-01-29T18:30:22Z
AnnotationComment: <text>Document level annotation</text>
AnnotationType: OTHER
SPDXREF: SPDXRef-DOCUMENT
Reviewer: Person: Joe Reviewer
ReviewDate: 2010-02-10T00:00:00Z
ReviewComment: <text>This is just an example.</text>
PackageName: glibc
PackageVersion: 2.11.1
PackageFileName: glibc-2.11.1.tar.gz
PackageSupplier: Person: Jane Doe (jane.doe@example.com)
PackageOriginator: Organization: ExampleCodeInspect (contact@example.com)
PackageDownloadLocation: http://ftp.gnu.org/gnu/glibc/glibc-2.11.1.tar.gz
PackageVerificationCode: d6a770ba38583ed4bb4525bd96e50461655d2758 (excludes: ./package.spdx)
PackageChecksum: SHA1: 85ed0817af83a24ad8da68c2b5094de69833983c
PackageHomePage: http://ftp.gnu.org/gnu/glibc
PackageSourceInfo: <text>uses glibc-2_11-branch from git://sourceware.org/git/glibc.git</text>
PackageLicenseConcluded: (LGPL-2.1 OR LicenseRef-2)
PackageLicenseInfoFromFiles: GPL-2.0
PackageLicenseInfoFromFiles: LicenseRef-2
PackageLicenseDeclared: (LGPL-2.1 AND LicenseRef-2)
PackageLicenseComments: <text>The license was declared by the project maintainers.</text>
PackageCopyrightText: <text>Copyright 2008-2010 John Smith</text>
PackageSummary: <text>GNU C library.</text>
PackageDescription: <text>The GNU C Library defines functions that are specified by the ISO C standard.</text>
FileName: ./src/org/spdx/parser/DOAPProject.java
SPDXID: SPDXRef-DoapSource
FileType: SOURCE
FileChecksum: SHA1: 2fd4e1c67a2d28fced849ee1bb76e7391b93eb12
LicenseConcluded: Apache-2.0
LicenseInfoInFile: Apache-2.0
FileCopyrightText: <text>Copyright 2010, 2011 Source Auditor Inc.</text>
FileContributor: Open Logic Inc.
FileContributor: Source Auditor Inc.
ArtifactOfProjectName: AcmeTest
ArtifactOfProjectHomePage: http://www.acme.example/
ArtifactOfProjectURI: http://www.acme.example/doap
SnippetSPDXID: SPDXRef-Snippet
SnippetFromFileSPDXID: SPDXRef-DoapSource
SnippetLicenseConcluded: GPL-2.0
LicenseInfoInSnippet: GPL-2.0
SnippetCopyrightText: <text>Copyright 2008-2010 John Smith</text>
SnippetComment: <text>This snippet was identified as significant.</text>
SnippetName: from linux kernel
LicenseID: LicenseRef-2
ExtractedText: <text>This material may only be distributed subject to the terms of the license.</text>
LicenseName: CyberNeko License
LicenseCrossReference: http://people.apache.org/~andyc/neko/LICENSE
LicenseComment: <text>This license is used by Jena.</text>
`

func TestParser_Parse_CompleteDocument(t *testing.T) {
	doc, msgs := NewParser(nil).Parse(exampleDoc)
	require.Empty(t, msgs)

	assert.Equal(t, spdx.Version{Major: 2, Minor: 1}, doc.Version)
	assert.Equal(t, "CC0-1.0", doc.DataLicense.Identifier)
	assert.Equal(t, "glibc-v2.11.1", doc.Name)
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXID)
	assert.Equal(t, "This document was created using SPDX 2.1.", doc.Comment)

	require.Len(t, doc.ExternalDocumentRefs, 1)
	assert.Equal(t, spdx.ExternalDocumentRef{
		DocumentID: "DocumentRef-spdx-tool-2.1",
		URI:        "https://spdx.org/spdxdocs/spdx-tools-v2.1-3F2504E0-4F89-41D3-9A0C-0305E82C3301",
		Checksum:   spdx.NewSHA1("d6a770ba38583ed4bb4525bd96e50461655d2758"),
	}, doc.ExternalDocumentRefs[0])

	ci := doc.CreationInfo
	require.Len(t, ci.Creators, 3)
	assert.Equal(t, spdx.Tool{Name: "LicenseFind-1.0"}, ci.Creators[0])
	assert.Equal(t, spdx.Organization{Name: "ExampleCodeInspect"}, ci.Creators[1])
	assert.Equal(t, spdx.Person{Name: "Jane Doe"}, ci.Creators[2])
	assert.Equal(t, "2010-01-29T18:30:22Z", spdx.FormatTime(ci.Created))
	assert.Equal(t, "This package has been shipped in source and binary form.", ci.Comment)
	assert.Equal(t, spdx.Version{Major: 2, Minor: 6}, ci.LicenseListVersion)

	pkg := doc.Package
	require.NotNil(t, pkg)
	assert.Equal(t, "glibc", pkg.Name)
	assert.Equal(t, "2.11.1", pkg.Version)
	assert.Equal(t, "glibc-2.11.1.tar.gz", pkg.FileName)
	assert.Equal(t, spdx.Person{Name: "Jane Doe", Email: "jane.doe@example.com"}, pkg.Supplier)
	assert.Equal(t, spdx.Organization{Name: "ExampleCodeInspect", Email: "contact@example.com"}, pkg.Originator)
	assert.Equal(t, "http://ftp.gnu.org/gnu/glibc/glibc-2.11.1.tar.gz", pkg.DownloadLocation)
	assert.Equal(t, "d6a770ba38583ed4bb4525bd96e50461655d2758", pkg.VerificationCode.Value)
	assert.Equal(t, []string{"excludes: ./package.spdx"}, pkg.VerificationCode.ExcludedFiles)
	assert.Equal(t, spdx.NewSHA1("85ed0817af83a24ad8da68c2b5094de69833983c"), pkg.Checksum)
	assert.Equal(t, "http://ftp.gnu.org/gnu/glibc", pkg.HomePage)
	assert.Equal(t, "LGPL-2.1 OR LicenseRef-2", pkg.ConcludedLicense.String())
	assert.Equal(t, "LGPL-2.1 AND LicenseRef-2", pkg.DeclaredLicense.String())
	require.Len(t, pkg.LicensesFromFiles, 2)
	assert.Equal(t, "GPL-2.0", pkg.LicensesFromFiles[0].String())
	assert.Equal(t, "LicenseRef-2", pkg.LicensesFromFiles[1].String())
	assert.Equal(t, "Copyright 2008-2010 John Smith", pkg.Copyright)
	assert.Equal(t, "GNU C library.", pkg.Summary)

	require.Len(t, pkg.Files, 1)
	f := pkg.Files[0]
	assert.Equal(t, "./src/org/spdx/parser/DOAPProject.java", f.Name)
	assert.Equal(t, "SPDXRef-DoapSource", f.SPDXID)
	assert.Equal(t, spdx.FileTypeSource, f.Type)
	assert.Equal(t, spdx.NewSHA1("2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"), f.Checksum)
	assert.Equal(t, "Apache-2.0", f.ConcludedLicense.String())
	require.Len(t, f.LicensesInFile, 1)
	assert.Equal(t, "Copyright 2010, 2011 Source Auditor Inc.", f.Copyright)
	assert.Equal(t, []string{"Open Logic Inc.", "Source Auditor Inc."}, f.Contributors)
	assert.Equal(t, []string{"AcmeTest"}, f.ArtifactNames)
	assert.Equal(t, []string{"http://www.acme.example/"}, f.ArtifactHomePages)
	assert.Equal(t, []string{"http://www.acme.example/doap"}, f.ArtifactURIs)

	require.Len(t, doc.Snippets, 1)
	sn := doc.Snippets[0]
	assert.Equal(t, "SPDXRef-Snippet", sn.SPDXID)
	assert.Equal(t, "SPDXRef-DoapSource", sn.FileSPDXID)
	assert.Equal(t, "GPL-2.0", sn.ConcludedLicense.String())
	require.Len(t, sn.LicensesInSnippet, 1)
	assert.Equal(t, "Copyright 2008-2010 John Smith", sn.Copyright)
	assert.Equal(t, "from linux kernel", sn.Name)

	require.Len(t, doc.ExtractedLicenses, 1)
	lic := doc.ExtractedLicenses[0]
	assert.Equal(t, "LicenseRef-2", lic.Identifier)
	assert.Equal(t, "CyberNeko License", lic.Name)
	assert.Equal(t, []string{"http://people.apache.org/~andyc/neko/LICENSE"}, lic.CrossRefs)
	assert.NotEmpty(t, lic.Text)

	require.Len(t, doc.Reviews, 1)
	assert.Equal(t, spdx.Person{Name: "Joe Reviewer"}, doc.Reviews[0].Reviewer)
	assert.Equal(t, "2010-02-10T00:00:00Z", spdx.FormatTime(doc.Reviews[0].Date))

	require.Len(t, doc.Annotations, 1)
	an := doc.Annotations[0]
	assert.Equal(t, spdx.Person{Name: "Jane Doe"}, an.Annotator)
	assert.Equal(t, spdx.AnnotationOther, an.Type)
	assert.Equal(t, "SPDXRef-DOCUMENT", an.SPDXID)
}

func TestParser_Parse_ReuseAcrossDocuments(t *testing.T) {
	p := NewParser(nil)
	_, first := p.Parse(exampleDoc)
	require.Empty(t, first)

	doc, second := p.Parse(exampleDoc)
	require.Empty(t, second)
	assert.Equal(t, "glibc-v2.11.1", doc.Name)
}

func TestParser_Parse_DuplicateTag(t *testing.T) {
	doc, msgs := NewParser(nil).Parse("DocumentName: first\nDocumentName: second\n")
	assert.Equal(t, []string{"Only one DocumentName allowed, extra at line: 2"}, msgs)
	assert.Equal(t, "first", doc.Name)
}

func TestParser_Parse_FileTagBeforeFileName(t *testing.T) {
	_, msgs := NewParser(nil).Parse("LicenseConcluded: MIT\n")
	assert.Equal(t, []string{"LicenseConcluded Can not appear before FileName, line: 1"}, msgs)
}

func TestParser_Parse_InvalidVersionValue(t *testing.T) {
	_, msgs := NewParser(nil).Parse("SPDXVersion: SPDX-two.1\n")
	assert.Equal(t, []string{"Invalid SPDXVersion 'SPDX-two.1' must be SPDX-M.N where M and N are numbers. Line: 1"}, msgs)
}

func TestParser_Parse_WrongValueShapeRecovers(t *testing.T) {
	doc, msgs := NewParser(nil).Parse("SPDXVersion: <text>SPDX-2.1</text>\nDocumentName: glibc\n")
	assert.Equal(t, []string{"Invalid SPDXVersion value, must be SPDX-M.N where M and N are numbers. Line: 1"}, msgs)
	assert.Equal(t, "glibc", doc.Name)
}

func TestParser_Parse_DataLicenseMustBeCC0(t *testing.T) {
	_, msgs := NewParser(nil).Parse("DataLicense: MIT\n")
	assert.Equal(t, []string{"Invalid DataLicense value 'MIT', line:1 must be CC0-1.0"}, msgs)
}

func TestParser_Parse_DocumentSPDXIDValue(t *testing.T) {
	_, msgs := NewParser(nil).Parse("SPDXID: SPDXRef-Bad\n")
	assert.Equal(t, []string{"Invalid SPDXID value, SPDXID must be SPDXRef-DOCUMENT, line: 1"}, msgs)
}

func TestParser_Parse_CreatorWrongShape(t *testing.T) {
	_, msgs := NewParser(nil).Parse("Creator: Tool:\n")
	assert.Equal(t, []string{"Invalid Creator value must be a Person, Organization or Tool. Line: 1"}, msgs)
}

func TestParser_Parse_SupplierRejectsTool(t *testing.T) {
	_, msgs := NewParser(nil).Parse("PackageName: glibc\nPackageSupplier: Tool: LicenseFind-1.0\n")
	assert.Equal(t, []string{"PackageSupplier must be Organization, Person or NOASSERTION, line: 2"}, msgs)
}

func TestParser_Parse_DuplicateFileChecksum(t *testing.T) {
	in := "PackageName: glibc\n" +
		"FileName: ./a.c\n" +
		"FileChecksum: SHA1: 2fd4e1c67a2d28fced849ee1bb76e7391b93eb12\n" +
		"FileChecksum: SHA1: da39a3ee5e6b4b0d3255bfef95601890afd80709\n"
	doc, msgs := NewParser(nil).Parse(in)
	assert.Equal(t, []string{"Only one FileChecksum allowed, extra at line: 4"}, msgs)
	assert.Equal(t, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12", doc.Package.Files[0].Checksum.Value)
}

func TestParser_Parse_UnknownTag(t *testing.T) {
	doc, msgs := NewParser(nil).Parse("CustomField: hello\nDocumentName: glibc\n")
	assert.Equal(t, []string{"Found unknown tag : CustomField at line: 1"}, msgs)
	assert.Equal(t, "glibc", doc.Name)
}

func TestParser_Parse_IncompleteExternalDocumentRef(t *testing.T) {
	doc, msgs := NewParser(nil).Parse("ExternalDocumentRef: DocumentRef-extern\nDocumentName: glibc\n")
	assert.Equal(t, []string{"ExternalDocumentRef must contain External Document ID, SPDX Document URI and Checksum in the standard format, line:1."}, msgs)
	assert.Empty(t, doc.ExternalDocumentRefs)
	assert.Equal(t, "glibc", doc.Name)
}

func TestParser_Parse_ArtifactOutsideGroupDropped(t *testing.T) {
	in := "PackageName: glibc\n" +
		"FileName: ./a.c\n" +
		"ArtifactOfProjectHomePage: http://www.acme.example/\n"
	doc, msgs := NewParser(nil).Parse(in)
	for _, m := range msgs {
		assert.NotContains(t, m, "ArtifactOfProjectHomePage and ArtifactOfProjectURI")
	}
	assert.Empty(t, doc.Package.Files[0].ArtifactHomePages)
}

func TestParser_Parse_ArtifactDuplicateHomePage(t *testing.T) {
	in := "PackageName: glibc\n" +
		"FileName: ./a.c\n" +
		"ArtifactOfProjectName: AcmeTest\n" +
		"ArtifactOfProjectHomePage: http://www.acme.example/\n" +
		"ArtifactOfProjectHomePage: http://other.example/\n"
	doc, msgs := NewParser(nil).Parse(in)
	assert.Equal(t, []string{"ArtifactOfProjectHomePage and ArtifactOfProjectURI must immediately follow ArtifactOfProjectName, line: 5"}, msgs)
	assert.Equal(t, []string{"http://www.acme.example/"}, doc.Package.Files[0].ArtifactHomePages)
}

func TestParser_Parse_SnippetSPDXIDFormat(t *testing.T) {
	_, msgs := NewParser(nil).Parse("SnippetSPDXID: Bad Ref\n")
	assert.Equal(t, []string{`SPDXID must be "SPDXRef-[idstring]" where [idstring] is a unique string containing letters, numbers, ".", "-".`}, msgs)
}

func TestParser_Parse_CleanParseReturnsValidationFindings(t *testing.T) {
	_, msgs := NewParser(nil).Parse("SPDXVersion: SPDX-2.1\n")
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs, "document has no name")
	assert.Contains(t, msgs, "document has no package")
}
