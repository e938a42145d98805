package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

// InvalidDocumentError carries the validation findings that stopped a
// writer from serializing a document.
type InvalidDocumentError struct {
	Messages []string
}

func (e *InvalidDocumentError) Error() string {
	return "invalid document: " + strings.Join(e.Messages, "; ")
}

// TagValue serializes a validated document in tag:value notation. The
// field order is fixed and multi-valued collections are sorted, so the
// same document always serializes to the same bytes. A document that
// fails validation is refused.
func TagValue(doc *spdx.Document) (string, error) {
	if msgs := doc.Validate(); len(msgs) > 0 {
		return "", &InvalidDocumentError{Messages: msgs}
	}

	var sb strings.Builder
	writeDocumentInfo(&sb, doc)
	separators(&sb)
	writeCreationInfo(&sb, &doc.CreationInfo)
	separators(&sb)

	reviews := make([]*spdx.Review, len(doc.Reviews))
	copy(reviews, doc.Reviews)
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].Less(reviews[j]) })
	for _, r := range reviews {
		writeReview(&sb, r)
		separators(&sb)
	}

	annotations := make([]*spdx.Annotation, len(doc.Annotations))
	copy(annotations, doc.Annotations)
	sort.Slice(annotations, func(i, j int) bool { return annotations[i].Less(annotations[j]) })
	for _, a := range annotations {
		writeAnnotation(&sb, a)
		separators(&sb)
	}

	writePackage(&sb, doc.Package)
	separators(&sb)

	for _, s := range doc.Snippets {
		writeSnippet(&sb, s)
		separators(&sb)
	}

	sb.WriteString("# Extracted Licenses\n\n")
	extracted := make([]*license.ExtractedLicense, len(doc.ExtractedLicenses))
	copy(extracted, doc.ExtractedLicenses)
	sort.Slice(extracted, func(i, j int) bool { return extracted[i].Identifier < extracted[j].Identifier })
	for _, lic := range extracted {
		writeExtractedLicense(&sb, lic)
		separators(&sb)
	}

	return sb.String(), nil
}

func writeValue(sb *strings.Builder, tag, value string) {
	fmt.Fprintf(sb, "%s: %s\n", tag, value)
}

func writeTextValue(sb *strings.Builder, tag, value string) {
	fmt.Fprintf(sb, "%s: <text>%s</text>\n", tag, value)
}

// writeCopyright emits a copyright field, which is free text unless it
// carries one of the value sentinels.
func writeCopyright(sb *strings.Builder, tag, value string) {
	if spdx.IsSentinel(value) {
		writeValue(sb, tag, value)
		return
	}
	writeTextValue(sb, tag, value)
}

func separators(sb *strings.Builder) {
	sb.WriteString("\n\n")
}

// licenseString renders a license field value, parenthesizing composite
// expressions so they read back as a single value.
func licenseString(v license.Value) string {
	switch v.(type) {
	case *license.Conjunction, *license.Disjunction:
		return "(" + v.String() + ")"
	}
	return v.String()
}

func sortedLicenseStrings(values []license.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	sort.Strings(out)
	return out
}

func sortedStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}

func writeDocumentInfo(sb *strings.Builder, doc *spdx.Document) {
	sb.WriteString("# Document Information\n\n")
	writeValue(sb, "SPDXVersion", doc.Version.String())
	writeValue(sb, "DataLicense", doc.DataLicense.Identifier)
	writeValue(sb, "DocumentName", doc.Name)
	writeValue(sb, "SPDXID", "SPDXRef-DOCUMENT")
	writeValue(sb, "DocumentNamespace", doc.Namespace)
	if doc.Comment != "" {
		writeTextValue(sb, "DocumentComment", doc.Comment)
	}
	for _, ref := range doc.ExternalDocumentRefs {
		writeValue(sb, "ExternalDocumentRef",
			ref.DocumentID+" "+ref.URI+" "+ref.Checksum.Algorithm+":"+ref.Checksum.Value)
	}
}

func writeCreationInfo(sb *strings.Builder, ci *spdx.CreationInfo) {
	sb.WriteString("# Creation Info\n\n")
	creators := make([]string, len(ci.Creators))
	for i, c := range ci.Creators {
		creators[i] = c.String()
	}
	sort.Strings(creators)
	for _, c := range creators {
		writeValue(sb, "Creator", c)
	}
	writeValue(sb, "Created", spdx.FormatTime(ci.Created))
	if ci.Comment != "" {
		writeTextValue(sb, "CreatorComment", ci.Comment)
	}
	if !ci.LicenseListVersion.IsZero() {
		writeValue(sb, "LicenseListVersion", ci.LicenseListVersion.Pair())
	}
}

func writeReview(sb *strings.Builder, r *spdx.Review) {
	sb.WriteString("# Review\n\n")
	writeValue(sb, "Reviewer", r.Reviewer.String())
	writeValue(sb, "ReviewDate", spdx.FormatTime(r.Date))
	if r.Comment != "" {
		writeTextValue(sb, "ReviewComment", r.Comment)
	}
}

func writeAnnotation(sb *strings.Builder, a *spdx.Annotation) {
	sb.WriteString("# Annotation\n\n")
	writeValue(sb, "Annotator", a.Annotator.String())
	writeValue(sb, "AnnotationDate", spdx.FormatTime(a.Date))
	if a.Comment != "" {
		writeTextValue(sb, "AnnotationComment", a.Comment)
	}
	writeValue(sb, "AnnotationType", string(a.Type))
	writeValue(sb, "SPDXREF", a.SPDXID)
}

func writePackage(sb *strings.Builder, p *spdx.Package) {
	sb.WriteString("# Package\n\n")
	writeValue(sb, "PackageName", p.Name)
	if p.Version != "" {
		writeValue(sb, "PackageVersion", p.Version)
	}
	writeValue(sb, "PackageDownloadLocation", p.DownloadLocation)
	if p.Summary != "" {
		writeTextValue(sb, "PackageSummary", p.Summary)
	}
	if p.SourceInfo != "" {
		writeTextValue(sb, "PackageSourceInfo", p.SourceInfo)
	}
	if p.FileName != "" {
		writeValue(sb, "PackageFileName", p.FileName)
	}
	if p.Supplier != nil {
		writeValue(sb, "PackageSupplier", p.Supplier.String())
	}
	if p.Originator != nil {
		writeValue(sb, "PackageOriginator", p.Originator.String())
	}
	writeValue(sb, "PackageChecksum", p.Checksum.String())
	writeValue(sb, "PackageVerificationCode", p.VerificationCode.String())
	if p.Description != "" {
		writeTextValue(sb, "PackageDescription", p.Description)
	}
	writeValue(sb, "PackageLicenseDeclared", licenseString(p.DeclaredLicense))
	writeValue(sb, "PackageLicenseConcluded", licenseString(p.ConcludedLicense))
	for _, lic := range sortedLicenseStrings(p.LicensesFromFiles) {
		writeValue(sb, "PackageLicenseInfoFromFiles", lic)
	}
	if p.LicenseComment != "" {
		writeTextValue(sb, "PackageLicenseComments", p.LicenseComment)
	}
	writeCopyright(sb, "PackageCopyrightText", p.Copyright)
	if p.HomePage != "" {
		writeValue(sb, "PackageHomePage", p.HomePage)
	}

	files := make([]*spdx.File, len(p.Files))
	copy(files, p.Files)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	for _, f := range files {
		separators(sb)
		writeFile(sb, f)
	}
}

func writeFile(sb *strings.Builder, f *spdx.File) {
	sb.WriteString("# File\n\n")
	writeValue(sb, "FileName", f.Name)
	writeValue(sb, "SPDXID", f.SPDXID)
	if f.Type != 0 {
		writeValue(sb, "FileType", f.Type.String())
	}
	writeValue(sb, "FileChecksum", f.Checksum.String())
	writeValue(sb, "LicenseConcluded", licenseString(f.ConcludedLicense))
	for _, lic := range sortedLicenseStrings(f.LicensesInFile) {
		writeValue(sb, "LicenseInfoInFile", lic)
	}
	writeCopyright(sb, "FileCopyrightText", f.Copyright)
	if f.LicenseComment != "" {
		writeTextValue(sb, "LicenseComments", f.LicenseComment)
	}
	if f.Comment != "" {
		writeTextValue(sb, "FileComment", f.Comment)
	}
	if f.Notice != "" {
		writeTextValue(sb, "FileNotice", f.Notice)
	}
	for _, c := range sortedStrings(f.Contributors) {
		writeValue(sb, "FileContributor", c)
	}
	for _, d := range sortedStrings(f.Dependencies) {
		writeValue(sb, "FileDependency", d)
	}
	writeArtifacts(sb, f)
}

// writeArtifacts emits the legacy artifact-of columns row by row. A row
// may be ragged when the document declared fewer names or URIs than
// home pages; only the cells that exist are written.
func writeArtifacts(sb *strings.Builder, f *spdx.File) {
	n := len(f.ArtifactNames)
	if len(f.ArtifactHomePages) > n {
		n = len(f.ArtifactHomePages)
	}
	if len(f.ArtifactURIs) > n {
		n = len(f.ArtifactURIs)
	}

	type row struct{ name, home, uri string }
	rows := make([]row, n)
	for i := range rows {
		if i < len(f.ArtifactNames) {
			rows[i].name = f.ArtifactNames[i]
		}
		if i < len(f.ArtifactHomePages) {
			rows[i].home = f.ArtifactHomePages[i]
		}
		if i < len(f.ArtifactURIs) {
			rows[i].uri = f.ArtifactURIs[i]
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name != rows[j].name {
			return rows[i].name < rows[j].name
		}
		if rows[i].home != rows[j].home {
			return rows[i].home < rows[j].home
		}
		return rows[i].uri < rows[j].uri
	})

	for _, r := range rows {
		if r.name != "" {
			writeValue(sb, "ArtifactOfProjectName", r.name)
		}
		if r.home != "" {
			writeValue(sb, "ArtifactOfProjectHomePage", r.home)
		}
		if r.uri != "" {
			writeValue(sb, "ArtifactOfProjectURI", r.uri)
		}
	}
}

func writeSnippet(sb *strings.Builder, s *spdx.Snippet) {
	sb.WriteString("# Snippet\n\n")
	writeValue(sb, "SnippetSPDXID", s.SPDXID)
	writeValue(sb, "SnippetFromFileSPDXID", s.FileSPDXID)
	writeCopyright(sb, "SnippetCopyrightText", s.Copyright)
	if s.Name != "" {
		writeValue(sb, "SnippetName", s.Name)
	}
	if s.Comment != "" {
		writeTextValue(sb, "SnippetComment", s.Comment)
	}
	if s.LicenseComment != "" {
		writeTextValue(sb, "SnippetLicenseComments", s.LicenseComment)
	}
	writeValue(sb, "SnippetLicenseConcluded", licenseString(s.ConcludedLicense))
	for _, lic := range sortedLicenseStrings(s.LicensesInSnippet) {
		writeValue(sb, "LicenseInfoInSnippet", lic)
	}
}

func writeExtractedLicense(sb *strings.Builder, lic *license.ExtractedLicense) {
	writeValue(sb, "LicenseID", lic.Identifier)
	if lic.Name != "" {
		writeValue(sb, "LicenseName", lic.Name)
	}
	if lic.Comment != "" {
		writeTextValue(sb, "LicenseComment", lic.Comment)
	}
	for _, ref := range sortedStrings(lic.CrossRefs) {
		writeValue(sb, "LicenseCrossReference", ref)
	}
	writeTextValue(sb, "ExtractedText", lic.Text)
}
