package export

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/rdf"
	"github.com/c360studio/semsbom/spdx"
	"github.com/c360studio/semsbom/vocabulary/doap"
	"github.com/c360studio/semsbom/vocabulary/rdfns"
	"github.com/c360studio/semsbom/vocabulary/spdxterms"
)

// GraphConsistencyError reports a cross-reference that could not be
// resolved to a node while assembling the RDF graph: a concluded
// license the document never defines, or a file reference that does
// not land on exactly one file node.
type GraphConsistencyError struct {
	Message string
}

func (e *GraphConsistencyError) Error() string { return e.Message }

// fallbackDocumentIRI names the document node when the document has no
// namespace to derive one from.
const fallbackDocumentIRI = "http://www.spdx.org/tools#SPDXRef-DOCUMENT"

// fileNamespace and snippetNamespace are the bases under which file
// and snippet nodes are minted from their SPDX identifiers.
const (
	fileNamespace    = "http://www.spdx.org/files#"
	snippetNamespace = "http://spdx.org/rdf/terms/Snippet#"
)

// Graph assembles the RDF graph for a validated document and
// canonicalizes it, so equal documents produce graphs that serialize
// to identical bytes no matter what order their entities were built
// in. A document that fails validation is refused.
func (e *Exporter) Graph(doc *spdx.Document) (*rdf.Graph, error) {
	if msgs := doc.Validate(); len(msgs) > 0 {
		return nil, &InvalidDocumentError{Messages: msgs}
	}
	w := &rdfWriter{g: rdf.NewGraph(), doc: doc, catalog: e.catalog, logger: e.logger}
	if err := w.write(); err != nil {
		return nil, err
	}
	return rdf.Canonicalize(w.g), nil
}

// NTriples serializes the document's canonical graph as N-Triples.
func (e *Exporter) NTriples(doc *spdx.Document) (string, error) {
	g, err := e.Graph(doc)
	if err != nil {
		return "", err
	}
	return rdf.NTriples(g), nil
}

// Turtle serializes the document's canonical graph as Turtle with the
// default prefix table.
func (e *Exporter) Turtle(doc *spdx.Document) (string, error) {
	g, err := e.Graph(doc)
	if err != nil {
		return "", err
	}
	return rdf.Turtle(g, defaultPrefixes()), nil
}

// defaultPrefixes returns the namespace prefixes for Turtle output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  rdfns.RDF,
		"rdfs": rdfns.RDFS,
		"spdx": spdxterms.Namespace,
		"doap": doap.Namespace,
		"lic":  spdxterms.LicenseNamespace,
	}
}

// rdfWriter accumulates one document's triples. Node identity is what
// keeps the graph consistent: files are located through their fileName
// triple and extracted licenses through their licenseId triple, so
// reaching the same entity from another edge reuses its node instead
// of duplicating it.
type rdfWriter struct {
	g       *rdf.Graph
	doc     *spdx.Document
	catalog *license.Catalog
	logger  *slog.Logger
}

func (w *rdfWriter) write() error {
	docNode := w.documentNode()
	w.g.Add(docNode, rdfns.Type, rdf.IRI(spdxterms.ClassSpdxDocument))
	w.g.Add(docNode, spdxterms.SpecVersion, rdf.Literal(w.doc.Version.String()))
	w.g.Add(docNode, spdxterms.DataLicense, rdf.IRI(w.doc.DataLicense.URL()))
	w.g.Add(docNode, spdxterms.Name, rdf.Literal(w.doc.Name))

	w.g.Add(docNode, spdxterms.CreationInfoProp, w.creationInfoNode())

	for _, r := range w.doc.Reviews {
		w.g.Add(docNode, spdxterms.Reviewed, w.reviewNode(r))
	}
	for _, ref := range w.doc.ExternalDocumentRefs {
		w.g.Add(docNode, spdxterms.ExternalDocumentRefProp, w.externalDocumentRefNode(ref))
	}
	for _, lic := range w.doc.ExtractedLicenses {
		w.g.Add(docNode, spdxterms.HasExtractedLicensingInfo, w.extractedLicenseNode(lic))
	}

	for _, f := range w.doc.Files() {
		fn, err := w.fileNode(f)
		if err != nil {
			return err
		}
		w.g.Add(docNode, spdxterms.ReferencesFile, fn)
	}
	if err := w.writeFileDependencies(); err != nil {
		return err
	}

	pkgNode, err := w.packageNode()
	if err != nil {
		return err
	}
	w.g.Add(docNode, spdxterms.DescribesPackage, pkgNode)

	// Snippet nodes hang off the graph through their typing and their
	// snippetFromFile value; the document node does not point at them.
	for _, s := range w.doc.Snippets {
		if _, err := w.snippetNode(s); err != nil {
			return err
		}
	}
	return nil
}

func (w *rdfWriter) documentNode() rdf.IRI {
	if w.doc.Namespace == "" {
		return rdf.IRI(fallbackDocumentIRI)
	}
	return rdf.IRI(w.doc.Namespace + "#" + w.doc.SPDXID)
}

func (w *rdfWriter) creationInfoNode() rdf.Node {
	ci := &w.doc.CreationInfo
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassCreationInfo))
	w.g.Add(n, spdxterms.Created, rdf.Literal(spdx.FormatTime(ci.Created)))
	for _, c := range ci.Creators {
		w.g.Add(n, spdxterms.Creator, rdf.Literal(c.String()))
	}
	if ci.Comment != "" {
		w.g.Add(n, rdfns.Comment, rdf.Literal(ci.Comment))
	}
	if !ci.LicenseListVersion.IsZero() {
		w.g.Add(n, spdxterms.LicenseListVersion, rdf.Literal(ci.LicenseListVersion.Pair()))
	}
	return n
}

func (w *rdfWriter) reviewNode(r *spdx.Review) rdf.Node {
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassReview))
	w.g.Add(n, spdxterms.Reviewer, rdf.Literal(r.Reviewer.String()))
	w.g.Add(n, spdxterms.ReviewDate, rdf.Literal(spdx.FormatTime(r.Date)))
	if r.Comment != "" {
		w.g.Add(n, rdfns.Comment, rdf.Literal(r.Comment))
	}
	return n
}

func (w *rdfWriter) externalDocumentRefNode(ref spdx.ExternalDocumentRef) rdf.Node {
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassExternalDocumentRef))
	w.g.Add(n, spdxterms.ExternalDocumentID, rdf.Literal(ref.DocumentID))
	w.g.Add(n, spdxterms.SpdxDocument, rdf.Literal(ref.URI))
	w.g.Add(n, spdxterms.Checksum, w.checksumNode(ref.Checksum))
	return n
}

func (w *rdfWriter) checksumNode(c spdx.Checksum) rdf.Node {
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassChecksum))
	w.g.Add(n, spdxterms.Algorithm, rdf.Literal(c.Algorithm))
	w.g.Add(n, spdxterms.ChecksumValue, rdf.Literal(c.Value))
	return n
}

// specialOrLiteral maps the NOASSERTION and NONE sentinels onto their
// vocabulary individuals and anything else onto a literal.
func specialOrLiteral(s string) rdf.Node {
	switch s {
	case string(license.NoAssertion):
		return rdf.IRI(spdxterms.NoAssertion)
	case string(license.None):
		return rdf.IRI(spdxterms.None)
	}
	return rdf.Literal(s)
}

// licenseOrSpecial maps a license position onto its node: the special
// individuals for the sentinels, a license node for everything else.
func (w *rdfWriter) licenseOrSpecial(v license.Value) (rdf.Node, error) {
	if s, ok := v.(license.Special); ok {
		return specialOrLiteral(string(s)), nil
	}
	return w.licenseNode(v)
}

func (w *rdfWriter) licenseNode(v license.Value) (rdf.Node, error) {
	switch l := v.(type) {
	case *license.Conjunction:
		return w.licenseSetNode(rdf.IRI(spdxterms.ClassConjunctiveLicenseSet), flattenConjunction(l, nil))
	case *license.Disjunction:
		return w.licenseSetNode(rdf.IRI(spdxterms.ClassDisjunctiveLicenseSet), flattenDisjunction(l, nil))
	case *license.ExtractedLicense:
		return w.extractedLicenseNode(l), nil
	case license.License:
		return w.catalogOrExtracted(l)
	default:
		return nil, &GraphConsistencyError{Message: fmt.Sprintf("cannot build a license node for %s", v)}
	}
}

func (w *rdfWriter) licenseSetNode(class rdf.IRI, members []license.Value) (rdf.Node, error) {
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, class)
	for _, m := range members {
		mn, err := w.licenseNode(m)
		if err != nil {
			return nil, err
		}
		w.g.Add(n, spdxterms.Member, mn)
	}
	return n, nil
}

// flattenConjunction collects the leaves of a run of nested
// conjunctions. A disjunction underneath stays one member and becomes
// its own nested set, preserving the grouping of the expression.
func flattenConjunction(v license.Value, out []license.Value) []license.Value {
	if c, ok := v.(*license.Conjunction); ok {
		out = flattenConjunction(c.Left, out)
		return flattenConjunction(c.Right, out)
	}
	return append(out, v)
}

func flattenDisjunction(v license.Value, out []license.Value) []license.Value {
	if d, ok := v.(*license.Disjunction); ok {
		out = flattenDisjunction(d.Left, out)
		return flattenDisjunction(d.Right, out)
	}
	return append(out, v)
}

// catalogOrExtracted resolves a bare license identifier: catalog
// licenses become their canonical list IRIs, anything else must be
// defined by the document as an extracted license.
func (w *rdfWriter) catalogOrExtracted(l license.License) (rdf.Node, error) {
	if w.catalog.Has(l.Identifier) {
		return rdf.IRI(l.URL()), nil
	}
	if lic := w.doc.ExtractedLicense(l.Identifier); lic != nil {
		return w.extractedLicenseNode(lic), nil
	}
	return nil, &GraphConsistencyError{Message: "missing extracted license: " + l.Identifier}
}

// extractedLicenseNode returns the node describing an extracted
// license, creating it on first use. Lookup is by licenseId triple, so
// every reference to the same identifier lands on the same node.
func (w *rdfWriter) extractedLicenseNode(lic *license.ExtractedLicense) rdf.Node {
	if subjects := w.g.SubjectsWith(spdxterms.LicenseID, rdf.Literal(lic.Identifier)); len(subjects) > 0 {
		return subjects[0]
	}
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassExtractedLicensingInfo))
	w.g.Add(n, spdxterms.LicenseID, rdf.Literal(lic.Identifier))
	w.g.Add(n, spdxterms.ExtractedText, rdf.Literal(lic.Text))
	if lic.Name != "" {
		w.g.Add(n, spdxterms.LicenseName, specialOrLiteral(lic.Name))
	}
	for _, ref := range lic.CrossRefs {
		w.g.Add(n, rdfns.SeeAlso, rdf.IRI(ref))
	}
	if lic.Comment != "" {
		w.g.Add(n, rdfns.Comment, rdf.Literal(lic.Comment))
	}
	return n
}

// fileNode returns the node for a file, creating it on first use.
// Files are located through their fileName triple before a new node is
// minted, so a file reached twice is described once.
func (w *rdfWriter) fileNode(f *spdx.File) (rdf.Node, error) {
	if subjects := w.g.SubjectsWith(spdxterms.FileName, rdf.Literal(f.Name)); len(subjects) > 0 {
		return subjects[0], nil
	}

	n := rdf.IRI(fileNamespace + f.SPDXID)
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassFile))
	w.g.Add(n, spdxterms.FileName, rdf.Literal(f.Name))
	if f.Comment != "" {
		w.g.Add(n, rdfns.Comment, rdf.Literal(f.Comment))
	}
	if f.Type != 0 {
		w.g.Add(n, spdxterms.FileType, fileTypeIRI(f.Type))
	}
	w.g.Add(n, spdxterms.Checksum, w.checksumNode(f.Checksum))

	conc, err := w.licenseOrSpecial(f.ConcludedLicense)
	if err != nil {
		return nil, err
	}
	w.g.Add(n, spdxterms.LicenseConcluded, conc)
	for _, lic := range f.LicensesInFile {
		ln, err := w.licenseOrSpecial(lic)
		if err != nil {
			return nil, err
		}
		w.g.Add(n, spdxterms.LicenseInfoInFile, ln)
	}
	if f.LicenseComment != "" {
		w.g.Add(n, spdxterms.LicenseComments, rdf.Literal(f.LicenseComment))
	}
	w.g.Add(n, spdxterms.CopyrightText, specialOrLiteral(f.Copyright))
	if f.Notice != "" {
		w.g.Add(n, spdxterms.NoticeText, rdf.Literal(f.Notice))
	}
	for _, c := range f.Contributors {
		w.g.Add(n, spdxterms.FileContributor, rdf.Literal(c))
	}
	return n, nil
}

func fileTypeIRI(t spdx.FileType) rdf.IRI {
	switch t {
	case spdx.FileTypeSource:
		return rdf.IRI(spdxterms.FileTypeSource)
	case spdx.FileTypeBinary:
		return rdf.IRI(spdxterms.FileTypeBinary)
	case spdx.FileTypeArchive:
		return rdf.IRI(spdxterms.FileTypeArchive)
	default:
		return rdf.IRI(spdxterms.FileTypeOther)
	}
}

// lookupFile locates the single file node carrying the given fileName,
// reporting false on zero matches or several.
func (w *rdfWriter) lookupFile(name string) (rdf.Node, bool) {
	subjects := w.g.SubjectsWith(spdxterms.FileName, rdf.Literal(name))
	if len(subjects) != 1 {
		return nil, false
	}
	return subjects[0], true
}

// writeFileDependencies adds fileDependency edges once every file node
// exists. A dependency naming a file the document never declares is
// logged and dropped; the tag:value writer keeps the verbatim name, so
// nothing is lost on that path.
func (w *rdfWriter) writeFileDependencies() error {
	for _, f := range w.doc.Files() {
		if len(f.Dependencies) == 0 {
			continue
		}
		subject, ok := w.lookupFile(f.Name)
		if !ok {
			return &GraphConsistencyError{Message: fmt.Sprintf("could not find dependency subject %q", f.Name)}
		}
		for _, dep := range f.Dependencies {
			target, ok := w.lookupFile(dep)
			if !ok {
				w.logger.Warn("Could not resolve file dependency",
					slog.String("file", f.Name), slog.String("dependency", dep))
				continue
			}
			w.g.Add(subject, spdxterms.FileDependency, target)
		}
	}
	return nil
}

func (w *rdfWriter) packageNode() (rdf.Node, error) {
	p := w.doc.Package
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassPackage))

	if p.Version != "" {
		w.g.Add(n, spdxterms.VersionInfo, specialOrLiteral(p.Version))
	}
	if p.FileName != "" {
		w.g.Add(n, spdxterms.PackageFileName, specialOrLiteral(p.FileName))
	}
	if p.Supplier != nil {
		w.g.Add(n, spdxterms.Supplier, specialOrLiteral(p.Supplier.String()))
	}
	if p.Originator != nil {
		w.g.Add(n, spdxterms.Originator, specialOrLiteral(p.Originator.String()))
	}
	if p.SourceInfo != "" {
		w.g.Add(n, spdxterms.SourceInfo, specialOrLiteral(p.SourceInfo))
	}
	if p.LicenseComment != "" {
		w.g.Add(n, spdxterms.LicenseComments, specialOrLiteral(p.LicenseComment))
	}
	if p.Summary != "" {
		w.g.Add(n, spdxterms.Summary, specialOrLiteral(p.Summary))
	}
	if p.Description != "" {
		w.g.Add(n, spdxterms.Description, specialOrLiteral(p.Description))
	}
	w.g.Add(n, spdxterms.Checksum, w.checksumNode(p.Checksum))
	if p.HomePage != "" {
		w.g.Add(n, doap.Homepage, homepageNode(p.HomePage))
	}

	w.g.Add(n, spdxterms.Name, rdf.Literal(p.Name))
	w.g.Add(n, spdxterms.DownloadLocation, specialOrLiteral(p.DownloadLocation))
	w.g.Add(n, spdxterms.PackageVerificationCode, w.verificationCodeNode(p.VerificationCode))

	conc, err := w.licenseOrSpecial(p.ConcludedLicense)
	if err != nil {
		return nil, err
	}
	w.g.Add(n, spdxterms.LicenseConcluded, conc)
	decl, err := w.licenseOrSpecial(p.DeclaredLicense)
	if err != nil {
		return nil, err
	}
	w.g.Add(n, spdxterms.LicenseDeclared, decl)
	for _, lic := range p.LicensesFromFiles {
		ln, err := w.licenseOrSpecial(lic)
		if err != nil {
			return nil, err
		}
		w.g.Add(n, spdxterms.LicenseInfoFromFiles, ln)
	}
	w.g.Add(n, spdxterms.CopyrightText, specialOrLiteral(p.Copyright))

	for _, f := range p.Files {
		fn, ok := w.lookupFile(f.Name)
		if !ok {
			return nil, &GraphConsistencyError{Message: fmt.Sprintf("could not find file node for file %q", f.Name)}
		}
		w.g.Add(n, spdxterms.HasFile, fn)
	}
	return n, nil
}

func (w *rdfWriter) verificationCodeNode(vc spdx.VerificationCode) rdf.Node {
	n := w.g.NewBlank()
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassPackageVerificationCode))
	w.g.Add(n, spdxterms.PackageVerificationCodeValue, rdf.Literal(vc.Value))
	for _, excl := range vc.ExcludedFiles {
		w.g.Add(n, spdxterms.PackageVerificationCodeExcludedFile, rdf.Literal(excl))
	}
	return n
}

// homepageNode renders the package home page as an IRI node; the
// sentinels map to their individuals like in any other position.
func homepageNode(s string) rdf.Node {
	switch s {
	case string(license.NoAssertion):
		return rdf.IRI(spdxterms.NoAssertion)
	case string(license.None):
		return rdf.IRI(spdxterms.None)
	}
	return rdf.IRI(s)
}

func (w *rdfWriter) snippetNode(s *spdx.Snippet) (rdf.Node, error) {
	n := rdf.IRI(snippetNamespace + s.SPDXID)
	w.g.Add(n, rdfns.Type, rdf.IRI(spdxterms.ClassSnippet))
	if s.Comment != "" {
		w.g.Add(n, rdfns.Comment, rdf.Literal(s.Comment))
	}
	if s.Name != "" {
		w.g.Add(n, spdxterms.Name, rdf.Literal(s.Name))
	}
	if s.LicenseComment != "" {
		w.g.Add(n, spdxterms.LicenseComments, rdf.Literal(s.LicenseComment))
	}
	w.g.Add(n, spdxterms.CopyrightText, specialOrLiteral(s.Copyright))
	w.g.Add(n, spdxterms.SnippetFromFile, rdf.Literal(s.FileSPDXID))

	conc, err := w.licenseOrSpecial(s.ConcludedLicense)
	if err != nil {
		return nil, err
	}
	w.g.Add(n, spdxterms.LicenseConcluded, conc)
	for _, lic := range s.LicensesInSnippet {
		ln, err := w.licenseOrSpecial(lic)
		if err != nil {
			return nil, err
		}
		w.g.Add(n, spdxterms.LicenseInfoInSnippet, ln)
	}
	return n, nil
}
