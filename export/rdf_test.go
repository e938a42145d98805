package export

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/rdf"
	"github.com/c360studio/semsbom/spdx"
	"github.com/c360studio/semsbom/vocabulary/rdfns"
	"github.com/c360studio/semsbom/vocabulary/spdxterms"
)

func quietExporter() *Exporter {
	return NewExporter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func typedSubjects(g *rdf.Graph, class string) []rdf.Node {
	return g.SubjectsWith(rdfns.Type, rdf.IRI(class))
}

func TestExporter_Graph_DocumentShape(t *testing.T) {
	g, err := quietExporter().Graph(testDocument())
	require.NoError(t, err)

	docs := typedSubjects(g, spdxterms.ClassSpdxDocument)
	require.Len(t, docs, 1)
	docNode := rdf.IRI("https://example.com/spdxdocs/consumer-1.0#SPDXRef-DOCUMENT")
	assert.Equal(t, rdf.Node(docNode), docs[0])

	assert.Equal(t, []rdf.Node{rdf.Literal("SPDX-2.1")}, g.ObjectsOf(docNode, spdxterms.SpecVersion))
	assert.Equal(t, []rdf.Node{rdf.IRI("http://spdx.org/licenses/CC0-1.0")}, g.ObjectsOf(docNode, spdxterms.DataLicense))
	assert.Equal(t, []rdf.Node{rdf.Literal("consumer-1.0")}, g.ObjectsOf(docNode, spdxterms.Name))

	fileNode := rdf.IRI("http://www.spdx.org/files#SPDXRef-Consumer")
	assert.Equal(t, []rdf.Node{rdf.Node(fileNode)}, g.ObjectsOf(docNode, spdxterms.ReferencesFile))

	pkgs := g.ObjectsOf(docNode, spdxterms.DescribesPackage)
	require.Len(t, pkgs, 1)
	assert.Equal(t, []rdf.Node{rdf.Literal("consumer")}, g.ObjectsOf(pkgs[0], spdxterms.Name))
	assert.Equal(t, []rdf.Node{rdf.Node(fileNode)}, g.ObjectsOf(pkgs[0], spdxterms.HasFile))
	assert.Equal(t, []rdf.Node{rdf.IRI(spdxterms.NoAssertion)}, g.ObjectsOf(pkgs[0], spdxterms.CopyrightText))

	cis := g.ObjectsOf(docNode, spdxterms.CreationInfoProp)
	require.Len(t, cis, 1)
	assert.Equal(t, []rdf.Node{rdf.Literal("2015-01-29T18:30:22Z")}, g.ObjectsOf(cis[0], spdxterms.Created))
	assert.Equal(t, []rdf.Node{rdf.Literal("Tool: semsbom-0.1")}, g.ObjectsOf(cis[0], spdxterms.Creator))
	assert.Equal(t, []rdf.Node{rdf.Literal("2.6")}, g.ObjectsOf(cis[0], spdxterms.LicenseListVersion))
}

// Two documents that differ only in the order their extracted licenses
// were added must serialize to the same bytes.
func TestExporter_NTriples_InsertionOrderInvariant(t *testing.T) {
	extracted := func(id string) *license.ExtractedLicense {
		lic := license.NewExtractedLicense(id)
		lic.Text = "Terms for " + id
		return lic
	}

	first := testDocument()
	first.AddExtractedLicense(extracted("LicenseRef-1"))
	first.AddExtractedLicense(extracted("LicenseRef-2"))

	second := testDocument()
	second.AddExtractedLicense(extracted("LicenseRef-2"))
	second.AddExtractedLicense(extracted("LicenseRef-1"))

	e := quietExporter()
	out1, err := e.NTriples(first)
	require.NoError(t, err)
	out2, err := e.NTriples(second)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

// A disjunction nested inside a conjunction stays grouped: the outer
// set keeps two members, one of them the inner set.
func TestExporter_Graph_LicenseSetGrouping(t *testing.T) {
	cat := license.DefaultCatalog()
	mit := cat.FromIdentifier("MIT")
	apache := cat.FromIdentifier("Apache-2.0")
	bsd := cat.FromIdentifier("BSD-3-Clause")

	doc := testDocument()
	doc.Package.ConcludedLicense = &license.Conjunction{
		Left:  mit,
		Right: &license.Disjunction{Left: apache, Right: bsd},
	}

	g, err := quietExporter().Graph(doc)
	require.NoError(t, err)

	conjunctions := typedSubjects(g, spdxterms.ClassConjunctiveLicenseSet)
	require.Len(t, conjunctions, 1)
	disjunctions := typedSubjects(g, spdxterms.ClassDisjunctiveLicenseSet)
	require.Len(t, disjunctions, 1)

	members := g.ObjectsOf(conjunctions[0], spdxterms.Member)
	require.Len(t, members, 2)
	assert.Contains(t, members, rdf.Node(rdf.IRI("http://spdx.org/licenses/MIT")))
	assert.Contains(t, members, disjunctions[0])

	inner := g.ObjectsOf(disjunctions[0], spdxterms.Member)
	require.Len(t, inner, 2)
	assert.Contains(t, inner, rdf.Node(rdf.IRI("http://spdx.org/licenses/Apache-2.0")))
	assert.Contains(t, inner, rdf.Node(rdf.IRI("http://spdx.org/licenses/BSD-3-Clause")))
}

// Nested conjunctions collapse into one set with all the leaves as
// members.
func TestExporter_Graph_NestedConjunctionFlattens(t *testing.T) {
	cat := license.DefaultCatalog()
	mit := cat.FromIdentifier("MIT")
	apache := cat.FromIdentifier("Apache-2.0")
	bsd := cat.FromIdentifier("BSD-3-Clause")

	doc := testDocument()
	doc.Package.ConcludedLicense = &license.Conjunction{
		Left:  &license.Conjunction{Left: mit, Right: apache},
		Right: bsd,
	}

	g, err := quietExporter().Graph(doc)
	require.NoError(t, err)

	conjunctions := typedSubjects(g, spdxterms.ClassConjunctiveLicenseSet)
	require.Len(t, conjunctions, 1)
	assert.Len(t, g.ObjectsOf(conjunctions[0], spdxterms.Member), 3)
	assert.Empty(t, typedSubjects(g, spdxterms.ClassDisjunctiveLicenseSet))
}

// Every reference to the same extracted license identifier must land on
// one node, whether it arrives through the document's license list or
// through a file's license fields.
func TestExporter_Graph_ExtractedLicenseDeduplicated(t *testing.T) {
	cat := license.DefaultCatalog()
	ref := cat.FromIdentifier("LicenseRef-1")

	doc := testDocument()
	ext := license.NewExtractedLicense("LicenseRef-1")
	ext.Text = "Redistribution permitted under the original terms."
	doc.AddExtractedLicense(ext)
	doc.Package.Files[0].ConcludedLicense = ref
	doc.Package.Files[0].LicensesInFile = []license.Value{ref}

	g, err := quietExporter().Graph(doc)
	require.NoError(t, err)

	extNodes := typedSubjects(g, spdxterms.ClassExtractedLicensingInfo)
	require.Len(t, extNodes, 1)

	files := typedSubjects(g, spdxterms.ClassFile)
	require.Len(t, files, 1)
	assert.Equal(t, []rdf.Node{extNodes[0]}, g.ObjectsOf(files[0], spdxterms.LicenseConcluded))
	assert.Equal(t, []rdf.Node{extNodes[0]}, g.ObjectsOf(files[0], spdxterms.LicenseInfoInFile))
}

func TestExporter_Graph_MissingExtractedLicense(t *testing.T) {
	doc := testDocument()
	doc.Package.Files[0].ConcludedLicense = license.DefaultCatalog().FromIdentifier("LicenseRef-9")

	_, err := quietExporter().Graph(doc)

	var consistency *GraphConsistencyError
	require.ErrorAs(t, err, &consistency)
	assert.Contains(t, consistency.Message, "LicenseRef-9")
}

// A dependency on a file the document never declares is dropped from
// the graph without failing the export; the tag:value writer still
// carries the verbatim name.
func TestExporter_Graph_UnresolvedFileDependency(t *testing.T) {
	cat := license.DefaultCatalog()
	apache := cat.FromIdentifier("Apache-2.0")

	doc := testDocument()
	doc.Package.AddFile(&spdx.File{
		Name:             "./lib/helper.c",
		SPDXID:           "SPDXRef-Helper",
		Checksum:         spdx.NewSHA1("da39a3ee5e6b4b0d3255bfef95601890afd80709"),
		ConcludedLicense: apache,
		LicensesInFile:   []license.Value{apache},
		Copyright:        "NONE",
	})
	doc.Package.Files[0].Dependencies = []string{"./lib/helper.c", "./lib/missing.c"}

	g, err := quietExporter().Graph(doc)
	require.NoError(t, err)

	var deps []rdf.Triple
	for _, tr := range g.Triples() {
		if tr.Predicate == spdxterms.FileDependency {
			deps = append(deps, tr)
		}
	}
	require.Len(t, deps, 1)
	assert.Equal(t, rdf.Node(rdf.IRI(fileNamespace+"SPDXRef-Consumer")), deps[0].Subject)
	assert.Equal(t, rdf.Node(rdf.IRI(fileNamespace+"SPDXRef-Helper")), deps[0].Object)

	out, err := TagValue(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "FileDependency: ./lib/helper.c\n")
	assert.Contains(t, out, "FileDependency: ./lib/missing.c\n")
}

func TestExporter_Graph_AnnotationsNotEmitted(t *testing.T) {
	plain := testDocument()
	annotated := testDocument()
	annotated.AddAnnotation(&spdx.Annotation{
		Annotator: spdx.Person{Name: "Jane Doe"},
		Date:      time.Date(2015, time.January, 30, 12, 0, 0, 0, time.UTC),
		Comment:   "Reviewed for release",
		Type:      spdx.AnnotationOther,
		SPDXID:    "SPDXRef-DOCUMENT",
	})

	e := quietExporter()
	out1, err := e.NTriples(plain)
	require.NoError(t, err)
	out2, err := e.NTriples(annotated)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

// Snippets are reachable through their typing, not from the document
// node, and point at their file by SPDX identifier value.
func TestExporter_Graph_SnippetShape(t *testing.T) {
	cat := license.DefaultCatalog()
	apache := cat.FromIdentifier("Apache-2.0")

	doc := testDocument()
	doc.AddSnippet(&spdx.Snippet{
		SPDXID:            "SPDXRef-Snippet",
		FileSPDXID:        "SPDXRef-Consumer",
		Name:              "sample",
		Copyright:         "NOASSERTION",
		ConcludedLicense:  apache,
		LicensesInSnippet: []license.Value{apache},
	})

	g, err := quietExporter().Graph(doc)
	require.NoError(t, err)

	snippets := typedSubjects(g, spdxterms.ClassSnippet)
	require.Len(t, snippets, 1)
	snippet := rdf.IRI(snippetNamespace + "SPDXRef-Snippet")
	assert.Equal(t, rdf.Node(snippet), snippets[0])

	assert.Equal(t, []rdf.Node{rdf.Literal("SPDXRef-Consumer")}, g.ObjectsOf(snippet, spdxterms.SnippetFromFile))
	assert.Equal(t, []rdf.Node{rdf.Literal("sample")}, g.ObjectsOf(snippet, spdxterms.Name))
	assert.Equal(t, []rdf.Node{rdf.IRI(spdxterms.NoAssertion)}, g.ObjectsOf(snippet, spdxterms.CopyrightText))

	for _, tr := range g.Triples() {
		assert.NotEqual(t, rdf.Node(snippet), tr.Object)
	}
}

func TestExporter_Graph_InvalidDocument(t *testing.T) {
	_, err := quietExporter().Graph(&spdx.Document{})

	var invalid *InvalidDocumentError
	require.ErrorAs(t, err, &invalid)
	assert.NotEmpty(t, invalid.Messages)
}

func TestExporter_Turtle_UsesPrefixes(t *testing.T) {
	out, err := quietExporter().Turtle(testDocument())
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .")
	assert.Contains(t, out, "@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .")
	assert.Contains(t, out, "@prefix spdx: <http://spdx.org/rdf/terms#> .")
	assert.Contains(t, out, "@prefix doap: <http://usefulinc.com/ns/doap#> .")
	assert.Contains(t, out, "@prefix lic: <http://spdx.org/licenses/> .")
	assert.Contains(t, out, "a spdx:SpdxDocument")
	assert.Contains(t, out, "lic:CC0-1.0")
}
