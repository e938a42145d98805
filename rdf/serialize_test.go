package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNTriples_SortedAndEscaped(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("http://example.com/b"), IRI("http://example.com/p"), Literal("line one\nline \"two\""))
	g.Add(IRI("http://example.com/a"), IRI("http://example.com/p"), IRI("http://example.com/o"))

	want := "<http://example.com/a> <http://example.com/p> <http://example.com/o> .\n" +
		"<http://example.com/b> <http://example.com/p> \"line one\\nline \\\"two\\\"\" .\n"
	assert.Equal(t, want, NTriples(g))
}

func TestNTriples_Empty(t *testing.T) {
	assert.Equal(t, "", NTriples(NewGraph()))
}

func TestTurtle_GroupsAndAbbreviates(t *testing.T) {
	ex := "http://example.com/ns#"
	g := NewGraph()
	b := g.NewBlank()
	g.Add(IRI(ex+"s"), IRI(ex+"name"), Literal("x"))
	g.Add(IRI(ex+"s"), testType, IRI(ex+"Thing"))
	g.Add(IRI(ex+"s"), IRI(ex+"link"), IRI("http://other.org/thing"))
	g.Add(IRI(ex+"s"), IRI(ex+"has"), b)
	g.Add(b, IRI(ex+"name"), Literal("y"))

	want := "@prefix ex: <http://example.com/ns#> .\n" +
		"\n" +
		"ex:s\n" +
		"    a ex:Thing ;\n" +
		"    ex:has _:b1 ;\n" +
		"    ex:link <http://other.org/thing> ;\n" +
		"    ex:name \"x\" .\n" +
		"\n" +
		"_:b1\n" +
		"    ex:name \"y\" .\n"
	assert.Equal(t, want, Turtle(g, map[string]string{"ex": ex}))
}

func TestTurtle_LocalPartNeedsBrackets(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("http://example.com/ns#s"), IRI("http://example.com/ns#rel.x"), Literal("v"))
	g.Add(IRI("http://example.com/ns#s"), IRI("http://example.com/ns#rel."), Literal("w"))
	g.Add(IRI("http://example.com/ns#s"), IRI("http://example.com/ns#9rel"), Literal("u"))

	out := Turtle(g, map[string]string{"ex": "http://example.com/ns#"})
	// Dots abbreviate mid-name but not at the end, and a leading digit
	// stays bracketed.
	assert.Contains(t, out, "ex:rel.x \"v\" .")
	assert.Contains(t, out, "<http://example.com/ns#rel.> \"w\" .")
	assert.Contains(t, out, "<http://example.com/ns#9rel> \"u\" .")
}

func TestTurtle_LongestPrefixWins(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("http://example.com/ns/deep#s"), IRI("http://example.com/ns/deep#p"), Literal("v"))

	out := Turtle(g, map[string]string{
		"ex":   "http://example.com/ns/",
		"deep": "http://example.com/ns/deep#",
	})
	assert.Contains(t, out, "deep:s\n")
	assert.Contains(t, out, "deep:p \"v\" .")
}
