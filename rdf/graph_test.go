package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Add_Deduplicates(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("http://example.com/s"), IRI("http://example.com/p"), Literal("v"))
	g.Add(IRI("http://example.com/s"), IRI("http://example.com/p"), Literal("v"))
	g.Add(IRI("http://example.com/s"), IRI("http://example.com/p"), Literal("w"))

	assert.Equal(t, 2, g.Len())
}

func TestGraph_Add_LiteralAndIRIAreDistinct(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("http://example.com/s"), IRI("http://example.com/p"), Literal("http://example.com/o"))
	g.Add(IRI("http://example.com/s"), IRI("http://example.com/p"), IRI("http://example.com/o"))

	assert.Equal(t, 2, g.Len())
}

func TestGraph_NewBlank_MintsFreshLabels(t *testing.T) {
	g := NewGraph()
	a := g.NewBlank()
	b := g.NewBlank()

	assert.NotEqual(t, a, b)
}

func TestGraph_SubjectsWith(t *testing.T) {
	g := NewGraph()
	name := IRI("http://example.com/name")
	first := IRI("http://example.com/1")
	second := IRI("http://example.com/2")
	g.Add(first, name, Literal("a"))
	g.Add(second, name, Literal("a"))
	g.Add(second, name, Literal("b"))
	g.Add(first, IRI("http://example.com/other"), Literal("a"))

	assert.Equal(t, []Node{first, second}, g.SubjectsWith(name, Literal("a")))
	assert.Equal(t, []Node{second}, g.SubjectsWith(name, Literal("b")))
	assert.Empty(t, g.SubjectsWith(name, Literal("c")))
}

func TestGraph_ObjectsOf(t *testing.T) {
	g := NewGraph()
	s := IRI("http://example.com/s")
	p := IRI("http://example.com/p")
	g.Add(s, p, Literal("one"))
	g.Add(s, p, Literal("two"))
	g.Add(s, IRI("http://example.com/q"), Literal("three"))

	assert.Equal(t, []Node{Literal("one"), Literal("two")}, g.ObjectsOf(s, p))
	assert.Empty(t, g.ObjectsOf(IRI("http://example.com/t"), p))
}
