package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testType  = IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	testValue = IRI("http://example.com/value")
	testHas   = IRI("http://example.com/has")
	testRoot  = IRI("http://example.com/root")
	testThing = IRI("http://example.com/Thing")
)

// chainGraph builds root -> outer blank -> two inner blanks carrying the
// given literals, inserting the inner branches in the order supplied.
func chainGraph(values ...string) *Graph {
	g := NewGraph()
	outer := g.NewBlank()
	g.Add(testRoot, testHas, outer)
	g.Add(outer, testType, testThing)
	for _, v := range values {
		inner := g.NewBlank()
		g.Add(outer, testHas, inner)
		g.Add(inner, testValue, Literal(v))
	}
	return g
}

func TestCanonicalize_InsertionOrderInvariant(t *testing.T) {
	a := NTriples(Canonicalize(chainGraph("x", "y")))
	b := NTriples(Canonicalize(chainGraph("y", "x")))

	assert.Equal(t, a, b)
}

func TestCanonicalize_DistinguishesByDepth(t *testing.T) {
	// The two outer blanks differ only through the literal two steps
	// away, so telling them apart needs a second coloring round.
	build := func(reversed bool) *Graph {
		g := NewGraph()
		branches := []string{"left", "right"}
		if reversed {
			branches = []string{"right", "left"}
		}
		for _, v := range branches {
			outer := g.NewBlank()
			inner := g.NewBlank()
			g.Add(testRoot, testHas, outer)
			g.Add(outer, testHas, inner)
			g.Add(inner, testValue, Literal(v))
		}
		return g
	}

	a := NTriples(Canonicalize(build(false)))
	b := NTriples(Canonicalize(build(true)))

	assert.Equal(t, a, b)
	assert.Contains(t, a, "_:c0")
	assert.Contains(t, a, "_:c3")
}

func TestCanonicalize_InterchangeableBlanks(t *testing.T) {
	// Structurally identical blanks keep equal colors; whichever label
	// each one receives, the triple set reads the same.
	build := func() *Graph {
		g := NewGraph()
		for i := 0; i < 2; i++ {
			b := g.NewBlank()
			g.Add(testRoot, testHas, b)
			g.Add(b, testType, testThing)
			g.Add(b, testValue, Literal("same"))
		}
		return g
	}

	a := NTriples(Canonicalize(build()))
	b := NTriples(Canonicalize(build()))

	assert.Equal(t, a, b)
	assert.Contains(t, a, "_:c0")
	assert.Contains(t, a, "_:c1")
}

func TestCanonicalize_GroundOnly(t *testing.T) {
	g := NewGraph()
	g.Add(testRoot, testValue, Literal("v"))
	g.Add(testRoot, testType, testThing)

	out := Canonicalize(g)
	require.Equal(t, g.Len(), out.Len())
	assert.Equal(t, g.Triples(), out.Triples())
}

func TestCanonicalize_DoesNotModifyInput(t *testing.T) {
	g := NewGraph()
	b := g.NewBlank()
	g.Add(testRoot, testHas, b)

	Canonicalize(g)

	assert.Equal(t, []Triple{{Subject: testRoot, Predicate: testHas, Object: b}}, g.Triples())
}
