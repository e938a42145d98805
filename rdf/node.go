package rdf

// Node is one vertex of a graph. The set of implementations is closed:
// IRI, Blank and Literal. Nodes are plain comparable values; two nodes
// are the same vertex exactly when they compare equal.
type Node interface {
	// NTriples renders the node in N-Triples syntax.
	NTriples() string

	isNode()
}

// IRI is a node identified by an absolute IRI.
type IRI string

// NTriples renders the IRI in angle brackets.
func (i IRI) NTriples() string { return "<" + string(i) + ">" }

func (IRI) isNode() {}

// Blank is an anonymous node. The label only has meaning within one
// graph; Canonicalize rewrites labels so isomorphic graphs carry the
// same ones.
type Blank string

// NTriples renders the blank node label.
func (b Blank) NTriples() string { return "_:" + string(b) }

func (Blank) isNode() {}

// Literal is a string-valued node. SPDX 2.1 documents carry no typed or
// language-tagged literals, so a plain string is all the writers need.
type Literal string

// NTriples renders the literal quoted and escaped.
func (l Literal) NTriples() string { return `"` + escapeLiteral(string(l)) + `"` }

func (Literal) isNode() {}
