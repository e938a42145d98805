// Package rdf holds the triple graph the RDF writer builds: IRI, blank
// and literal nodes, set-semantics triple storage, canonical relabeling
// of blank nodes, and N-Triples and Turtle serializers.
package rdf

import "strconv"

// Triple is one statement. Predicates are always IRIs.
type Triple struct {
	Subject   Node
	Predicate IRI
	Object    Node
}

// Graph is a set of triples. Adding a triple twice is a no-op, so
// writers can re-state facts without checking first. Insertion order is
// remembered only to keep lookups deterministic; serialization order
// comes from sorting, not from insertion.
type Graph struct {
	triples []Triple
	seen    map[Triple]struct{}
	blanks  int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{seen: make(map[Triple]struct{})}
}

// NewBlank mints a blank node with a label unused in this graph.
func (g *Graph) NewBlank() Blank {
	g.blanks++
	return Blank("b" + strconv.Itoa(g.blanks))
}

// Add records the triple unless it is already present.
func (g *Graph) Add(s Node, p IRI, o Node) {
	t := Triple{Subject: s, Predicate: p, Object: o}
	if _, ok := g.seen[t]; ok {
		return
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the graph's triples in insertion order. The slice is
// shared with the graph and must not be modified.
func (g *Graph) Triples() []Triple { return g.triples }

// SubjectsWith returns the distinct subjects of all triples with the
// given predicate and object, in insertion order.
func (g *Graph) SubjectsWith(p IRI, o Node) []Node {
	var subjects []Node
	for _, t := range g.triples {
		if t.Predicate != p || t.Object != o {
			continue
		}
		dup := false
		for _, s := range subjects {
			if s == t.Subject {
				dup = true
				break
			}
		}
		if !dup {
			subjects = append(subjects, t.Subject)
		}
	}
	return subjects
}

// ObjectsOf returns the objects of all triples with the given subject
// and predicate, in insertion order.
func (g *Graph) ObjectsOf(s Node, p IRI) []Node {
	var objects []Node
	for _, t := range g.triples {
		if t.Subject == s && t.Predicate == p {
			objects = append(objects, t.Object)
		}
	}
	return objects
}
