package rdf

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Canonicalize returns a copy of g in which every blank node is renamed
// to a label derived from the graph's structure instead of from node
// creation order. Isomorphic graphs canonicalize to identical triple
// sets, so their sorted serializations compare byte for byte.
//
// Labels come from fixed-point hashing: all blank nodes start with the
// same color, then each round a node's color becomes the hash of its
// incident triples with blank neighbors represented by their current
// color. Once the coloring is stable the nodes are labeled c0, c1, ...
// in color order. Nodes still sharing a color at that point are
// structurally interchangeable, so the order labels land on them cannot
// change the serialized bytes.
func Canonicalize(g *Graph) *Graph {
	triples := g.Triples()

	var blanks []Blank
	seen := make(map[Blank]bool)
	note := func(n Node) {
		if b, ok := n.(Blank); ok && !seen[b] {
			seen[b] = true
			blanks = append(blanks, b)
		}
	}
	for _, t := range triples {
		note(t.Subject)
		note(t.Object)
	}

	out := NewGraph()
	if len(blanks) == 0 {
		for _, t := range triples {
			out.Add(t.Subject, t.Predicate, t.Object)
		}
		return out
	}

	colors := make(map[Blank]string, len(blanks))
	for _, b := range blanks {
		colors[b] = ""
	}
	// The partition of blanks into color classes only ever refines, so
	// the coloring is stable after at most len(blanks) rounds.
	for round := 0; round <= len(blanks); round++ {
		next := make(map[Blank]string, len(blanks))
		for _, b := range blanks {
			next[b] = blankColor(b, triples, colors)
		}
		stable := true
		for _, b := range blanks {
			if next[b] != colors[b] {
				stable = false
				break
			}
		}
		colors = next
		if stable {
			break
		}
	}

	order := make([]Blank, len(blanks))
	copy(order, blanks)
	sort.SliceStable(order, func(i, j int) bool {
		return colors[order[i]] < colors[order[j]]
	})
	labels := make(map[Blank]Blank, len(order))
	for i, b := range order {
		labels[b] = Blank("c" + strconv.Itoa(i))
	}

	rename := func(n Node) Node {
		if b, ok := n.(Blank); ok {
			return labels[b]
		}
		return n
	}
	for _, t := range triples {
		out.Add(rename(t.Subject), t.Predicate, rename(t.Object))
	}
	return out
}

// blankColor hashes the triples incident to b. Ground neighbors are
// encoded literally, blank neighbors by their current color, so one
// round propagates structural information one step further out.
func blankColor(b Blank, triples []Triple, colors map[Blank]string) string {
	enc := func(n Node) string {
		if nb, ok := n.(Blank); ok {
			return "_:" + colors[nb]
		}
		return n.NTriples()
	}
	var parts []string
	for _, t := range triples {
		if t.Subject == b {
			parts = append(parts, "S "+t.Predicate.NTriples()+" "+enc(t.Object))
		}
		if t.Object == b {
			parts = append(parts, "O "+t.Predicate.NTriples()+" "+enc(t.Subject))
		}
	}
	sort.Strings(parts)
	sum := sha1.Sum([]byte(strings.Join(parts, "\n")))
	return hex.EncodeToString(sum[:])
}
