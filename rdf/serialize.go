package rdf

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const rdfType = IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")

// Local names may carry dots mid-name (Apache-2.0, CC0-1.0) but a
// trailing dot would read as the statement terminator.
var localNameRe = regexp.MustCompile(`^[A-Za-z_](?:[A-Za-z0-9_.-]*[A-Za-z0-9_-])?$`)

// NTriples serializes the graph as N-Triples, one statement per line,
// lines sorted. Serializing a canonicalized graph therefore yields the
// same bytes for any two isomorphic graphs.
func NTriples(g *Graph) string {
	lines := make([]string, 0, g.Len())
	for _, t := range g.Triples() {
		lines = append(lines, t.Subject.NTriples()+" "+t.Predicate.NTriples()+" "+t.Object.NTriples()+" .")
	}
	sort.Strings(lines)
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Turtle serializes the graph in Turtle syntax, statements grouped by
// subject and sorted. IRIs are abbreviated against the prefix map where
// possible. Like NTriples the output is deterministic for a
// canonicalized graph.
func Turtle(g *Graph, prefixes map[string]string) string {
	var sb strings.Builder

	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", name, prefixes[name]))
	}
	if len(names) > 0 {
		sb.WriteString("\n")
	}

	bySubject := make(map[Node][]Triple)
	var subjects []Node
	for _, t := range g.Triples() {
		if _, ok := bySubject[t.Subject]; !ok {
			subjects = append(subjects, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].NTriples() < subjects[j].NTriples()
	})

	for si, subj := range subjects {
		writeSubjectTurtle(&sb, subj, bySubject[subj], prefixes)
		if si < len(subjects)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// writeSubjectTurtle writes one subject block, type assertions first,
// remaining statements sorted by predicate then object.
func writeSubjectTurtle(sb *strings.Builder, subj Node, triples []Triple, prefixes map[string]string) {
	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		if at, bt := a.Predicate == rdfType, b.Predicate == rdfType; at != bt {
			return at
		}
		if a.Predicate != b.Predicate {
			return a.Predicate < b.Predicate
		}
		return a.Object.NTriples() < b.Object.NTriples()
	})

	sb.WriteString(termTurtle(subj, prefixes))
	sb.WriteString("\n")
	for i, t := range triples {
		sb.WriteString("    ")
		sb.WriteString(predicateTurtle(t.Predicate, prefixes))
		sb.WriteString(" ")
		sb.WriteString(termTurtle(t.Object, prefixes))
		if i < len(triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

func predicateTurtle(p IRI, prefixes map[string]string) string {
	if p == rdfType {
		return "a"
	}
	return termTurtle(p, prefixes)
}

func termTurtle(n Node, prefixes map[string]string) string {
	iri, ok := n.(IRI)
	if !ok {
		return n.NTriples()
	}
	if q, ok := qname(iri, prefixes); ok {
		return q
	}
	return iri.NTriples()
}

// qname abbreviates the IRI against the longest matching namespace in
// the prefix map. IRIs whose local part would need escaping stay in
// angle brackets.
func qname(iri IRI, prefixes map[string]string) (string, bool) {
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestNS := "", ""
	for _, name := range names {
		ns := prefixes[name]
		if strings.HasPrefix(string(iri), ns) && len(ns) > len(bestNS) {
			best, bestNS = name, ns
		}
	}
	if bestNS == "" {
		return "", false
	}
	local := strings.TrimPrefix(string(iri), bestNS)
	if !localNameRe.MatchString(local) {
		return "", false
	}
	return best + ":" + local, true
}

// escapeLiteral escapes the characters the N-Triples and Turtle
// grammars do not allow raw inside a double-quoted literal.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
