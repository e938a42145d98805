// Package rdfns defines the core RDF and RDF Schema IRIs the writers
// emit alongside the SPDX vocabulary.
package rdfns

// The two W3C namespaces.
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

const (
	// Type is the rdf:type property.
	Type = RDF + "type"

	// Comment is the rdfs:comment property.
	Comment = RDFS + "comment"

	// SeeAlso is the rdfs:seeAlso property.
	SeeAlso = RDFS + "seeAlso"
)
