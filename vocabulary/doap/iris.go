// Package doap defines the few Description-of-a-Project IRIs SPDX
// borrows for package metadata.
package doap

// Namespace is the base IRI prefix for DOAP terms.
const Namespace = "http://usefulinc.com/ns/doap#"

// Homepage is the property carrying a package's home page address.
const Homepage = Namespace + "homepage"
