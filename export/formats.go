// Package export serializes validated SPDX documents: deterministic
// tag:value text, and a canonicalized RDF graph rendered as N-Triples
// or Turtle.
package export

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

// Format names an output serialization.
type Format string

const (
	// FormatTagValue produces tag:value (.spdx) output.
	FormatTagValue Format = "tagvalue"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTagValue: {
		Name:        FormatTagValue,
		MIMEType:    "text/spdx",
		Extension:   ".spdx",
		Description: "SPDX tag:value document",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// FormatForExtension maps a file extension (with dot) onto its format.
func FormatForExtension(ext string) (Format, bool) {
	for _, info := range FormatRegistry {
		if info.Extension == ext {
			return info.Name, true
		}
	}
	return "", false
}

// Exporter serializes documents in any registered format.
type Exporter struct {
	catalog *license.Catalog
	logger  *slog.Logger
}

// NewExporter creates an exporter. A nil catalog falls back to the
// embedded license catalog, a nil logger to slog.Default.
func NewExporter(catalog *license.Catalog, logger *slog.Logger) *Exporter {
	if catalog == nil {
		catalog = license.DefaultCatalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{catalog: catalog, logger: logger}
}

// Export serializes the document in the given format.
func (e *Exporter) Export(doc *spdx.Document, format Format) (string, error) {
	switch format {
	case FormatTagValue:
		return TagValue(doc)
	case FormatNTriples:
		return e.NTriples(doc)
	case FormatTurtle:
		return e.Turtle(doc)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
