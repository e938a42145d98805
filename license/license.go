// Package license models SPDX license values: licenses resolved against the
// standard catalog, extracted (document-local) licenses, boolean license
// sets, and the NOASSERTION/NONE/UNKNOWN sentinels that may stand in
// wherever a license value is expected.
package license

// Value is a single license field value. The set of implementations is
// closed: License, *ExtractedLicense, *Conjunction, *Disjunction, and the
// Special sentinels. Consumers switch exhaustively over these kinds.
type Value interface {
	// String renders the value in SPDX short-form notation, parenthesizing
	// sub-expressions where required.
	String() string

	isValue()
}

// License is a license referenced by its SPDX short identifier. When the
// identifier is present in the catalog, Name carries the catalog display
// name; otherwise Name equals the identifier.
type License struct {
	Identifier string
	Name       string
}

func (l License) String() string { return l.Identifier }

// URL returns the canonical license list address for the identifier.
func (l License) URL() string { return "http://spdx.org/licenses/" + l.Identifier }

func (License) isValue() {}

// ExtractedLicense is a license not present in the catalog, defined inline
// by the document under a LicenseRef- identifier with its verbatim text.
type ExtractedLicense struct {
	License

	// Text is the verbatim license text. Mandatory at validation time.
	Text string

	// CrossRefs are URLs where the license text can also be found.
	CrossRefs []string

	Comment string
}

// NewExtractedLicense returns an extracted license for the given
// LicenseRef- identifier. The prefix itself is enforced by the builder, not
// here.
func NewExtractedLicense(identifier string) *ExtractedLicense {
	return &ExtractedLicense{License: License{Identifier: identifier}}
}

// Conjunction is the AND combination of two license values.
type Conjunction struct {
	Left  Value
	Right Value
}

func (c *Conjunction) String() string {
	left := c.Left.String()
	if _, ok := c.Left.(*Disjunction); ok {
		left = "(" + left + ")"
	}
	right := c.Right.String()
	if _, ok := c.Right.(*Disjunction); ok {
		right = "(" + right + ")"
	}
	return left + " AND " + right
}

func (*Conjunction) isValue() {}

// Disjunction is the OR combination of two license values.
type Disjunction struct {
	Left  Value
	Right Value
}

func (d *Disjunction) String() string {
	left := d.Left.String()
	if _, ok := d.Left.(*Conjunction); ok {
		left = "(" + left + ")"
	}
	right := d.Right.String()
	if _, ok := d.Right.(*Conjunction); ok {
		right = "(" + right + ")"
	}
	return left + " OR " + right
}

func (*Disjunction) isValue() {}

// Special is a sentinel standing in for a license value without carrying
// license semantics of its own.
type Special string

// The three sentinels the tag:value notation recognizes.
const (
	NoAssertion Special = "NOASSERTION"
	None        Special = "NONE"
	Unknown     Special = "UNKNOWN"
)

func (s Special) String() string { return string(s) }

func (Special) isValue() {}
