package tagvalue

// Builder errors carry the document property they concern in
// Class::Property form. The parser looks only at the error kind when it
// picks a diagnostic; the field is there for callers that use the
// Builder directly.

// ValueError reports a value that failed the property's validation.
type ValueError struct {
	Field string
}

func (e *ValueError) Error() string {
	return "invalid value for " + e.Field
}

// CardinalityError reports a second assignment to a single-valued
// property.
type CardinalityError struct {
	Field string
}

func (e *CardinalityError) Error() string {
	return "more than one " + e.Field
}

// OrderError reports a property set before the element it belongs to
// exists.
type OrderError struct {
	Field string
}

func (e *OrderError) Error() string {
	return e.Field + " set before its element exists"
}
