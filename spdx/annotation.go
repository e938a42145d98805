package spdx

import (
	"fmt"
	"strings"
	"time"
)

// AnnotationType distinguishes review annotations from general remarks.
type AnnotationType string

const (
	AnnotationReview AnnotationType = "REVIEW"
	AnnotationOther  AnnotationType = "OTHER"
)

// ParseAnnotationType maps a textual annotation type onto one of the
// two recognized values. Both the plain keywords and the RDF vocabulary
// forms (".../annotationType_review") are accepted.
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch v := strings.TrimSpace(s); {
	case v == "REVIEW" || strings.HasSuffix(v, "annotationType_review"):
		return AnnotationReview, nil
	case v == "OTHER" || strings.HasSuffix(v, "annotationType_other"):
		return AnnotationOther, nil
	default:
		return "", fmt.Errorf("invalid annotation type %q", s)
	}
}

// Annotation attaches a dated remark from a creator entity to one
// element of the document, named by its SPDX identifier.
type Annotation struct {
	Annotator Creator
	Date      time.Time
	Comment   string
	Type      AnnotationType
	SPDXID    string
}

// Less orders annotations by annotator, then date, then comment; the
// tag-value writer emits them in this order.
func (a *Annotation) Less(other *Annotation) bool {
	x, y := creatorString(a.Annotator), creatorString(other.Annotator)
	if x != y {
		return x < y
	}
	if !a.Date.Equal(other.Date) {
		return a.Date.Before(other.Date)
	}
	return a.Comment < other.Comment
}

func (a *Annotation) validate(msgs []string) []string {
	if a.Annotator == nil {
		msgs = append(msgs, "annotation missing annotator")
	}
	if a.Date.IsZero() {
		msgs = append(msgs, "annotation missing annotation date")
	}
	if a.Type == "" {
		msgs = append(msgs, "annotation missing annotation type")
	}
	if a.SPDXID == "" {
		msgs = append(msgs, "annotation missing SPDX identifier reference")
	}
	return msgs
}
