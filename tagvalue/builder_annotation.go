package tagvalue

import "github.com/c360studio/semsbom/spdx"

// AddReviewer opens a new review. Per-review cardinality state resets
// here; the date and comment setters fill in the review opened last.
func (b *Builder) AddReviewer(doc *spdx.Document, reviewer spdx.Creator) error {
	b.resetReview()
	if reviewer == nil {
		return &ValueError{Field: "Review::Reviewer"}
	}
	doc.AddReview(&spdx.Review{Reviewer: reviewer})
	return nil
}

// AddReviewDate sets the date of the review opened last.
func (b *Builder) AddReviewDate(doc *spdx.Document, value string) error {
	if len(doc.Reviews) == 0 {
		return &OrderError{Field: "Review::ReviewDate"}
	}
	if b.reviewDateSet {
		return &CardinalityError{Field: "Review::ReviewDate"}
	}
	b.reviewDateSet = true
	t, err := spdx.ParseTime(value)
	if err != nil {
		return &ValueError{Field: "Review::ReviewDate"}
	}
	b.curReview(doc).Date = t
	return nil
}

// AddReviewComment sets the comment of the review opened last from a
// free form text block.
func (b *Builder) AddReviewComment(doc *spdx.Document, value string) error {
	if len(doc.Reviews) == 0 {
		return &OrderError{Field: "Review::ReviewComment"}
	}
	if b.reviewCommentSet {
		return &CardinalityError{Field: "Review::ReviewComment"}
	}
	b.reviewCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Review::ReviewComment"}
	}
	b.curReview(doc).Comment = textBody(value)
	return nil
}

// AddAnnotator opens a new annotation, resetting per-annotation
// cardinality state.
func (b *Builder) AddAnnotator(doc *spdx.Document, annotator spdx.Creator) error {
	b.resetAnnotation()
	if annotator == nil {
		return &ValueError{Field: "Annotation::Annotator"}
	}
	doc.AddAnnotation(&spdx.Annotation{Annotator: annotator})
	return nil
}

// AddAnnotationDate sets the date of the annotation opened last.
func (b *Builder) AddAnnotationDate(doc *spdx.Document, value string) error {
	if len(doc.Annotations) == 0 {
		return &OrderError{Field: "Annotation::AnnotationDate"}
	}
	if b.annotationDateSet {
		return &CardinalityError{Field: "Annotation::AnnotationDate"}
	}
	b.annotationDateSet = true
	t, err := spdx.ParseTime(value)
	if err != nil {
		return &ValueError{Field: "Annotation::AnnotationDate"}
	}
	b.curAnnotation(doc).Date = t
	return nil
}

// AddAnnotationComment sets the comment of the annotation opened last
// from a free form text block.
func (b *Builder) AddAnnotationComment(doc *spdx.Document, value string) error {
	if len(doc.Annotations) == 0 {
		return &OrderError{Field: "Annotation::AnnotationComment"}
	}
	if b.annotationCommentSet {
		return &CardinalityError{Field: "Annotation::AnnotationComment"}
	}
	b.annotationCommentSet = true
	if !isFreeFormText(value) {
		return &ValueError{Field: "Annotation::AnnotationComment"}
	}
	b.curAnnotation(doc).Comment = textBody(value)
	return nil
}

// AddAnnotationType sets the type of the annotation opened last,
// REVIEW or OTHER.
func (b *Builder) AddAnnotationType(doc *spdx.Document, value string) error {
	if len(doc.Annotations) == 0 {
		return &OrderError{Field: "Annotation::AnnotationType"}
	}
	if b.annotationTypeSet {
		return &CardinalityError{Field: "Annotation::AnnotationType"}
	}
	b.annotationTypeSet = true
	at, err := spdx.ParseAnnotationType(value)
	if err != nil {
		return &ValueError{Field: "Annotation::AnnotationType"}
	}
	b.curAnnotation(doc).Type = at
	return nil
}

// SetAnnotationSPDXID records which element the annotation opened last
// refers to. The identifier is stored verbatim.
func (b *Builder) SetAnnotationSPDXID(doc *spdx.Document, value string) error {
	if len(doc.Annotations) == 0 {
		return &OrderError{Field: "Annotation::SPDXREF"}
	}
	if b.annotationSPDXIDSet {
		return &CardinalityError{Field: "Annotation::SPDXREF"}
	}
	b.annotationSPDXIDSet = true
	b.curAnnotation(doc).SPDXID = value
	return nil
}
