package spdx

import (
	"testing"
	"time"
)

func TestParseAnnotationType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    AnnotationType
		wantErr bool
	}{
		{"review keyword", "REVIEW", AnnotationReview, false},
		{"other keyword", "OTHER", AnnotationOther, false},
		{"padded keyword", "  OTHER  ", AnnotationOther, false},
		{"review vocabulary form", "http://spdx.org/rdf/terms#annotationType_review", AnnotationReview, false},
		{"other vocabulary form", "http://spdx.org/rdf/terms#annotationType_other", AnnotationOther, false},
		{"lowercase keyword", "review", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnnotationType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnnotationType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAnnotationType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnnotationLess(t *testing.T) {
	date := time.Date(2014, 1, 22, 0, 0, 0, 0, time.UTC)
	a := &Annotation{Annotator: Person{Name: "Alice"}, Date: date}
	b := &Annotation{Annotator: Person{Name: "Bob"}, Date: date}
	if !a.Less(b) || b.Less(a) {
		t.Error("annotations should order by annotator first")
	}

	later := &Annotation{Annotator: Person{Name: "Alice"}, Date: date.Add(time.Hour)}
	if !a.Less(later) {
		t.Error("same annotator should order by date")
	}
}

func TestAnnotationValidate(t *testing.T) {
	a := &Annotation{}
	if msgs := a.validate(nil); len(msgs) != 4 {
		t.Fatalf("expected 4 messages for empty annotation, got %v", msgs)
	}

	a = &Annotation{
		Annotator: Person{Name: "Jane Doe"},
		Date:      time.Date(2014, 1, 22, 0, 0, 0, 0, time.UTC),
		Type:      AnnotationReview,
		SPDXID:    "SPDXRef-DOCUMENT",
	}
	if msgs := a.validate(nil); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestReviewLess(t *testing.T) {
	date := time.Date(2010, 2, 10, 0, 0, 0, 0, time.UTC)
	a := &Review{Reviewer: Person{Name: "Joe Reviewer"}, Date: date}
	b := &Review{Reviewer: Person{Name: "Suzanne Reviewer"}, Date: date}
	if !a.Less(b) {
		t.Error("reviews should order by reviewer")
	}
	if b.Less(a) {
		t.Error("ordering should not be symmetric")
	}
}
