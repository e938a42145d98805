package spdx

import "time"

// Review is a legacy SPDX 1.x construct kept so older documents still
// round-trip. New documents should carry Annotations instead.
type Review struct {
	Reviewer Creator
	Date     time.Time
	Comment  string
}

// Less orders reviews by reviewer, then date, then comment; the
// tag-value writer emits them in this order.
func (r *Review) Less(other *Review) bool {
	a, b := creatorString(r.Reviewer), creatorString(other.Reviewer)
	if a != b {
		return a < b
	}
	if !r.Date.Equal(other.Date) {
		return r.Date.Before(other.Date)
	}
	return r.Comment < other.Comment
}

func (r *Review) validate(msgs []string) []string {
	if r.Reviewer == nil {
		msgs = append(msgs, "review missing reviewer")
	}
	if r.Date.IsZero() {
		msgs = append(msgs, "review missing review date")
	}
	return msgs
}

func creatorString(c Creator) string {
	if c == nil {
		return ""
	}
	return c.String()
}
