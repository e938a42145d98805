package spdx

import (
	"fmt"

	"github.com/c360studio/semsbom/license"
)

// Snippet describes a region of one file that carries license facts of
// its own. FileSPDXID names the file the region belongs to.
type Snippet struct {
	SPDXID            string
	Name              string
	Comment           string
	Copyright         string
	LicenseComment    string
	FileSPDXID        string
	ConcludedLicense  license.Value
	LicensesInSnippet []license.Value
}

// AddLicenseInSnippet records one license observed in the snippet.
func (s *Snippet) AddLicenseInSnippet(v license.Value) {
	s.LicensesInSnippet = append(s.LicensesInSnippet, v)
}

func (s *Snippet) validate(msgs []string) []string {
	if s.SPDXID == "" {
		msgs = append(msgs, "snippet has no SPDX identifier")
	}
	if s.Copyright == "" {
		msgs = append(msgs, fmt.Sprintf("snippet %s missing copyright text", s.SPDXID))
	}
	if s.FileSPDXID == "" {
		msgs = append(msgs, fmt.Sprintf("snippet %s has no snippet from file SPDX identifier", s.SPDXID))
	}
	if s.ConcludedLicense == nil {
		msgs = append(msgs, fmt.Sprintf("snippet %s missing concluded license", s.SPDXID))
	}
	if len(s.LicensesInSnippet) == 0 {
		msgs = append(msgs, fmt.Sprintf("snippet %s must have at least one license in snippet", s.SPDXID))
	}
	return msgs
}
