package spdx

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimeLayout is the timestamp notation SPDX uses everywhere: UTC,
// second precision, trailing Z.
const TimeLayout = "2006-01-02T15:04:05Z"

// ParseTime parses an SPDX timestamp.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// FormatTime renders a timestamp in SPDX notation.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Creator identifies who or what produced a document: a tool, a person
// or an organization. The concrete variant matters when serializing, so
// the interface is closed.
type Creator interface {
	String() string
	isCreator()
}

// Tool is an automated producer, e.g. a scanner.
type Tool struct {
	Name string
}

func (t Tool) String() string { return "Tool: " + t.Name }
func (Tool) isCreator()       {}

// Person is an individual, optionally with a contact email.
type Person struct {
	Name  string
	Email string
}

func (p Person) String() string {
	if p.Email != "" {
		return fmt.Sprintf("Person: %s (%s)", p.Name, p.Email)
	}
	return "Person: " + p.Name
}
func (Person) isCreator() {}

// Organization is a company or project, optionally with a contact email.
type Organization struct {
	Name  string
	Email string
}

func (o Organization) String() string {
	if o.Email != "" {
		return fmt.Sprintf("Organization: %s (%s)", o.Name, o.Email)
	}
	return "Organization: " + o.Name
}
func (Organization) isCreator() {}

// NoAssertion stands in where a creator-valued field carries the
// NOASSERTION sentinel; SPDX allows it for package supplier and
// originator.
type NoAssertion struct{}

func (NoAssertion) String() string { return "NOASSERTION" }
func (NoAssertion) isCreator()     {}

var (
	toolRe   = regexp.MustCompile(`^Tool:\s*(.+)`)
	personRe = regexp.MustCompile(`^Person:\s*([^(]+)(\((.*)\))?`)
	orgRe    = regexp.MustCompile(`^Organization:\s*([^(]+)(\((.*)\))?`)
)

// ParseTool parses "Tool: name".
func ParseTool(s string) (Tool, error) {
	m := toolRe.FindStringSubmatch(s)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return Tool{}, errors.New("failed to extract tool name")
	}
	return Tool{Name: m[1]}, nil
}

// ParsePerson parses "Person: name (email)"; the email part is
// optional.
func ParsePerson(s string) (Person, error) {
	name, email, err := parseNamedEntity(personRe, s)
	if err != nil {
		return Person{}, errors.New("failed to extract person name")
	}
	return Person{Name: name, Email: email}, nil
}

// ParseOrganization parses "Organization: name (email)"; the email part
// is optional.
func ParseOrganization(s string) (Organization, error) {
	name, email, err := parseNamedEntity(orgRe, s)
	if err != nil {
		return Organization{}, errors.New("failed to extract organization name")
	}
	return Organization{Name: name, Email: email}, nil
}

func parseNamedEntity(re *regexp.Regexp, s string) (name, email string, err error) {
	m := re.FindStringSubmatch(s)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", "", errors.New("no name")
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[3]), nil
}

// CreationInfo records who produced the document, when, and against
// which revision of the license list.
type CreationInfo struct {
	Creators           []Creator
	Created            time.Time
	Comment            string
	LicenseListVersion Version
}

// AddCreator appends a creator entity.
func (ci *CreationInfo) AddCreator(c Creator) {
	ci.Creators = append(ci.Creators, c)
}

func (ci *CreationInfo) validate(msgs []string) []string {
	if len(ci.Creators) == 0 {
		msgs = append(msgs, "no creators defined, must have at least one")
	}
	if ci.Created.IsZero() {
		msgs = append(msgs, "creation info missing created date")
	}
	return msgs
}
