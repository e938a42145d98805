package spdx

import (
	"fmt"
	"regexp"
	"strconv"
)

// CurrentVersion is the specification revision this library reads and
// writes.
var CurrentVersion = Version{Major: 2, Minor: 1}

var (
	versionRe     = regexp.MustCompile(`^SPDX-(\d+)\.(\d+)`)
	versionPairRe = regexp.MustCompile(`^(\d+)\.(\d+)`)
)

// Version is a specification revision, SPDX-2.1 being the current one.
// The zero value means the document never declared a version.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses the document notation "SPDX-M.N".
func ParseVersion(s string) (Version, error) {
	return parseVersion(versionRe, s)
}

// ParseVersionPair parses a bare "M.N" pair, the form the license list
// version field carries.
func ParseVersionPair(s string) (Version, error) {
	return parseVersion(versionPairRe, s)
}

func parseVersion(re *regexp.Regexp, s string) (Version, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	return Version{Major: major, Minor: minor}, nil
}

// IsZero reports whether the version was never set.
func (v Version) IsZero() bool {
	return v == Version{}
}

// String renders the document notation, e.g. "SPDX-2.1".
func (v Version) String() string {
	return fmt.Sprintf("SPDX-%d.%d", v.Major, v.Minor)
}

// Pair renders the bare "M.N" form used for the license list version.
func (v Version) Pair() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
