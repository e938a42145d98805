package spdx

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"sort"
)

// ComputeVerificationCode derives a package verification code from its
// files: every file's SHA-1 digest is collected, the digests are sorted
// as plain strings, concatenated without separators and hashed again.
// The sort step is what makes the code independent of enumeration
// order. Files named in excluded are left out of the hash and recorded
// in the returned code.
func ComputeVerificationCode(files []*File, excluded ...string) VerificationCode {
	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}

	digests := make([]string, 0, len(files))
	for _, f := range files {
		if skip[f.Name] {
			continue
		}
		digests = append(digests, f.Checksum.Value)
	}
	sort.Strings(digests)

	h := sha1.New()
	for _, d := range digests {
		io.WriteString(h, d)
	}
	return VerificationCode{
		Value:         hex.EncodeToString(h.Sum(nil)),
		ExcludedFiles: excluded,
	}
}
