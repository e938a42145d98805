package spdx

import (
	"fmt"
	"strings"

	"github.com/c360studio/semsbom/license"
)

// VerificationCode is the aggregate SHA-1 over a package's file
// checksums, together with the file names excluded from the
// computation.
type VerificationCode struct {
	Value         string
	ExcludedFiles []string
}

// String renders the tag:value form: the bare code, or
// "code (f1,f2)" when files were excluded.
func (vc VerificationCode) String() string {
	if len(vc.ExcludedFiles) == 0 {
		return vc.Value
	}
	return fmt.Sprintf("%s (%s)", vc.Value, strings.Join(vc.ExcludedFiles, ","))
}

// Package describes the analyzed package and owns the document's files.
type Package struct {
	Name              string
	Version           string
	FileName          string
	Supplier          Creator
	Originator        Creator
	DownloadLocation  string
	HomePage          string
	VerificationCode  VerificationCode
	Checksum          Checksum
	SourceInfo        string
	ConcludedLicense  license.Value
	DeclaredLicense   license.Value
	LicenseComment    string
	LicensesFromFiles []license.Value
	Copyright         string
	Summary           string
	Description       string
	Files             []*File
}

// AddFile appends a file to the package.
func (p *Package) AddFile(f *File) {
	p.Files = append(p.Files, f)
}

// AddLicenseFromFile records one license observed across the package's
// files.
func (p *Package) AddLicenseFromFile(v license.Value) {
	p.LicensesFromFiles = append(p.LicensesFromFiles, v)
}

// File returns the package file with the given name, or nil.
func (p *Package) File(name string) *File {
	for _, f := range p.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (p *Package) validate(msgs []string) []string {
	if p.Checksum.Value == "" || p.Checksum.Algorithm != "SHA1" {
		msgs = append(msgs, "package checksum algorithm must be SHA1")
	}
	if p.Name == "" {
		msgs = append(msgs, "package name must be set")
	}
	if p.DownloadLocation == "" {
		msgs = append(msgs, "package download location must be set")
	}
	if p.VerificationCode.Value == "" {
		msgs = append(msgs, "package verification code must be set")
	}
	if p.Copyright == "" {
		msgs = append(msgs, "package copyright text must be set")
	}
	if len(p.Files) == 0 {
		msgs = append(msgs, "package must have at least one file")
	} else {
		for _, f := range p.Files {
			msgs = f.validate(msgs)
		}
	}
	if p.ConcludedLicense == nil {
		msgs = append(msgs, "package concluded license must be set")
	}
	if p.DeclaredLicense == nil {
		msgs = append(msgs, "package declared license must be set")
	}
	if len(p.LicensesFromFiles) == 0 {
		msgs = append(msgs, "package licenses from files can not be empty")
	}
	return msgs
}
