package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/export"
	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

func validDoc() *spdx.Document {
	cat := license.DefaultCatalog()
	mit := cat.FromIdentifier("MIT")
	dataLicense := cat.FromIdentifier("CC0-1.0")

	pkg := &spdx.Package{
		Name:              "sample",
		DownloadLocation:  "NOASSERTION",
		Checksum:          spdx.NewSHA1("85ed0817af83a24ad8da68c2b5094de69833983c"),
		VerificationCode:  spdx.VerificationCode{Value: "d6a770ba38583ed4bb4525bd96e50461655d2758"},
		ConcludedLicense:  mit,
		DeclaredLicense:   mit,
		LicensesFromFiles: []license.Value{mit},
		Copyright:         "NONE",
	}
	pkg.AddFile(&spdx.File{
		Name:             "./main.go",
		SPDXID:           "SPDXRef-1",
		Checksum:         spdx.NewSHA1("2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"),
		ConcludedLicense: mit,
		LicensesInFile:   []license.Value{mit},
		Copyright:        "NONE",
	})

	return &spdx.Document{
		Version:     spdx.Version{Major: 2, Minor: 1},
		DataLicense: &dataLicense,
		Name:        "sample",
		SPDXID:      "SPDXRef-DOCUMENT",
		Namespace:   "https://example.com/spdxdocs/sample",
		CreationInfo: spdx.CreationInfo{
			Creators: []spdx.Creator{spdx.Tool{Name: "semsbom-0.1"}},
			Created:  time.Date(2015, 1, 29, 18, 30, 22, 0, time.UTC),
		},
		Package: pkg,
	}
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidate_ValidDocument(t *testing.T) {
	out, err := export.TagValue(validDoc())
	require.NoError(t, err)
	path := writeDoc(t, "sample.spdx", out)

	assert.NoError(t, runValidate(config.DefaultConfig(), []string{path}))
}

func TestRunValidate_ReportsIssues(t *testing.T) {
	path := writeDoc(t, "broken.spdx", "SPDXVersion: SPDX-2.1\n")

	err := runValidate(config.DefaultConfig(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 documents")
}

func TestRunValidate_MixedDocuments(t *testing.T) {
	out, err := export.TagValue(validDoc())
	require.NoError(t, err)
	good := writeDoc(t, "good.spdx", out)
	bad := writeDoc(t, "bad.spdx", "DataLicense: CC0-1.0\n")

	err = runValidate(config.DefaultConfig(), []string{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 documents")
}

func TestRunValidate_MissingFile(t *testing.T) {
	err := runValidate(config.DefaultConfig(), []string{filepath.Join(t.TempDir(), "absent.spdx")})
	require.Error(t, err)
}
