package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsbom/config"
	"github.com/c360studio/semsbom/tagvalue"
)

func TestRunGenerate_ProducesValidDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"),
		[]byte("// SPDX-License-Identifier: MIT\npackage main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.c"),
		[]byte("int x;\n"), 0o644))

	output := filepath.Join(t.TempDir(), "out.spdx")
	err := runGenerate(context.Background(), config.DefaultConfig(), dir, output, "", false)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	doc, msgs := tagvalue.NewParser(nil).Parse(string(data))
	require.Empty(t, msgs)
	assert.Equal(t, filepath.Base(dir), doc.Package.Name)
	require.Len(t, doc.Package.Files, 2)
	assert.Equal(t, "./main.go", doc.Package.Files[0].Name)
}

func TestRunGenerate_OutputInsideTreeExcluded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"),
		[]byte("package main\n"), 0o644))

	output := filepath.Join(dir, "sbom.spdx")
	require.NoError(t, runGenerate(context.Background(), config.DefaultConfig(), dir, output, "", false))

	// A second run over the same tree must not pick up the first run's
	// artifact.
	require.NoError(t, runGenerate(context.Background(), config.DefaultConfig(), dir, output, "", true))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc, msgs := tagvalue.NewParser(nil).Parse(string(data))
	require.Empty(t, msgs)
	require.Len(t, doc.Package.Files, 1)
	assert.Equal(t, "./main.go", doc.Package.Files[0].Name)
}

func TestRunGenerate_RefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"),
		[]byte("package main\n"), 0o644))
	output := filepath.Join(t.TempDir(), "out.spdx")
	require.NoError(t, os.WriteFile(output, []byte("stale"), 0o644))

	err := runGenerate(context.Background(), config.DefaultConfig(), dir, output, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
