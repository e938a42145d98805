package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsbom/export"
	"github.com/c360studio/semsbom/tagvalue"
)

func TestExtractedLicenseBlock(t *testing.T) {
	block := extractedLicenseBlock(
		"LicenseRef-example-com", "Example License",
		"line one\nline two", "https://example.com/license")

	assert.Contains(t, block, "LicenseID: LicenseRef-example-com\n")
	assert.Contains(t, block, "LicenseName: Example License\n")
	assert.Contains(t, block, "ExtractedText: <text>line one\nline two</text>\n")
	assert.Contains(t, block, "LicenseCrossReference: https://example.com/license\n")

	noName := extractedLicenseBlock("LicenseRef-x", "", "text", "https://example.com")
	assert.NotContains(t, noName, "LicenseName:")
}

// A fetched block appended to a document must parse back cleanly.
func TestExtractedLicenseBlock_PasteReady(t *testing.T) {
	out, err := export.TagValue(validDoc())
	require.NoError(t, err)

	block := extractedLicenseBlock(
		"LicenseRef-opensource-org-license-mit", "The MIT License",
		"Permission is hereby granted, free of charge.\nTHE SOFTWARE IS PROVIDED \"AS IS\".",
		"https://opensource.org/license/MIT")

	doc, msgs := tagvalue.NewParser(nil).Parse(out + "\n" + block)
	require.Empty(t, msgs)

	lic := doc.ExtractedLicense("LicenseRef-opensource-org-license-mit")
	require.NotNil(t, lic)
	assert.Equal(t, "The MIT License", lic.Name)
	assert.Contains(t, lic.Text, "Permission is hereby granted")
	assert.Equal(t, []string{"https://opensource.org/license/MIT"}, lic.CrossRefs)
}
