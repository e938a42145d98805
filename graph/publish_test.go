package graph

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semsbom/license"
	"github.com/c360studio/semsbom/spdx"
)

func testDoc() *spdx.Document {
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

func TestEntityMessage(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	msg, err := EntityMessage(nil, testDoc(), now)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/spdxdocs/sample#SPDXRef-DOCUMENT", msg.ID)
	assert.Equal(t, now, msg.UpdatedAt)
	require.NotEmpty(t, msg.Triples)

	var specVersion bool
	for _, tr := range msg.Triples {
		assert.Equal(t, "semsbom", tr.Source)
		assert.Equal(t, 1.0, tr.Confidence)
		assert.Equal(t, now, tr.Timestamp)
		if tr.Predicate == "<http://spdx.org/rdf/terms#specVersion>" {
			specVersion = true
			assert.Equal(t, "<https://example.com/spdxdocs/sample#SPDXRef-DOCUMENT>", tr.Subject)
			assert.Equal(t, `"SPDX-2.1"`, tr.Object)
		}
	}
	assert.True(t, specVersion, "message should carry the specVersion triple")
}

func TestEntityMessage_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	a, err := EntityMessage(nil, testDoc(), now)
	require.NoError(t, err)
	b, err := EntityMessage(nil, testDoc(), now)
	require.NoError(t, err)

	aj, err := json.Marshal(a)
	require.NoError(t, err)
	bj, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(aj), string(bj))
}

func TestEntityMessage_InvalidDocument(t *testing.T) {
	_, err := EntityMessage(nil, &spdx.Document{}, time.Now())
	require.Error(t, err)
}

func TestPublisher_NilConnectionSkips(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPublisher(nil, "", nil, logger)

	err := p.PublishDocument(context.Background(), testDoc())

	assert.NoError(t, err)
}

func TestEntityMessage_JSONShape(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	msg, err := EntityMessage(nil, testDoc(), now)
	require.NoError(t, err)

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "triples")
	assert.Contains(t, decoded, "updated_at")
}
