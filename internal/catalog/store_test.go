package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/innatural/internal/models"
)

const sampleDoc = `{
  "metadata": {
    "lastUpdated": "2025-12-21",
    "source": "https://innaturalstores.com/",
    "currency": "SAR",
    "scraper": "manual"
  },
  "promotions": {
    "free_shipping": {"threshold": 200, "description": {"ar": "شحن مجاني", "en": "Free shipping"}}
  },
  "collections": [
    {"id": "cocoshea", "name": {"ar": "كوكوشيا", "en": "CocoShea"}, "featured": true}
  ],
  "products": [
    {
      "id": "cocoshea-body-cream",
      "collection": "cocoshea",
      "name": {"ar": "كريم الجسم", "en": "CocoShea Body Cream & Lotion"},
      "type": "body-cream",
      "price": 110,
      "size": "250ml",
      "contraindications": ["none"]
    }
  ],
  "bundles": [],
  "faq": [1, 2]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": [`), 0o644))

	_, err := Load(path)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
}

func TestSaveRoundTripKeepsUnknownFields(t *testing.T) {
	in := writeSample(t)
	doc, err := Load(in)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, Save(out, doc))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasSuffix(text, "}\n"))
	assert.Contains(t, text, "\n  \"metadata\": {\n    \"lastUpdated\"")
	assert.Contains(t, text, `"name": {`)
	assert.Contains(t, text, `"كريم الجسم"`)
	assert.Contains(t, text, "Body Cream & Lotion")
	assert.Contains(t, text, `"scraper": "manual"`)
	assert.Contains(t, text, `"featured": true`)
	assert.Contains(t, text, `"contraindications": [`)
	assert.Contains(t, text, `"faq": [`)

	again, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Products[0].Name, again.Products[0].Name)
	assert.Equal(t, 200, again.Promotions["free_shipping"].Threshold)

	second := filepath.Join(t.TempDir(), "second.json")
	require.NoError(t, Save(second, again))
	data2, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, text, string(data2), "saving is stable across runs")
}

func TestEncodeKeepsMissingLanguagesMissing(t *testing.T) {
	raw := []byte(`{"products": [{
		"id": "legacy",
		"name": {"ar": "منتج", "en": "Product"},
		"type": "oil",
		"price": 100,
		"description": {"en": "English only"},
		"benefits": {"en": ["Adds shine"]}
	}]}`)
	doc, err := Parse("legacy.json", raw)
	require.NoError(t, err)

	data, err := Encode(doc)
	require.NoError(t, err)
	text := string(data)

	assert.NotContains(t, text, `"ar": null`)
	assert.NotContains(t, text, `"ar": ""`)
	assert.Contains(t, text, `"English only"`)
	assert.Equal(t, []string{"en"}, doc.Products[0].Benefits.Languages())

	again, err := Parse("legacy.json", data)
	require.NoError(t, err)
	assert.Nil(t, again.Products[0].Benefits.AR)
	assert.Equal(t, "", again.Products[0].Description.AR)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	require.NoError(t, Save(path, &models.Catalog{}))
	require.NoError(t, Save(path, &models.Catalog{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}

func TestGuardInPlace(t *testing.T) {
	path := writeSample(t)
	dir := filepath.Dir(path)

	assert.ErrorIs(t, GuardInPlace(path, filepath.Join(dir, ".", "products.json"), false), ErrInPlaceOverwrite)
	assert.NoError(t, GuardInPlace(path, path, true))
	assert.NoError(t, GuardInPlace(path, filepath.Join(dir, "products_enriched.json"), false))
}

func TestStamp(t *testing.T) {
	doc := &models.Catalog{Metadata: models.Metadata{Source: "x", Version: "3.0.0"}}
	now := time.Date(2025, 12, 21, 9, 30, 5, 0, time.UTC)

	Stamp(doc, StageEnrich, EnrichVersion, now)
	assert.Equal(t, "4.0.0", doc.Metadata.Version)
	assert.Equal(t, "2025-12-21", doc.Metadata.LastUpdated)
	assert.True(t, doc.Metadata.Enriched)
	assert.Equal(t, "2025-12-21 09:30:05", doc.Metadata.EnrichmentDate)
	assert.False(t, doc.Metadata.Improved)

	Stamp(doc, StageImprove, ImproveVersion, now.Add(time.Hour))
	assert.Equal(t, "4.1.0", doc.Metadata.Version)
	assert.True(t, doc.Metadata.Improved)
	assert.Equal(t, "2025-12-21 10:30:05", doc.Metadata.ImprovementDate)
	assert.True(t, doc.Metadata.Enriched, "earlier stage flags are kept")
	assert.Equal(t, "x", doc.Metadata.Source)
}

func TestReportSummary(t *testing.T) {
	r := &Report{Stage: StageImprove, Version: ImproveVersion, Total: 4, Corrected: 2, DescriptionsRewritten: 1}
	r.Skip("p9", &SchemaDriftError{ProductID: "p9", Field: "name.ar"})

	s := r.Summary()
	assert.Contains(t, s, "benefits corrected: 2")
	assert.Contains(t, s, "descriptions rewritten: 1")
	assert.Contains(t, s, "p9: product p9: missing required field name.ar")
}
