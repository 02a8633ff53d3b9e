package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMapperResolvesRenamedProducts(t *testing.T) {
	m := Default()

	cases := map[string]string{
		"mixoil-rosemary-shampoo": "mixoil-rosemary",
		"mixoil-rosemary-oil":     "mixoil-rosemary-almond",
		"mixoil-castor-oil":       "mixoil-triple-blend",
		"mixoil-coconut-mist":     "mixoil-coconut",
		"curly-mask":              "curly-hair-mask",
		"africa-mask":             "africa-shea-butter",
		"curly-shampoo":           "curly-shampoo",
	}
	for current, backup := range cases {
		r := m.Resolve(current)
		got, ok := r.BackupID()
		require.True(t, ok, current)
		assert.Equal(t, backup, got, current)
		assert.Equal(t, KindMatched, r.Kind())
	}
}

func TestExplicitNoEquivalentDiffersFromUnknown(t *testing.T) {
	m := Default()

	explicit := m.Resolve("cocoshea-mist")
	assert.Equal(t, KindNoEquivalent, explicit.Kind())
	assert.False(t, explicit.Mapped())

	unknown := m.Resolve("does-not-exist")
	assert.Equal(t, KindUnknown, unknown.Kind())
	assert.False(t, unknown.Mapped())

	_, ok := unknown.BackupID()
	assert.False(t, ok)
}

func TestNewLaterEntriesOverride(t *testing.T) {
	m := New([]Entry{
		{Current: "a", Backup: "legacy-a"},
		{Current: "a"},
		{Current: "b", Backup: "legacy-b"},
	})

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, KindNoEquivalent, m.Resolve("a").Kind())
	got, _ := m.Resolve("b").BackupID()
	assert.Equal(t, "legacy-b", got)
}

func TestDefaultTableHasNoDuplicateRows(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range DefaultEntries {
		assert.False(t, seen[e.Current], "duplicate row %s", e.Current)
		seen[e.Current] = true
	}
	assert.Equal(t, len(DefaultEntries), Default().Len())
}
