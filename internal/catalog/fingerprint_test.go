package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIgnoresFormatting(t *testing.T) {
	a, err := Fingerprint([]byte(`{"b": 1, "a": {"ar": "أ", "en": "x"}}`))
	require.NoError(t, err)
	b, err := Fingerprint([]byte("{\n  \"a\": {\"en\": \"x\", \"ar\": \"أ\"},\n  \"b\": 1\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c, err := Fingerprint([]byte(`{"b": 2, "a": {"ar": "أ", "en": "x"}}`))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = Fingerprint([]byte(`{`))
	assert.Error(t, err)
}
