package catalog

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/gowebpki/jcs"
)

// Fingerprint returns a hex SHA-256 of the canonical (RFC 8785) form of raw,
// so re-indenting or reordering keys does not change it.
func Fingerprint(raw []byte) (string, error) {
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
