package collections

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex-encoded BLAKE2b-256 digest of the JSON
// encoding of the sequence. Two wrappers holding the same keys and values in
// the same order have the same fingerprint.
func (w *ArrayWrapper) Fingerprint() (string, error) {
	b, err := w.ToJSON()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
