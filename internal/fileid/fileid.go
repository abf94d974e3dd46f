// Package fileid derives stable identifiers for uploaded resume content.
package fileid

import (
	"crypto/sha256"
	"encoding/hex"
)

const prefix = "sha256:"

// ContentHash returns a stable hash of the raw document bytes. The
// same upload always yields the same hash, so stored analyses can be
// looked up by content regardless of filename.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return prefix + hex.EncodeToString(sum[:])
}
