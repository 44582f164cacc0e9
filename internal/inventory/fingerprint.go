package inventory

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// FingerprintFile computes the SHA-256 hex digest of a file using chunked
// reads. Unreadable files yield FingerprintUnreadable instead of an error so
// a single bad file never aborts a crawl.
func FingerprintFile(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return FingerprintUnreadable
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return FingerprintUnreadable
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
