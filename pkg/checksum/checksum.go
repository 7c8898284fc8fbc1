// Package checksum computes content digests for synthesized fixtures.
package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// blockSize is the read buffer size for hashing.
const blockSize = 64 * 1024

// File returns the MD5 hex digest of the file at path. MD5 matches the etag
// format cloud media services report for single-part uploads, so fixture
// checksums can be compared against remote assets directly.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, blockSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
