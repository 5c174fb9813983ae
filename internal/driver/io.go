package driver

import (
	"bytes"
	"crypto/sha256"
	"os"
)

// readNormalized loads a file the same way a FileSet does: BOM stripped and
// CRLF folded to LF. Cache keys hash the normalized bytes so the same logical
// content maps to the same entry across platforms.
func readNormalized(path string) ([]byte, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
	if bytes.Contains(content, []byte("\r\n")) {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	}
	return content, nil
}

func contentDigest(content []byte) Digest {
	return sha256.Sum256(content)
}
