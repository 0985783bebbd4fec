package sarif

import (
	"crypto/md5"
	"encoding/hex"
	"io"
)

// contentHash calculates the md5 hex digest of the given text. Partial
// fingerprints need a stable, well-distributed content hash, not a
// cryptographically strong one.
func contentHash(text string) string {
	hash := md5.New()
	io.WriteString(hash, text)
	return hex.EncodeToString(hash.Sum(nil))
}
