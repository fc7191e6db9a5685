// Package hasher names watermarked outputs by content.  xxHash64 is
// plenty for content addressing at realistic asset counts and is an
// order of magnitude faster than a cryptographic hash.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the xxHash64 of data as 16 hex characters.
func Sum(data []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	return hex.EncodeToString(b[:])
}

// Short returns the first 8 hex characters of Sum, used in output
// filenames.
func Short(data []byte) string {
	return Sum(data)[:8]
}

// File streams a file through xxHash64 and returns the 16 hex char
// digest.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h.Sum64())
	return hex.EncodeToString(b[:]), nil
}
