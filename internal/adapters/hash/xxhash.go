package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cssinjs/internal/core/ports"
)

var _ ports.Hasher = XXHash{}

// XXHash fingerprints data with 64-bit xxHash, rendered in base 36.
// It is used where fingerprints never leave the process, such as cache path segments.
type XXHash struct{}

// Hash returns the base-36 fingerprint of data.
func (XXHash) Hash(data string) string {
	return strconv.FormatUint(xxhash.Sum64String(data), 36)
}

// Fingerprint hashes parts with a zero-byte separator so that ("ab", "c") and ("a", "bc") differ.
func Fingerprint(parts ...string) string {
	h := xxhash.New()
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 36)
}
