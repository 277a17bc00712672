// Package hash provides the fingerprint functions used for token keys, hash ids and style ids.
package hash

import (
	"strconv"
	"unicode/utf16"

	"go.trai.ch/cssinjs/internal/core/ports"
)

var _ ports.Hasher = Murmur{}

const murmurM = 0x5bd1e995

// Murmur is the 32-bit MurmurHash2 variant used by emotion, rendered in base 36.
// It hashes UTF-16 code units truncated to their low byte, so results match
// browser-side runtimes byte for byte.
type Murmur struct{}

// Hash returns the base-36 fingerprint of data.
func (Murmur) Hash(data string) string {
	return strconv.FormatUint(uint64(Murmur2(data)), 36)
}

// Murmur2 returns the raw 32-bit hash of data.
func Murmur2(data string) uint32 {
	units := utf16.Encode([]rune(data))

	var h uint32
	i := 0
	n := len(units)
	for ; n >= 4; n -= 4 {
		k := uint32(units[i]&0xff) |
			uint32(units[i+1]&0xff)<<8 |
			uint32(units[i+2]&0xff)<<16 |
			uint32(units[i+3]&0xff)<<24
		k *= murmurM
		k ^= k >> 24
		h = (k * murmurM) ^ (h * murmurM)
		i += 4
	}

	switch n {
	case 3:
		h ^= uint32(units[i+2]&0xff) << 16
		fallthrough
	case 2:
		h ^= uint32(units[i+1]&0xff) << 8
		fallthrough
	case 1:
		h ^= uint32(units[i] & 0xff)
		h *= murmurM
	}

	h ^= h >> 13
	h *= murmurM
	return h ^ (h >> 15)
}
