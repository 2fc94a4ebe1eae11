// Package pae implements Pre-Authentication Encoding, the canonical
// multi-part framing that PASETO feeds to every MAC and signature.
//
// The encoding prefixes the piece count and each piece with a 64-bit
// little-endian length, so no two distinct piece lists can ever produce
// the same byte stream. This is what binds a token's header, nonce,
// ciphertext, footer, and implicit assertion under a single tag.
package pae

import "encoding/binary"

// Encode returns the canonical encoding of pieces:
//
//	LE64(len(pieces)) || LE64(len(p0)) || p0 || LE64(len(p1)) || p1 || ...
//
// A nil piece encodes identically to an empty one.
func Encode(pieces ...[]byte) []byte {
	size := 8
	for _, p := range pieces {
		size += 8 + len(p)
	}

	out := make([]byte, size)
	binary.LittleEndian.PutUint64(out, uint64(len(pieces)))

	offset := 8
	for _, p := range pieces {
		binary.LittleEndian.PutUint64(out[offset:], uint64(len(p)))
		offset += 8
		offset += copy(out[offset:], p)
	}

	return out
}
