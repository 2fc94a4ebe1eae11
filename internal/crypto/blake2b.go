package crypto

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// KeyedHash computes keyed BLAKE2b over message with the given output
// length. The v2 suite uses it to derive the synthetic nonce; the v4 suite
// uses it for key splitting and authentication tags.
func KeyedHash(key, message []byte, length int) ([]byte, error) {
	h, err := blake2b.New(length, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	h.Write(message)
	return h.Sum(nil), nil
}
