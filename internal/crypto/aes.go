package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesCTR applies the AES-256-CTR keystream to data. CTR mode is its own
// inverse, so the same call encrypts and decrypts. The v1 and v3 suites
// pair it with an HMAC-SHA-384 tag; it must never be used unauthenticated.
func aesCTR(key, iv, data []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), aes.BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)
	return out, nil
}
