package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SealV2 encrypts message for a v2.local token with XChaCha20-Poly1305.
// nonceKey must be 24 random bytes; the wire nonce is the keyed-BLAKE2b
// hash of the message under nonceKey. Encryption is therefore deterministic
// for a fixed (message, nonceKey) pair. Returns nonce || ciphertext, with
// the Poly1305 tag embedded at the end by the AEAD.
func SealV2(key, nonceKey, message, footer []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(nonceKey) != V2NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonceKey), V2NonceSize)
	}

	nonce, err := KeyedHash(nonceKey, message, V2NonceSize)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	preAuth := pae.Encode([]byte(HeaderV2Local), nonce, footer)

	raw := make([]byte, 0, V2NonceSize+len(message)+V2TagSize)
	raw = append(raw, nonce...)
	return aead.Seal(raw, nonce, message, preAuth), nil
}

// OpenV2 authenticates and decrypts a v2.local payload. Every failure
// collapses to ErrDecryptionFailed.
func OpenV2(key, raw, footer []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(raw) < V2NonceSize+V2TagSize {
		return nil, ErrDecryptionFailed
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	nonce := raw[:V2NonceSize]
	preAuth := pae.Encode([]byte(HeaderV2Local), nonce, footer)

	message, err := aead.Open(nil, nonce, raw[V2NonceSize:], preAuth)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return message, nil
}
