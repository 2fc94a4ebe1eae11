package crypto

import (
	"crypto/hmac"
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SealV4 encrypts message for a v4.local token. nonce must be 32 random
// bytes; keyed BLAKE2b splits the master key into an XChaCha20 key and
// 24-byte cipher nonce, and a separate 32-byte authentication key. The
// implicit assertion is authenticated without appearing in the token.
// Returns nonce || ciphertext || tag.
func SealV4(key, nonce, message, footer, implicit []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(nonce) != V4NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), V4NonceSize)
	}

	encKey, cipherNonce, authKey, err := splitKeyV4(key, nonce)
	if err != nil {
		return nil, err
	}
	defer Zero(encKey)
	defer Zero(cipherNonce)
	defer Zero(authKey)

	ciphertext, err := xchacha20(encKey, cipherNonce, message)
	if err != nil {
		return nil, err
	}

	preAuth := pae.Encode([]byte(HeaderV4Local), nonce, ciphertext, footer, implicit)
	tag, err := KeyedHash(authKey, preAuth, V4TagSize)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, 0, len(nonce)+len(ciphertext)+len(tag))
	raw = append(raw, nonce...)
	raw = append(raw, ciphertext...)
	raw = append(raw, tag...)
	return raw, nil
}

// OpenV4 authenticates and decrypts a v4.local payload. The implicit
// assertion must match the one used at sealing time. The tag is checked in
// constant time before the keystream is ever generated; every failure
// collapses to ErrDecryptionFailed.
func OpenV4(key, raw, footer, implicit []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(raw) < V4NonceSize+V4TagSize {
		return nil, ErrDecryptionFailed
	}

	nonce := raw[:V4NonceSize]
	ciphertext := raw[V4NonceSize : len(raw)-V4TagSize]
	tag := raw[len(raw)-V4TagSize:]

	encKey, cipherNonce, authKey, err := splitKeyV4(key, nonce)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer Zero(encKey)
	defer Zero(cipherNonce)
	defer Zero(authKey)

	preAuth := pae.Encode([]byte(HeaderV4Local), nonce, ciphertext, footer, implicit)
	expected, err := KeyedHash(authKey, preAuth, V4TagSize)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if !hmac.Equal(tag, expected) {
		return nil, ErrDecryptionFailed
	}

	message, err := xchacha20(encKey, cipherNonce, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return message, nil
}

// xchacha20 applies the XChaCha20 keystream to data. Like CTR it is its
// own inverse and must only be used under the keyed-BLAKE2b tag.
func xchacha20(key, nonce, data []byte) ([]byte, error) {
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)
	return out, nil
}

// splitKeyV4 derives the encryption key, cipher nonce, and authentication
// key with keyed BLAKE2b, binding the token nonce into both derivations.
func splitKeyV4(key, nonce []byte) (encKey, cipherNonce, authKey []byte, err error) {
	tmp, err := KeyedHash(key, append([]byte(infoEncryptionKey), nonce...), 56)
	if err != nil {
		return nil, nil, nil, err
	}

	authKey, err = KeyedHash(key, append([]byte(infoAuthKey), nonce...), V4TagSize)
	if err != nil {
		Zero(tmp)
		return nil, nil, nil, err
	}

	return tmp[:32], tmp[32:56], authKey, nil
}
