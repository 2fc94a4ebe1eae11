package crypto

import (
	"crypto/hmac"
	"fmt"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SealV1 encrypts message for a v1.local token. nonceKey must be 32 random
// bytes; the wire nonce is derived from it and the message with
// HMAC-SHA-384, so a repeated nonceKey degrades to deterministic encryption
// instead of CTR keystream reuse. Returns nonce || ciphertext || tag.
func SealV1(key, nonceKey, message, footer []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(nonceKey) != V1NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonceKey), V1NonceSize)
	}

	nonce := macSHA384(nonceKey, message)[:V1NonceSize]

	encKey, authKey, err := splitKeyV1(key, nonce)
	if err != nil {
		return nil, err
	}
	defer Zero(encKey)
	defer Zero(authKey)

	ciphertext, err := aesCTR(encKey, nonce[16:], message)
	if err != nil {
		return nil, err
	}

	preAuth := pae.Encode([]byte(HeaderV1Local), nonce, ciphertext, footer)
	tag := macSHA384(authKey, preAuth)

	raw := make([]byte, 0, len(nonce)+len(ciphertext)+len(tag))
	raw = append(raw, nonce...)
	raw = append(raw, ciphertext...)
	raw = append(raw, tag...)
	return raw, nil
}

// OpenV1 authenticates and decrypts a v1.local payload. The tag is checked
// in constant time before any decryption; every failure collapses to
// ErrDecryptionFailed.
func OpenV1(key, raw, footer []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(raw) < V1NonceSize+V1TagSize {
		return nil, ErrDecryptionFailed
	}

	nonce := raw[:V1NonceSize]
	ciphertext := raw[V1NonceSize : len(raw)-V1TagSize]
	tag := raw[len(raw)-V1TagSize:]

	encKey, authKey, err := splitKeyV1(key, nonce)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer Zero(encKey)
	defer Zero(authKey)

	preAuth := pae.Encode([]byte(HeaderV1Local), nonce, ciphertext, footer)
	if !hmac.Equal(tag, macSHA384(authKey, preAuth)) {
		return nil, ErrDecryptionFailed
	}

	message, err := aesCTR(encKey, nonce[16:], ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return message, nil
}

// splitKeyV1 derives the encryption and authentication keys from the master
// key. The first half of the nonce salts both derivations; the second half
// becomes the CTR IV in the caller.
func splitKeyV1(key, nonce []byte) (encKey, authKey []byte, err error) {
	salt := nonce[:16]

	encKey, err = DeriveKey(key, salt, []byte(infoEncryptionKey), SymmetricKeySize)
	if err != nil {
		return nil, nil, err
	}

	authKey, err = DeriveKey(key, salt, []byte(infoAuthKey), SymmetricKeySize)
	if err != nil {
		Zero(encKey)
		return nil, nil, err
	}

	return encKey, authKey, nil
}
