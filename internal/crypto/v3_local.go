package crypto

import (
	"crypto/hmac"
	"fmt"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SealV3 encrypts message for a v3.local token. nonce must be 32 random
// bytes; it is not split for the cipher directly but appended to the HKDF
// info, so the CTR key and IV are both fresh per token. The implicit
// assertion is authenticated without appearing in the token. Returns
// nonce || ciphertext || tag.
func SealV3(key, nonce, message, footer, implicit []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(nonce) != V3NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), V3NonceSize)
	}

	encKey, iv, authKey, err := splitKeyV3(key, nonce)
	if err != nil {
		return nil, err
	}
	defer Zero(encKey)
	defer Zero(iv)
	defer Zero(authKey)

	ciphertext, err := aesCTR(encKey, iv, message)
	if err != nil {
		return nil, err
	}

	preAuth := pae.Encode([]byte(HeaderV3Local), nonce, ciphertext, footer, implicit)
	tag := macSHA384(authKey, preAuth)

	raw := make([]byte, 0, len(nonce)+len(ciphertext)+len(tag))
	raw = append(raw, nonce...)
	raw = append(raw, ciphertext...)
	raw = append(raw, tag...)
	return raw, nil
}

// OpenV3 authenticates and decrypts a v3.local payload. The implicit
// assertion must match the one used at sealing time. The tag is checked in
// constant time before any decryption; every failure collapses to
// ErrDecryptionFailed.
func OpenV3(key, raw, footer, implicit []byte) ([]byte, error) {
	if len(key) != SymmetricKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SymmetricKeySize)
	}
	if len(raw) < V3NonceSize+V3TagSize {
		return nil, ErrDecryptionFailed
	}

	nonce := raw[:V3NonceSize]
	ciphertext := raw[V3NonceSize : len(raw)-V3TagSize]
	tag := raw[len(raw)-V3TagSize:]

	encKey, iv, authKey, err := splitKeyV3(key, nonce)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer Zero(encKey)
	defer Zero(iv)
	defer Zero(authKey)

	preAuth := pae.Encode([]byte(HeaderV3Local), nonce, ciphertext, footer, implicit)
	if !hmac.Equal(tag, macSHA384(authKey, preAuth)) {
		return nil, ErrDecryptionFailed
	}

	message, err := aesCTR(encKey, iv, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return message, nil
}

// splitKeyV3 derives the encryption key, CTR IV, and authentication key
// from the master key with the nonce appended to the HKDF info. Unlike v1
// the salt stays empty and the authentication key keeps the full 48-byte
// HKDF output.
func splitKeyV3(key, nonce []byte) (encKey, iv, authKey []byte, err error) {
	tmp, err := DeriveKey(key, nil, append([]byte(infoEncryptionKey), nonce...), 48)
	if err != nil {
		return nil, nil, nil, err
	}

	authKey, err = DeriveKey(key, nil, append([]byte(infoAuthKey), nonce...), 48)
	if err != nil {
		Zero(tmp)
		return nil, nil, nil, err
	}

	return tmp[:32], tmp[32:48], authKey, nil
}
