package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a symmetric key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSecretKeySize is returned when a secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when a public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidKey is returned when key material has the right size but
	// cannot be used: unparseable DER, a point off the curve, a scalar out
	// of range, or mismatched key halves.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrDecryptionFailed is returned when a local-mode payload cannot be
	// opened. Tag mismatches, truncated payloads, and cipher failures all
	// collapse to this error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrSignatureVerificationFailed is returned when a public-mode payload
	// cannot be verified. Bad signatures and truncated payloads collapse to
	// this error.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrKeyDerivation is returned when key derivation fails.
	ErrKeyDerivation = errors.New("key derivation failed")
)
