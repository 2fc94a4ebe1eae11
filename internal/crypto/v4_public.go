package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SignV4 signs message for a v4.public token with Ed25519. The implicit
// assertion is covered by the signature without appearing in the token.
// Returns message || signature.
func SignV4(key ed25519.PrivateKey, message, footer, implicit []byte) ([]byte, error) {
	if len(key) != Ed25519SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(key), Ed25519SecretKeySize)
	}

	preAuth := pae.Encode([]byte(HeaderV4Public), message, footer, implicit)
	sig := ed25519.Sign(key, preAuth)

	raw := make([]byte, 0, len(message)+len(sig))
	raw = append(raw, message...)
	raw = append(raw, sig...)
	return raw, nil
}

// VerifyV4 checks a v4.public payload and returns the signed message.
// The implicit assertion must match the one used at signing time. Every
// failure collapses to ErrSignatureVerificationFailed.
func VerifyV4(key ed25519.PublicKey, raw, footer, implicit []byte) ([]byte, error) {
	if len(key) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(key), Ed25519PublicKeySize)
	}
	if len(raw) < V4SignatureSize {
		return nil, ErrSignatureVerificationFailed
	}

	message := raw[:len(raw)-V4SignatureSize]
	sig := raw[len(raw)-V4SignatureSize:]

	preAuth := pae.Encode([]byte(HeaderV4Public), message, footer, implicit)
	if !ed25519.Verify(key, preAuth, sig) {
		return nil, ErrSignatureVerificationFailed
	}
	return message, nil
}
