package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SignV2 signs message for a v2.public token with Ed25519.
// Returns message || signature.
func SignV2(key ed25519.PrivateKey, message, footer []byte) ([]byte, error) {
	if len(key) != Ed25519SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(key), Ed25519SecretKeySize)
	}

	preAuth := pae.Encode([]byte(HeaderV2Public), message, footer)
	sig := ed25519.Sign(key, preAuth)

	raw := make([]byte, 0, len(message)+len(sig))
	raw = append(raw, message...)
	raw = append(raw, sig...)
	return raw, nil
}

// VerifyV2 checks a v2.public payload and returns the signed message.
// Every failure collapses to ErrSignatureVerificationFailed.
func VerifyV2(key ed25519.PublicKey, raw, footer []byte) ([]byte, error) {
	if len(key) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(key), Ed25519PublicKeySize)
	}
	if len(raw) < V2SignatureSize {
		return nil, ErrSignatureVerificationFailed
	}

	message := raw[:len(raw)-V2SignatureSize]
	sig := raw[len(raw)-V2SignatureSize:]

	preAuth := pae.Encode([]byte(HeaderV2Public), message, footer)
	if !ed25519.Verify(key, preAuth, sig) {
		return nil, ErrSignatureVerificationFailed
	}
	return message, nil
}
