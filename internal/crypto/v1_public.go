package crypto

import (
	stdcrypto "crypto"
	"crypto/rsa"
	"crypto/sha512"
	"fmt"

	"github.com/vaultsandbox/paseto/internal/pae"
)

var pssOptions = &rsa.PSSOptions{
	SaltLength: rsa.PSSSaltLengthEqualsHash,
	Hash:       stdcrypto.SHA384,
}

// SignV1 signs message for a v1.public token with RSASSA-PSS over SHA-384.
// The salt length equals the hash length, so signatures are randomized.
// Returns message || signature.
func SignV1(key *rsa.PrivateKey, message, footer []byte) ([]byte, error) {
	preAuth := pae.Encode([]byte(HeaderV1Public), message, footer)
	digest := sha512.Sum384(preAuth)

	sig, err := rsa.SignPSS(reader(), key, stdcrypto.SHA384, digest[:], pssOptions)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	raw := make([]byte, 0, len(message)+len(sig))
	raw = append(raw, message...)
	raw = append(raw, sig...)
	return raw, nil
}

// VerifyV1 checks a v1.public payload and returns the signed message.
// Every failure collapses to ErrSignatureVerificationFailed.
func VerifyV1(key *rsa.PublicKey, raw, footer []byte) ([]byte, error) {
	if len(raw) < V1SignatureSize {
		return nil, ErrSignatureVerificationFailed
	}

	message := raw[:len(raw)-V1SignatureSize]
	sig := raw[len(raw)-V1SignatureSize:]

	preAuth := pae.Encode([]byte(HeaderV1Public), message, footer)
	digest := sha512.Sum384(preAuth)

	if err := rsa.VerifyPSS(key, stdcrypto.SHA384, digest[:], sig, pssOptions); err != nil {
		return nil, ErrSignatureVerificationFailed
	}
	return message, nil
}
