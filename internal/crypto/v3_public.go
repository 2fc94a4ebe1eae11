package crypto

import (
	"crypto/ecdsa"
	"crypto/sha512"
	"fmt"
	"math/big"

	"github.com/vaultsandbox/paseto/internal/pae"
)

// SignV3 signs message for a v3.public token with ECDSA over P-384 and
// SHA-384. The signer's compressed public key leads the pre-authentication
// encoding, so a signature only verifies against the exact key the verifier
// holds. The signature is r || s with both scalars padded to 48 bytes.
// Returns message || signature.
func SignV3(key *ecdsa.PrivateKey, message, footer, implicit []byte) ([]byte, error) {
	pk := MarshalP384PublicKey(&key.PublicKey)

	preAuth := pae.Encode(pk, []byte(HeaderV3Public), message, footer, implicit)
	digest := sha512.Sum384(preAuth)

	r, s, err := ecdsa.Sign(reader(), key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	sig := make([]byte, V3SignatureSize)
	r.FillBytes(sig[:P384ScalarSize])
	s.FillBytes(sig[P384ScalarSize:])

	raw := make([]byte, 0, len(message)+len(sig))
	raw = append(raw, message...)
	raw = append(raw, sig...)
	return raw, nil
}

// VerifyV3 checks a v3.public payload and returns the signed message. The
// pre-authentication encoding is rebuilt from the verifier's own compressed
// key bytes, never from anything in the token. Every failure collapses to
// ErrSignatureVerificationFailed.
func VerifyV3(key *ecdsa.PublicKey, raw, footer, implicit []byte) ([]byte, error) {
	if len(raw) < V3SignatureSize {
		return nil, ErrSignatureVerificationFailed
	}

	message := raw[:len(raw)-V3SignatureSize]
	sig := raw[len(raw)-V3SignatureSize:]

	pk := MarshalP384PublicKey(key)
	preAuth := pae.Encode(pk, []byte(HeaderV3Public), message, footer, implicit)
	digest := sha512.Sum384(preAuth)

	r := new(big.Int).SetBytes(sig[:P384ScalarSize])
	s := new(big.Int).SetBytes(sig[P384ScalarSize:])

	if !ecdsa.Verify(key, digest[:], r, s) {
		return nil, ErrSignatureVerificationFailed
	}
	return message, nil
}
