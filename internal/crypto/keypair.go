package crypto

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"

	"github.com/cloudflare/circl/sign/ed25519"
)

// GenerateRSAKeypair creates a new 2048-bit RSA private key for v1.public.
func GenerateRSAKeypair() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(reader(), RSAModulusBits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key: %w", err)
	}
	return key, nil
}

// ParseRSASecretKey parses a DER RSA private key, accepting PKCS#8 with a
// PKCS#1 fallback, and checks the modulus size v1.public requires.
func ParseRSASecretKey(der []byte) (*rsa.PrivateKey, error) {
	var key *rsa.PrivateKey

	if parsed, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidKey)
		}
		key = rsaKey
	} else if rsaKey, err2 := x509.ParsePKCS1PrivateKey(der); err2 == nil {
		key = rsaKey
	} else {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	if key.N.BitLen() != RSAModulusBits {
		return nil, fmt.Errorf("%w: modulus is %d bits, want %d", ErrInvalidKey, key.N.BitLen(), RSAModulusBits)
	}
	return key, nil
}

// ParseRSAPublicKey parses a DER RSA public key, accepting PKIX with a
// PKCS#1 fallback, and checks the modulus size.
func ParseRSAPublicKey(der []byte) (*rsa.PublicKey, error) {
	var key *rsa.PublicKey

	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		rsaKey, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidKey)
		}
		key = rsaKey
	} else if rsaKey, err2 := x509.ParsePKCS1PublicKey(der); err2 == nil {
		key = rsaKey
	} else {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	if key.N.BitLen() != RSAModulusBits {
		return nil, fmt.Errorf("%w: modulus is %d bits, want %d", ErrInvalidKey, key.N.BitLen(), RSAModulusBits)
	}
	return key, nil
}

// MarshalRSASecretKey encodes an RSA private key as PKCS#8 DER.
func MarshalRSASecretKey(key *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return der, nil
}

// MarshalRSAPublicKey encodes an RSA public key as PKIX DER.
func MarshalRSAPublicKey(key *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return der, nil
}

// GenerateEd25519Keypair creates a new Ed25519 keypair for the v2.public
// and v4.public suites.
func GenerateEd25519Keypair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(reader())
	if err != nil {
		return nil, nil, fmt.Errorf("generate Ed25519 key: %w", err)
	}
	return pub, priv, nil
}

// ParseEd25519SecretKey validates a 64-byte expanded Ed25519 private key.
// The embedded public half must match the one derived from the seed, so a
// corrupted or mismatched key is rejected before it ever signs.
func ParseEd25519SecretKey(b []byte) (ed25519.PrivateKey, error) {
	if len(b) != Ed25519SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(b), Ed25519SecretKeySize)
	}

	key := ed25519.NewKeyFromSeed(b[:Ed25519SeedSize])
	if !bytes.Equal(key[Ed25519SeedSize:], b[Ed25519SeedSize:]) {
		return nil, fmt.Errorf("%w: public half does not match seed", ErrInvalidKey)
	}
	return key, nil
}

// Ed25519SecretKeyFromSeed expands a 32-byte seed into a private key.
func Ed25519SecretKeyFromSeed(seed []byte) (ed25519.PrivateKey, error) {
	if len(seed) != Ed25519SeedSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(seed), Ed25519SeedSize)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// ParseEd25519PublicKey validates a 32-byte Ed25519 public key.
func ParseEd25519PublicKey(b []byte) (ed25519.PublicKey, error) {
	if len(b) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(b), Ed25519PublicKeySize)
	}
	key := make(ed25519.PublicKey, Ed25519PublicKeySize)
	copy(key, b)
	return key, nil
}

// GenerateP384Keypair creates a new ECDSA P-384 private key for v3.public.
func GenerateP384Keypair() (*ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), reader())
	if err != nil {
		return nil, fmt.Errorf("generate P-384 key: %w", err)
	}
	return key, nil
}

// ParseP384SecretKey reconstructs a private key from a 48-byte big-endian
// scalar. The scalar must be in [1, n-1] for the P-384 group order n.
func ParseP384SecretKey(scalar []byte) (*ecdsa.PrivateKey, error) {
	if len(scalar) != P384ScalarSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(scalar), P384ScalarSize)
	}

	curve := elliptic.P384()
	d := new(big.Int).SetBytes(scalar)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidKey)
	}

	key := &ecdsa.PrivateKey{D: d}
	key.Curve = curve
	key.X, key.Y = curve.ScalarBaseMult(scalar)
	return key, nil
}

// ParseP384PublicKey decodes a 49-byte SEC1 compressed point and checks it
// lies on the curve.
func ParseP384PublicKey(compressed []byte) (*ecdsa.PublicKey, error) {
	if len(compressed) != P384CompressedPointSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(compressed), P384CompressedPointSize)
	}

	curve := elliptic.P384()
	x, y := elliptic.UnmarshalCompressed(curve, compressed)
	if x == nil {
		return nil, fmt.Errorf("%w: point not on curve", ErrInvalidKey)
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

// MarshalP384SecretKey encodes the private scalar as 48 big-endian bytes.
func MarshalP384SecretKey(key *ecdsa.PrivateKey) []byte {
	scalar := make([]byte, P384ScalarSize)
	key.D.FillBytes(scalar)
	return scalar
}

// MarshalP384PublicKey encodes the public point in SEC1 compressed form.
func MarshalP384PublicKey(key *ecdsa.PublicKey) []byte {
	return elliptic.MarshalCompressed(key.Curve, key.X, key.Y)
}
