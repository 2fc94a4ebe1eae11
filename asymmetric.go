package paseto

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// AsymmetricSecretKey signs public tokens. The wire encoding of the key
// material depends on the version:
//
//   - v1: PKCS#8 DER (PKCS#1 also accepted on input), RSA 2048-bit modulus
//   - v2, v4: 64-byte Ed25519 private key (seed followed by public half)
//   - v3: 48-byte big-endian P-384 scalar
//
// Keys are parsed and validated at construction, so signing never fails on
// malformed material.
type AsymmetricSecretKey struct {
	version Version
	raw     []byte

	rsaKey *rsa.PrivateKey
	edKey  ed25519.PrivateKey
	ecKey  *ecdsa.PrivateKey

	public    *AsymmetricPublicKey
	destroyed bool
}

// AsymmetricPublicKey verifies public tokens. The wire encoding of the key
// material depends on the version:
//
//   - v1: PKIX DER (PKCS#1 also accepted on input), RSA 2048-bit modulus
//   - v2, v4: 32-byte Ed25519 public key
//   - v3: 49-byte SEC1 compressed P-384 point
type AsymmetricPublicKey struct {
	version Version
	raw     []byte

	rsaKey *rsa.PublicKey
	edKey  ed25519.PublicKey
	ecKey  *ecdsa.PublicKey
}

// NewAsymmetricKeyPair generates a fresh keypair for the given version.
func NewAsymmetricKeyPair(version Version) (*AsymmetricSecretKey, *AsymmetricPublicKey, error) {
	var (
		sk  *AsymmetricSecretKey
		err error
	)

	switch version {
	case Version1:
		var key *rsa.PrivateKey
		key, err = crypto.GenerateRSAKeypair()
		if err == nil {
			sk, err = secretFromRSA(key)
		}
	case Version2, Version4:
		var key ed25519.PrivateKey
		_, key, err = crypto.GenerateEd25519Keypair()
		if err == nil {
			sk = secretFromEd25519(version, key)
		}
	case Version3:
		var key *ecdsa.PrivateKey
		key, err = crypto.GenerateP384Keypair()
		if err == nil {
			sk = secretFromECDSA(key)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("generate keypair: %w", err)
	}
	return sk, sk.Public(), nil
}

// AsymmetricSecretKeyFromBytes parses secret key material in the version's
// wire encoding. The material is validated here: DER must parse, scalars
// must be in range, and Ed25519 key halves must agree.
func AsymmetricSecretKeyFromBytes(version Version, material []byte) (*AsymmetricSecretKey, error) {
	switch version {
	case Version1:
		key, err := crypto.ParseRSASecretKey(material)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		return secretFromRSA(key)
	case Version2, Version4:
		key, err := crypto.ParseEd25519SecretKey(material)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		return secretFromEd25519(version, key), nil
	case Version3:
		key, err := crypto.ParseP384SecretKey(material)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		return secretFromECDSA(key), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
}

// AsymmetricSecretKeyFromSeed expands a 32-byte Ed25519 seed into a secret
// key. Only v2 and v4 keys have a seed form.
func AsymmetricSecretKeyFromSeed(version Version, seed []byte) (*AsymmetricSecretKey, error) {
	if !version.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
	}
	if version != Version2 && version != Version4 {
		return nil, fmt.Errorf("%w: %s keys cannot be built from a seed", ErrInvalidKey, version)
	}
	key, err := crypto.Ed25519SecretKeyFromSeed(seed)
	if err != nil {
		return nil, wrapKeyError(err)
	}
	return secretFromEd25519(version, key), nil
}

// AsymmetricPublicKeyFromBytes parses public key material in the version's
// wire encoding.
func AsymmetricPublicKeyFromBytes(version Version, material []byte) (*AsymmetricPublicKey, error) {
	switch version {
	case Version1:
		key, err := crypto.ParseRSAPublicKey(material)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		return publicFromRSA(key)
	case Version2, Version4:
		key, err := crypto.ParseEd25519PublicKey(material)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		return publicFromEd25519(version, key), nil
	case Version3:
		key, err := crypto.ParseP384PublicKey(material)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		return publicFromECDSA(key), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
}

func secretFromRSA(key *rsa.PrivateKey) (*AsymmetricSecretKey, error) {
	raw, err := crypto.MarshalRSASecretKey(key)
	if err != nil {
		return nil, wrapKeyError(err)
	}
	pub, err := publicFromRSA(&key.PublicKey)
	if err != nil {
		return nil, err
	}
	return &AsymmetricSecretKey{version: Version1, raw: raw, rsaKey: key, public: pub}, nil
}

func publicFromRSA(key *rsa.PublicKey) (*AsymmetricPublicKey, error) {
	raw, err := crypto.MarshalRSAPublicKey(key)
	if err != nil {
		return nil, wrapKeyError(err)
	}
	return &AsymmetricPublicKey{version: Version1, raw: raw, rsaKey: key}, nil
}

func secretFromEd25519(version Version, key ed25519.PrivateKey) *AsymmetricSecretKey {
	raw := make([]byte, len(key))
	copy(raw, key)
	pub := publicFromEd25519(version, key.Public().(ed25519.PublicKey))
	return &AsymmetricSecretKey{version: version, raw: raw, edKey: key, public: pub}
}

func publicFromEd25519(version Version, key ed25519.PublicKey) *AsymmetricPublicKey {
	raw := make([]byte, len(key))
	copy(raw, key)
	return &AsymmetricPublicKey{version: version, raw: raw, edKey: key}
}

func secretFromECDSA(key *ecdsa.PrivateKey) *AsymmetricSecretKey {
	pub := publicFromECDSA(&key.PublicKey)
	return &AsymmetricSecretKey{
		version: Version3,
		raw:     crypto.MarshalP384SecretKey(key),
		ecKey:   key,
		public:  pub,
	}
}

func publicFromECDSA(key *ecdsa.PublicKey) *AsymmetricPublicKey {
	return &AsymmetricPublicKey{
		version: Version3,
		raw:     crypto.MarshalP384PublicKey(key),
		ecKey:   key,
	}
}

// Version returns the protocol version this key is bound to.
func (k *AsymmetricSecretKey) Version() Version {
	return k.version
}

// Public returns the public half of the keypair. It is derived once at
// construction and remains available after Destroy.
func (k *AsymmetricSecretKey) Public() *AsymmetricPublicKey {
	return k.public
}

// Bytes returns a copy of the key material in the version's wire encoding,
// or nil after Destroy.
func (k *AsymmetricSecretKey) Bytes() []byte {
	if k.destroyed {
		return nil
	}
	out := make([]byte, len(k.raw))
	copy(out, k.raw)
	return out
}

// Destroy zeroizes the secret material. Afterwards every signing operation
// returns ErrKeyDestroyed. Destroy is idempotent.
func (k *AsymmetricSecretKey) Destroy() {
	crypto.Zero(k.raw)
	if k.edKey != nil {
		crypto.Zero(k.edKey)
	}
	k.rsaKey = nil
	k.edKey = nil
	k.ecKey = nil
	k.destroyed = true
}

func (k *AsymmetricSecretKey) usable() error {
	if k == nil {
		return fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	if k.destroyed {
		return ErrKeyDestroyed
	}
	return nil
}

// Version returns the protocol version this key is bound to.
func (k *AsymmetricPublicKey) Version() Version {
	return k.version
}

// Bytes returns a copy of the key material in the version's wire encoding.
func (k *AsymmetricPublicKey) Bytes() []byte {
	out := make([]byte, len(k.raw))
	copy(out, k.raw)
	return out
}

func (k *AsymmetricPublicKey) usable() error {
	if k == nil {
		return fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	return nil
}
