package paseto

import (
	"fmt"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// SymmetricKey is a shared secret for local tokens. Every version uses
// 32-byte keys. A key is bound to one version at construction and cannot
// be used with tokens of another version.
type SymmetricKey struct {
	version   Version
	material  []byte
	destroyed bool
}

// NewSymmetricKey generates a fresh random key for the given version.
func NewSymmetricKey(version Version) (*SymmetricKey, error) {
	if !version.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
	}
	material, err := crypto.RandomBytes(crypto.SymmetricKeySize)
	if err != nil {
		return nil, fmt.Errorf("generate symmetric key: %w", err)
	}
	return &SymmetricKey{version: version, material: material}, nil
}

// SymmetricKeyFromBytes wraps existing 32-byte key material. The material
// is copied; the caller's slice is not retained.
func SymmetricKeyFromBytes(version Version, material []byte) (*SymmetricKey, error) {
	if !version.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
	}
	if len(material) != crypto.SymmetricKeySize {
		return nil, &KeySizeError{Got: len(material), Want: crypto.SymmetricKeySize}
	}
	k := &SymmetricKey{version: version, material: make([]byte, crypto.SymmetricKeySize)}
	copy(k.material, material)
	return k, nil
}

// Version returns the protocol version this key is bound to.
func (k *SymmetricKey) Version() Version {
	return k.version
}

// Bytes returns a copy of the key material, or nil after Destroy.
func (k *SymmetricKey) Bytes() []byte {
	if k.destroyed {
		return nil
	}
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out
}

// Destroy zeroizes the key material. Afterwards every operation using the
// key returns ErrKeyDestroyed. Destroy is idempotent.
func (k *SymmetricKey) Destroy() {
	crypto.Zero(k.material)
	k.destroyed = true
}

func (k *SymmetricKey) usable() error {
	if k == nil {
		return fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	if k.destroyed {
		return ErrKeyDestroyed
	}
	return nil
}
