package paseto

import (
	"fmt"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// Nonce is the per-token random input for local mode. For v3 and v4 it is
// the wire nonce itself; for v1 and v2 it is the nonce key the wire nonce
// is derived from, so even a repeated Nonce never repeats a (key, wire
// nonce) pair under those versions.
//
// Encrypt draws a fresh Nonce on every call. Supplying one through
// WithNonce is for reproducing published test vectors.
type Nonce struct {
	version Version
	data    []byte
}

// NewNonce generates a random nonce of the size the version requires.
func NewNonce(version Version) (Nonce, error) {
	size, err := nonceSize(version)
	if err != nil {
		return Nonce{}, err
	}
	data, err := crypto.RandomBytes(size)
	if err != nil {
		return Nonce{}, fmt.Errorf("generate nonce: %w", err)
	}
	return Nonce{version: version, data: data}, nil
}

// NonceFromBytes wraps existing nonce bytes. The bytes are copied.
func NonceFromBytes(version Version, data []byte) (Nonce, error) {
	size, err := nonceSize(version)
	if err != nil {
		return Nonce{}, err
	}
	if len(data) != size {
		return Nonce{}, &NonceSizeError{Got: len(data), Want: size}
	}
	n := Nonce{version: version, data: make([]byte, size)}
	copy(n.data, data)
	return n, nil
}

// Version returns the protocol version this nonce is sized for.
func (n Nonce) Version() Version {
	return n.version
}

// Bytes returns a copy of the nonce bytes.
func (n Nonce) Bytes() []byte {
	out := make([]byte, len(n.data))
	copy(out, n.data)
	return out
}

func (n Nonce) isZero() bool {
	return n.data == nil
}

func nonceSize(version Version) (int, error) {
	switch version {
	case Version1:
		return crypto.V1NonceSize, nil
	case Version2:
		return crypto.V2NonceSize, nil
	case Version3:
		return crypto.V3NonceSize, nil
	case Version4:
		return crypto.V4NonceSize, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
}
