package paseto

import (
	"fmt"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// Version identifies a PASETO protocol version. Each version pins a fixed
// algorithm suite; there is no negotiation.
type Version string

const (
	// Version1 uses NIST-only primitives: AES-256-CTR with HMAC-SHA-384
	// for local tokens and RSASSA-PSS for public tokens.
	Version1 Version = "v1"
	// Version2 uses XChaCha20-Poly1305 for local tokens and Ed25519 for
	// public tokens.
	Version2 Version = "v2"
	// Version3 is the modern NIST-only version: AES-256-CTR with
	// HMAC-SHA-384 and ECDSA over P-384, with implicit assertion support.
	Version3 Version = "v3"
	// Version4 is the modern Sodium version: XChaCha20 with keyed BLAKE2b
	// and Ed25519, with implicit assertion support.
	Version4 Version = "v4"
)

func (v Version) valid() bool {
	switch v {
	case Version1, Version2, Version3, Version4:
		return true
	}
	return false
}

// SupportsImplicitAssertion reports whether tokens of this version can bind
// an implicit assertion. Only v3 and v4 can.
func (v Version) SupportsImplicitAssertion() bool {
	return v == Version3 || v == Version4
}

// Purpose identifies how a token protects its payload.
type Purpose string

const (
	// PurposeLocal tokens are encrypted and authenticated with a shared
	// symmetric key.
	PurposeLocal Purpose = "local"
	// PurposePublic tokens are signed but readable by anyone; only the
	// signature is protected.
	PurposePublic Purpose = "public"
)

// Protocol is a (version, purpose) pair. The eight package-level protocol
// values are the only valid ones; the zero value matches nothing.
type Protocol struct {
	version Version
	purpose Purpose
}

var (
	// V1Local is version 1 in local mode.
	V1Local = Protocol{Version1, PurposeLocal}
	// V1Public is version 1 in public mode.
	V1Public = Protocol{Version1, PurposePublic}
	// V2Local is version 2 in local mode.
	V2Local = Protocol{Version2, PurposeLocal}
	// V2Public is version 2 in public mode.
	V2Public = Protocol{Version2, PurposePublic}
	// V3Local is version 3 in local mode.
	V3Local = Protocol{Version3, PurposeLocal}
	// V3Public is version 3 in public mode.
	V3Public = Protocol{Version3, PurposePublic}
	// V4Local is version 4 in local mode.
	V4Local = Protocol{Version4, PurposeLocal}
	// V4Public is version 4 in public mode.
	V4Public = Protocol{Version4, PurposePublic}
)

// Protocols returns all eight protocols in version order.
func Protocols() []Protocol {
	return []Protocol{
		V1Local, V1Public,
		V2Local, V2Public,
		V3Local, V3Public,
		V4Local, V4Public,
	}
}

// ParseProtocol maps version and purpose strings, as they appear in a token
// header, to a Protocol. Unknown pairs return ErrUnsupportedProtocol.
func ParseProtocol(version, purpose string) (Protocol, error) {
	p := Protocol{Version(version), Purpose(purpose)}
	if !p.version.valid() || (p.purpose != PurposeLocal && p.purpose != PurposePublic) {
		return Protocol{}, fmt.Errorf("%w: %q.%q", ErrUnsupportedProtocol, version, purpose)
	}
	return p, nil
}

// Version returns the protocol version.
func (p Protocol) Version() Version { return p.version }

// Purpose returns the protocol purpose.
func (p Protocol) Purpose() Purpose { return p.purpose }

// Header returns the token header for this protocol, including the
// trailing dot: "v4.local.".
func (p Protocol) Header() string {
	return string(p.version) + "." + string(p.purpose) + "."
}

// String returns the protocol name without the trailing dot: "v4.local".
func (p Protocol) String() string {
	return string(p.version) + "." + string(p.purpose)
}

// NonceSize returns the nonce size in bytes for local protocols, or 0 for
// public ones. For v1 and v2 this is the size of the random nonce key the
// wire nonce is derived from; the wire nonce has the same size.
func (p Protocol) NonceSize() int {
	if p.purpose != PurposeLocal {
		return 0
	}
	switch p.version {
	case Version1:
		return crypto.V1NonceSize
	case Version2:
		return crypto.V2NonceSize
	case Version3:
		return crypto.V3NonceSize
	case Version4:
		return crypto.V4NonceSize
	}
	return 0
}

// TagSize returns the authentication tag size in bytes for local
// protocols, or 0 for public ones.
func (p Protocol) TagSize() int {
	if p.purpose != PurposeLocal {
		return 0
	}
	switch p.version {
	case Version1:
		return crypto.V1TagSize
	case Version2:
		return crypto.V2TagSize
	case Version3:
		return crypto.V3TagSize
	case Version4:
		return crypto.V4TagSize
	}
	return 0
}

// SignatureSize returns the signature size in bytes for public protocols,
// or 0 for local ones.
func (p Protocol) SignatureSize() int {
	if p.purpose != PurposePublic {
		return 0
	}
	switch p.version {
	case Version1:
		return crypto.V1SignatureSize
	case Version2:
		return crypto.V2SignatureSize
	case Version3:
		return crypto.V3SignatureSize
	case Version4:
		return crypto.V4SignatureSize
	}
	return 0
}
