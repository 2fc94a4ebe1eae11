package paseto

import (
	"fmt"
	"unicode/utf8"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// UntrustedToken is the structural view of a token before any
// cryptographic check. Until Decrypt or Verify succeeds the footer is
// attacker-controlled data and the payload is off limits; the accessors
// here never touch the payload segment.
type UntrustedToken struct {
	protocol  Protocol
	footer    string
	hasFooter bool
}

// ParseUntrusted splits a token structurally. Only the segment count and
// a known header are checked. The result is useful for routing, such as
// picking a key by version or reading a key ID out of the footer, and
// carries no authenticity guarantee.
func ParseUntrusted(token string) (*UntrustedToken, error) {
	parts, err := splitToken(token)
	if err != nil {
		return nil, err
	}
	proto, err := ParseProtocol(parts.version, parts.purpose)
	if err != nil {
		return nil, err
	}
	return &UntrustedToken{
		protocol:  proto,
		footer:    parts.footer,
		hasFooter: parts.hasFooter,
	}, nil
}

// Protocol returns the protocol the token header names.
func (t *UntrustedToken) Protocol() Protocol {
	return t.protocol
}

// Version returns the version the token header names.
func (t *UntrustedToken) Version() Version {
	return t.protocol.version
}

// Purpose returns the purpose the token header names.
func (t *UntrustedToken) Purpose() Purpose {
	return t.protocol.purpose
}

// HasFooter reports whether the token carries a fourth segment.
func (t *UntrustedToken) HasFooter() bool {
	return t.hasFooter
}

// FooterBytes decodes and returns the footer, or nil for a 3-segment
// token. The footer is unauthenticated at this point: treat it as a
// hint and re-assert the expected value through WithFooter on Decrypt or
// Verify.
func (t *UntrustedToken) FooterBytes() ([]byte, error) {
	if !t.hasFooter {
		return nil, nil
	}
	footer, err := crypto.FromBase64URL(t.footer)
	if err != nil {
		return nil, fmt.Errorf("%w: footer segment: %v", ErrInvalidEncoding, err)
	}
	return footer, nil
}

// FooterString decodes the footer as UTF-8 text. A 3-segment token
// returns the empty string.
func (t *UntrustedToken) FooterString() (string, error) {
	footer, err := t.FooterBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(footer) {
		return "", fmt.Errorf("%w: footer is not valid UTF-8", ErrInvalidEncoding)
	}
	return string(footer), nil
}
