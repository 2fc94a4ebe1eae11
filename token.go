package paseto

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// tokenParts is a structurally split token. Segment contents are still
// base64 at this stage; nothing has been decoded.
type tokenParts struct {
	version   string
	purpose   string
	payload   string
	footer    string
	hasFooter bool
}

func splitToken(token string) (tokenParts, error) {
	segments := strings.Split(token, ".")
	switch len(segments) {
	case 3:
		return tokenParts{
			version: segments[0],
			purpose: segments[1],
			payload: segments[2],
		}, nil
	case 4:
		return tokenParts{
			version:   segments[0],
			purpose:   segments[1],
			payload:   segments[2],
			footer:    segments[3],
			hasFooter: true,
		}, nil
	}
	return tokenParts{}, &TokenFormatError{Segments: len(segments)}
}

func (p tokenParts) header() string {
	return p.version + "." + p.purpose + "."
}

// assembleToken builds header || b64(raw), appending "." || b64(footer)
// only when a footer is present.
func assembleToken(header string, raw, footer []byte) string {
	token := header + crypto.ToBase64URL(raw)
	if len(footer) > 0 {
		token += "." + crypto.ToBase64URL(footer)
	}
	return token
}

// matchFooter enforces the caller's footer assertion against the token. A
// 3-segment token asserts an empty footer. The comparison runs on the
// decoded bytes in constant time.
func matchFooter(parts tokenParts, asserted []byte) error {
	if !parts.hasFooter {
		if len(asserted) > 0 {
			return ErrFooterMismatch
		}
		return nil
	}

	footer, err := crypto.FromBase64URL(parts.footer)
	if err != nil {
		return fmt.Errorf("%w: footer segment: %v", ErrInvalidEncoding, err)
	}
	if subtle.ConstantTimeCompare(footer, asserted) != 1 {
		return ErrFooterMismatch
	}
	return nil
}

func decodePayload(parts tokenParts) ([]byte, error) {
	raw, err := crypto.FromBase64URL(parts.payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload segment: %v", ErrInvalidEncoding, err)
	}
	return raw, nil
}
