package paseto

import (
	"fmt"
	"unicode/utf8"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// Sign builds a public token. The payload travels in the clear and is
// signed under key together with the footer and, for v3 and v4, the
// implicit assertion.
func (e *Engine) Sign(key *AsymmetricSecretKey, payload []byte, opts ...TokenOption) (string, error) {
	cfg := applyTokenOptions(opts)

	if err := key.usable(); err != nil {
		return "", err
	}
	proto := Protocol{key.version, PurposePublic}
	if err := e.checkProtocol(proto); err != nil {
		return "", err
	}
	if err := checkImplicit(key.version, cfg.implicit); err != nil {
		return "", err
	}

	raw, err := signRaw(key, payload, cfg.footer, cfg.implicit)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return assembleToken(proto.Header(), raw, cfg.footer), nil
}

// Verify checks a public token's signature and returns the payload. The
// header must name the key's version in public mode, the token's footer
// must match the asserted one, and the payload must be valid UTF-8.
// Signature failures of every kind collapse to ErrSignatureInvalid.
func (e *Engine) Verify(token string, key *AsymmetricPublicKey, opts ...TokenOption) ([]byte, error) {
	cfg := applyTokenOptions(opts)

	if err := key.usable(); err != nil {
		return nil, err
	}
	proto := Protocol{key.version, PurposePublic}
	if err := e.checkProtocol(proto); err != nil {
		return nil, err
	}
	if err := checkImplicit(key.version, cfg.implicit); err != nil {
		return nil, err
	}

	parts, err := splitToken(token)
	if err != nil {
		return nil, err
	}
	if parts.header() != proto.Header() {
		return nil, &HeaderError{Expected: proto.Header(), Actual: parts.header()}
	}
	if err := matchFooter(parts, cfg.footer); err != nil {
		return nil, err
	}

	raw, err := decodePayload(parts)
	if err != nil {
		return nil, err
	}

	message, err := verifyRaw(key, raw, cfg.footer, cfg.implicit)
	if err != nil {
		return nil, ErrSignatureInvalid
	}
	if !utf8.Valid(message) {
		return nil, fmt.Errorf("%w: signed payload is not valid UTF-8", ErrInvalidEncoding)
	}
	return message, nil
}

func signRaw(key *AsymmetricSecretKey, payload, footer, implicit []byte) ([]byte, error) {
	switch key.version {
	case Version1:
		return crypto.SignV1(key.rsaKey, payload, footer)
	case Version2:
		return crypto.SignV2(key.edKey, payload, footer)
	case Version3:
		return crypto.SignV3(key.ecKey, payload, footer, implicit)
	case Version4:
		return crypto.SignV4(key.edKey, payload, footer, implicit)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, key.version)
}

func verifyRaw(key *AsymmetricPublicKey, raw, footer, implicit []byte) ([]byte, error) {
	switch key.version {
	case Version1:
		return crypto.VerifyV1(key.rsaKey, raw, footer)
	case Version2:
		return crypto.VerifyV2(key.edKey, raw, footer)
	case Version3:
		return crypto.VerifyV3(key.ecKey, raw, footer, implicit)
	case Version4:
		return crypto.VerifyV4(key.edKey, raw, footer, implicit)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, key.version)
}
