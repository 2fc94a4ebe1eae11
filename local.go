package paseto

import (
	"fmt"
	"unicode/utf8"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// Encrypt builds a local token. The payload is encrypted and
// authenticated under key together with the footer and, for v3 and v4,
// the implicit assertion. A fresh random nonce is drawn unless WithNonce
// pins one.
func (e *Engine) Encrypt(key *SymmetricKey, payload []byte, opts ...TokenOption) (string, error) {
	cfg := applyTokenOptions(opts)

	if err := key.usable(); err != nil {
		return "", err
	}
	proto := Protocol{key.version, PurposeLocal}
	if err := e.checkProtocol(proto); err != nil {
		return "", err
	}
	if err := checkImplicit(key.version, cfg.implicit); err != nil {
		return "", err
	}

	nonce, err := resolveNonce(key.version, cfg.nonce)
	if err != nil {
		return "", err
	}

	raw, err := sealRaw(key.version, key.material, nonce, payload, cfg.footer, cfg.implicit)
	if err != nil {
		return "", fmt.Errorf("encrypt token: %w", err)
	}
	return assembleToken(proto.Header(), raw, cfg.footer), nil
}

// Decrypt opens a local token. The header must name the key's version in
// local mode, the token's footer must match the asserted one, and the
// payload must authenticate and be valid UTF-8. Authentication failures
// of every kind collapse to ErrDecryptionFailed.
func (e *Engine) Decrypt(token string, key *SymmetricKey, opts ...TokenOption) ([]byte, error) {
	cfg := applyTokenOptions(opts)

	if err := key.usable(); err != nil {
		return nil, err
	}
	proto := Protocol{key.version, PurposeLocal}
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

	plain, err := openRaw(key.version, key.material, raw, cfg.footer, cfg.implicit)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if !utf8.Valid(plain) {
		return nil, fmt.Errorf("%w: decrypted payload is not valid UTF-8", ErrInvalidEncoding)
	}
	return plain, nil
}

func checkImplicit(version Version, implicit []byte) error {
	if len(implicit) > 0 && !version.SupportsImplicitAssertion() {
		return fmt.Errorf("%w: got one for %s", ErrImplicitNotSupported, version)
	}
	return nil
}

// resolveNonce returns the random input for a seal: the pinned nonce when
// WithNonce supplied one, a fresh draw otherwise.
func resolveNonce(version Version, pinned Nonce) ([]byte, error) {
	if !pinned.isZero() {
		if pinned.version != version {
			return nil, fmt.Errorf("%w: nonce is %s, key is %s", ErrKeyVersionMismatch, pinned.version, version)
		}
		return pinned.data, nil
	}

	size, err := nonceSize(version)
	if err != nil {
		return nil, err
	}
	data, err := crypto.RandomBytes(size)
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return data, nil
}

func sealRaw(version Version, key, nonce, payload, footer, implicit []byte) ([]byte, error) {
	switch version {
	case Version1:
		return crypto.SealV1(key, nonce, payload, footer)
	case Version2:
		return crypto.SealV2(key, nonce, payload, footer)
	case Version3:
		return crypto.SealV3(key, nonce, payload, footer, implicit)
	case Version4:
		return crypto.SealV4(key, nonce, payload, footer, implicit)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
}

func openRaw(version Version, key, raw, footer, implicit []byte) ([]byte, error) {
	switch version {
	case Version1:
		return crypto.OpenV1(key, raw, footer)
	case Version2:
		return crypto.OpenV2(key, raw, footer)
	case Version3:
		return crypto.OpenV3(key, raw, footer, implicit)
	case Version4:
		return crypto.OpenV4(key, raw, footer, implicit)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, version)
}
