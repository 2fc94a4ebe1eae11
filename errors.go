package paseto

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/paseto/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrTokenFormat is returned when a token does not have 3 or 4
	// dot-separated segments.
	ErrTokenFormat = errors.New("invalid token format")

	// ErrWrongHeader is returned when a token header does not match the
	// protocol implied by the key.
	ErrWrongHeader = errors.New("token header mismatch")

	// ErrFooterMismatch is returned when a token footer does not match the
	// footer asserted by the caller.
	ErrFooterMismatch = errors.New("token footer mismatch")

	// ErrInvalidEncoding is returned when a token segment is not valid
	// unpadded base64url, or when a decrypted payload is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrDecryptionFailed is returned when a local token cannot be opened.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrInvalidKeySize is returned when key material has the wrong size.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a caller-provided nonce has the
	// wrong size for the key's version.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidKey is returned when key material has the right size but
	// cannot be used.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrKeyDestroyed is returned when a destroyed key is used.
	ErrKeyDestroyed = errors.New("key has been destroyed")

	// ErrUnsupportedProtocol is returned when a version and purpose pair is
	// unknown, or when an Engine was configured without it.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")

	// ErrKeyVersionMismatch is returned when a key and another input, such
	// as a caller-provided nonce, disagree on the protocol version.
	ErrKeyVersionMismatch = errors.New("key version mismatch")

	// ErrImplicitNotSupported is returned when an implicit assertion is
	// supplied for a v1 or v2 operation.
	ErrImplicitNotSupported = errors.New("implicit assertions require v3 or v4")
)

// PasetoError is implemented by all library errors.
type PasetoError interface {
	error
	PasetoError() // marker method
}

// TokenFormatError reports a token with the wrong number of segments.
type TokenFormatError struct {
	Segments int
}

func (e *TokenFormatError) Error() string {
	return fmt.Sprintf("token must have 3 or 4 dot-separated segments, got %d", e.Segments)
}

// Is implements errors.Is for sentinel error matching.
func (e *TokenFormatError) Is(target error) bool {
	return target == ErrTokenFormat
}

// PasetoError implements the PasetoError interface.
func (e *TokenFormatError) PasetoError() {}

// HeaderError reports a token whose header names a different protocol than
// the one the key selects.
type HeaderError struct {
	Expected string
	Actual   string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("token header is %q, want %q", e.Actual, e.Expected)
}

// Is implements errors.Is for sentinel error matching.
func (e *HeaderError) Is(target error) bool {
	return target == ErrWrongHeader
}

// PasetoError implements the PasetoError interface.
func (e *HeaderError) PasetoError() {}

// KeySizeError reports key material with the wrong length.
type KeySizeError struct {
	Got  int
	Want int
}

func (e *KeySizeError) Error() string {
	return fmt.Sprintf("invalid key size: got %d bytes, want %d", e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeySizeError) Is(target error) bool {
	return target == ErrInvalidKeySize
}

// PasetoError implements the PasetoError interface.
func (e *KeySizeError) PasetoError() {}

// NonceSizeError reports a caller-provided nonce with the wrong length.
type NonceSizeError struct {
	Got  int
	Want int
}

func (e *NonceSizeError) Error() string {
	return fmt.Sprintf("invalid nonce size: got %d bytes, want %d", e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *NonceSizeError) Is(target error) bool {
	return target == ErrInvalidNonceSize
}

// PasetoError implements the PasetoError interface.
func (e *NonceSizeError) PasetoError() {}

// KeyError reports key material that could not be parsed or validated.
// The message comes from the parser and names the specific problem.
type KeyError struct {
	Err error
}

func (e *KeyError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching. A wrong-length
// problem matches ErrInvalidKeySize; everything else matches
// ErrInvalidKey.
func (e *KeyError) Is(target error) bool {
	switch target {
	case ErrInvalidKeySize:
		return errors.Is(e.Err, crypto.ErrInvalidKeySize) ||
			errors.Is(e.Err, crypto.ErrInvalidSecretKeySize) ||
			errors.Is(e.Err, crypto.ErrInvalidPublicKeySize)
	case ErrInvalidKey:
		return errors.Is(e.Err, crypto.ErrInvalidKey)
	}
	return false
}

// PasetoError implements the PasetoError interface.
func (e *KeyError) PasetoError() {}

// wrapKeyError converts internal key parsing errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapKeyError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidKey),
		errors.Is(err, crypto.ErrInvalidKeySize),
		errors.Is(err, crypto.ErrInvalidSecretKeySize),
		errors.Is(err, crypto.ErrInvalidPublicKeySize):
		return &KeyError{Err: err}
	}

	return err
}
