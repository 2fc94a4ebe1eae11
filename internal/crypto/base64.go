package crypto

import (
	"encoding/base64"
)

// Token segments use URL-safe base64 without padding (RFC 4648 §5), and
// only that alphabet. Decoding rejects padded input and non-zero trailing
// bits, so a byte string has exactly one accepted encoded form.
var b64 = base64.RawURLEncoding.Strict()

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return b64.EncodeToString(data)
}

// FromBase64URL decodes URL-safe unpadded base64.
func FromBase64URL(s string) ([]byte, error) {
	return b64.DecodeString(s)
}
