package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
)

// macSHA384 computes HMAC-SHA-384 over data. The v1 and v3 suites use it
// both for authentication tags and, in v1, to derive the synthetic nonce.
func macSHA384(key, data []byte) []byte {
	mac := hmac.New(sha512.New384, key)
	mac.Write(data)
	return mac.Sum(nil)
}
