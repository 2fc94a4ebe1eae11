// Package crypto implements the per-version cipher and signature suites of
// the PASETO token protocol. Each protocol version pins one fixed set of
// algorithms; there is no negotiation and no way to mix primitives across
// versions.
//
// # Algorithm Suites
//
// Local (shared-key) mode:
//
//   - v1: AES-256-CTR with an HMAC-SHA-384 tag over the pre-authentication
//     encoding, keys split from the master key with HKDF-SHA-384.
//
//   - v2: XChaCha20-Poly1305 keyed directly with the master key. The 24-byte
//     nonce is derived from the message with keyed BLAKE2b, making
//     encryption deterministic for a fixed random input.
//
//   - v3: AES-256-CTR with HMAC-SHA-384, keys split with HKDF-SHA-384 where
//     the 32-byte random nonce is appended to the derivation info. Supports
//     implicit assertions.
//
//   - v4: XChaCha20 with a keyed-BLAKE2b tag, keys split with keyed BLAKE2b.
//     Supports implicit assertions.
//
// Public (signed) mode:
//
//   - v1: RSASSA-PSS with SHA-384 over 2048-bit keys.
//   - v2: Ed25519.
//   - v3: ECDSA over P-384 with SHA-384, fixed-width r || s signatures.
//   - v4: Ed25519 with implicit assertion support.
//
// # Security Model
//
// Every suite authenticates the token header, nonce, ciphertext, footer and,
// for v3/v4, the implicit assertion through the pre-authentication encoding.
// Local suites verify the authentication tag in constant time BEFORE any
// decryption takes place; ciphertext that fails authentication is never fed
// to a cipher. All failures on the open and verify paths collapse to
// [ErrDecryptionFailed] or [ErrSignatureVerificationFailed] so callers
// cannot be turned into padding or tag oracles.
//
// # Randomness
//
// Key and nonce generation read from crypto/rand. The source can be
// overridden for deterministic tests via [SetRandReaderForTesting]; because
// the package is internal, external code cannot reach that hook.
//
// Seal functions take the random input as an explicit argument rather than
// drawing it themselves. For v1 and v2 that input is a nonce key from which
// the wire nonce is derived, so even a repeated or biased input degrades to
// deterministic encryption rather than nonce reuse.
package crypto
