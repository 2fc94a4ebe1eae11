package crypto

const (
	// SymmetricKeySize is the size of a local-mode master key in bytes.
	// All four protocol versions use 256-bit shared keys.
	SymmetricKeySize = 32

	// V1NonceSize is the size of a v1.local nonce in bytes. The same size
	// applies to the random nonce key the synthetic nonce is derived from.
	V1NonceSize = 32
	// V2NonceSize is the size of a v2.local nonce in bytes.
	V2NonceSize = 24
	// V3NonceSize is the size of a v3.local nonce in bytes.
	V3NonceSize = 32
	// V4NonceSize is the size of a v4.local nonce in bytes.
	V4NonceSize = 32

	// V1TagSize is the size of a v1.local HMAC-SHA-384 tag in bytes.
	V1TagSize = 48
	// V2TagSize is the size of a v2.local Poly1305 tag in bytes.
	V2TagSize = 16
	// V3TagSize is the size of a v3.local HMAC-SHA-384 tag in bytes.
	V3TagSize = 48
	// V4TagSize is the size of a v4.local keyed-BLAKE2b tag in bytes.
	V4TagSize = 32

	// V1SignatureSize is the size of a v1.public RSASSA-PSS signature in
	// bytes, fixed by the 2048-bit modulus.
	V1SignatureSize = 256
	// V2SignatureSize is the size of a v2.public Ed25519 signature in bytes.
	V2SignatureSize = 64
	// V3SignatureSize is the size of a v3.public ECDSA signature in bytes:
	// two 48-byte scalars concatenated as r || s.
	V3SignatureSize = 96
	// V4SignatureSize is the size of a v4.public Ed25519 signature in bytes.
	V4SignatureSize = 64

	// Ed25519SeedSize is the size of an Ed25519 private key seed in bytes.
	Ed25519SeedSize = 32
	// Ed25519SecretKeySize is the size of an expanded Ed25519 private key
	// in bytes: the seed followed by the public key.
	Ed25519SecretKeySize = 64
	// Ed25519PublicKeySize is the size of an Ed25519 public key in bytes.
	Ed25519PublicKeySize = 32

	// P384ScalarSize is the size of a P-384 private scalar in bytes.
	P384ScalarSize = 48
	// P384CompressedPointSize is the size of a SEC1 compressed P-384 point
	// in bytes: one sign byte followed by the 48-byte x coordinate.
	P384CompressedPointSize = 49

	// RSAModulusBits is the only RSA key size v1.public accepts.
	RSAModulusBits = 2048
)

// Token headers bound into the pre-authentication encoding of each suite.
const (
	HeaderV1Local  = "v1.local."
	HeaderV1Public = "v1.public."
	HeaderV2Local  = "v2.local."
	HeaderV2Public = "v2.public."
	HeaderV3Local  = "v3.local."
	HeaderV3Public = "v3.public."
	HeaderV4Local  = "v4.local."
	HeaderV4Public = "v4.public."
)

// Domain separation strings for key derivation. The encryption and
// authentication halves of a local suite must never share key material.
const (
	infoEncryptionKey = "paseto-encryption-key"
	infoAuthKey       = "paseto-auth-key-for-aead"
)
