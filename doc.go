// Package paseto implements the PASETO token protocol, versions 1
// through 4, in local and public mode.
//
// Local tokens encrypt and authenticate a payload under a shared
// SymmetricKey. Public tokens sign a cleartext payload under an
// AsymmetricSecretKey and verify under the matching AsymmetricPublicKey.
// Each key is bound to one protocol version; the version picks the
// algorithm suite and there is no negotiation.
//
// Basic usage:
//
//	key, err := paseto.NewSymmetricKey(paseto.Version4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := paseto.Encrypt(key, []byte(`{"user":42}`),
//	    paseto.WithFooter([]byte("key-id:2024-09")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := paseto.Decrypt(token, key,
//	    paseto.WithFooter([]byte("key-id:2024-09")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s\n", payload)
//
// Tokens carry an optional footer, authenticated but not encrypted, as a
// fourth segment. Versions 3 and 4 additionally bind an implicit
// assertion: data both sides must know but that never appears in the
// token. ParseUntrusted reads a token's header and footer without any
// cryptographic check, which is how a verifier routes a token to the
// right key before verifying it.
//
// Deployments that only ever use one version pin it with an Engine:
//
//	engine := paseto.NewEngine(paseto.WithProtocols(paseto.V4Local, paseto.V4Public))
//
// Operations on every other protocol then fail with
// ErrUnsupportedProtocol before touching key material.
package paseto
