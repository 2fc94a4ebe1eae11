package paseto

import "fmt"

// Engine runs token operations for an allowed set of protocols. The
// allowed set is fixed at construction, so an Engine is safe for
// concurrent use. The zero value allows nothing; construct with
// NewEngine.
type Engine struct {
	enabled map[Protocol]struct{}
}

// NewEngine returns an Engine. Without options all eight protocols are
// enabled; WithProtocols narrows the set, and operations on an excluded
// protocol fail with ErrUnsupportedProtocol before touching key material.
func NewEngine(opts ...Option) *Engine {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	protocols := cfg.protocols
	if protocols == nil {
		protocols = Protocols()
	}

	e := &Engine{enabled: make(map[Protocol]struct{}, len(protocols))}
	for _, p := range protocols {
		e.enabled[p] = struct{}{}
	}
	return e
}

// Supports reports whether the protocol is enabled on this engine.
func (e *Engine) Supports(p Protocol) bool {
	_, ok := e.enabled[p]
	return ok
}

func (e *Engine) checkProtocol(p Protocol) error {
	if !e.Supports(p) {
		return fmt.Errorf("%w: %s", ErrUnsupportedProtocol, p)
	}
	return nil
}

// defaultEngine has every protocol enabled and serves the package-level
// functions.
var defaultEngine = NewEngine()

// Encrypt builds a local token from payload using the default engine.
func Encrypt(key *SymmetricKey, payload []byte, opts ...TokenOption) (string, error) {
	return defaultEngine.Encrypt(key, payload, opts...)
}

// Decrypt opens a local token using the default engine.
func Decrypt(token string, key *SymmetricKey, opts ...TokenOption) ([]byte, error) {
	return defaultEngine.Decrypt(token, key, opts...)
}

// Sign builds a public token from payload using the default engine.
func Sign(key *AsymmetricSecretKey, payload []byte, opts ...TokenOption) (string, error) {
	return defaultEngine.Sign(key, payload, opts...)
}

// Verify checks a public token's signature using the default engine and
// returns the payload.
func Verify(token string, key *AsymmetricPublicKey, opts ...TokenOption) ([]byte, error) {
	return defaultEngine.Verify(token, key, opts...)
}
