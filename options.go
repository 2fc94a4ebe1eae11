package paseto

// engineConfig holds configuration for an Engine.
type engineConfig struct {
	protocols []Protocol
}

// tokenConfig holds configuration for a single token operation.
type tokenConfig struct {
	footer   []byte
	implicit []byte
	nonce    Nonce
}

// Option configures an Engine.
type Option func(*engineConfig)

// TokenOption configures a single Encrypt, Decrypt, Sign or Verify call.
type TokenOption func(*tokenConfig)

// WithProtocols restricts the Engine to the given protocols. Operations
// on any other protocol return ErrUnsupportedProtocol. An empty call
// allows nothing. Default: all eight.
func WithProtocols(protocols ...Protocol) Option {
	return func(c *engineConfig) {
		c.protocols = append([]Protocol{}, protocols...)
	}
}

// WithFooter sets the footer for a token operation. On write the footer is
// carried as the token's fourth segment and bound into the tag or
// signature; on read the token's footer must match it exactly.
func WithFooter(footer []byte) TokenOption {
	return func(c *tokenConfig) {
		c.footer = footer
	}
}

// WithImplicitAssertion binds extra data into the token's tag or signature
// without carrying it in the token. Both sides must supply the same
// assertion. Only v3 and v4 tokens support assertions.
func WithImplicitAssertion(assertion []byte) TokenOption {
	return func(c *tokenConfig) {
		c.implicit = assertion
	}
}

// WithNonce fixes the random input used by Encrypt, for reproducing
// published test vectors. The nonce version must match the key version.
// Operations other than Encrypt ignore it.
func WithNonce(nonce Nonce) TokenOption {
	return func(c *tokenConfig) {
		c.nonce = nonce
	}
}

func applyTokenOptions(opts []TokenOption) tokenConfig {
	var cfg tokenConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
