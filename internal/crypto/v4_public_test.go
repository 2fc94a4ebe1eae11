package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSignV4_VerifyV4_RoundTrip(t *testing.T) {
	pub, priv, err := GenerateEd25519Keypair()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		message  []byte
		footer   []byte
		implicit []byte
	}{
		{"empty message", []byte{}, nil, nil},
		{"simple", []byte("hello world"), nil, nil},
		{"json", []byte(`{"data":"this is a signed message","exp":"2022-01-01T00:00:00+00:00"}`), nil, nil},
		{"with footer", []byte(`{"data":"test"}`), []byte(`{"kid":"key-1"}`), nil},
		{"with implicit", []byte(`{"data":"test"}`), nil, []byte(`{"test-vector":"4-S-3"}`)},
		{"footer and implicit", []byte(`{"data":"test"}`), []byte(`{"kid":"key-1"}`), []byte("shared context")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := SignV4(priv, tt.message, tt.footer, tt.implicit)
			if err != nil {
				t.Fatalf("SignV4() error = %v", err)
			}

			if len(raw) != len(tt.message)+V4SignatureSize {
				t.Errorf("raw length = %d, want %d", len(raw), len(tt.message)+V4SignatureSize)
			}

			message, err := VerifyV4(pub, raw, tt.footer, tt.implicit)
			if err != nil {
				t.Fatalf("VerifyV4() error = %v", err)
			}
			if !bytes.Equal(message, tt.message) {
				t.Errorf("message = %q, want %q", message, tt.message)
			}
		})
	}
}

func TestVerifyV4_ImplicitBound(t *testing.T) {
	pub, priv, err := GenerateEd25519Keypair()
	if err != nil {
		t.Fatal(err)
	}
	raw, err := SignV4(priv, []byte("message"), nil, []byte("implicit-a"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyV4(pub, raw, nil, []byte("implicit-b")); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("error = %v, want ErrSignatureVerificationFailed", err)
	}
	if _, err := VerifyV4(pub, raw, nil, nil); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("error = %v, want ErrSignatureVerificationFailed", err)
	}
}

func TestVerifyV4_HeaderDiffersFromV2(t *testing.T) {
	// A v2 signature over the same message must not verify as v4; the
	// version header in the pre-authentication encoding separates them.
	pub, priv, err := GenerateEd25519Keypair()
	if err != nil {
		t.Fatal(err)
	}

	raw, err := SignV2(priv, []byte("message"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyV4(pub, raw, nil, nil); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("error = %v, want ErrSignatureVerificationFailed", err)
	}
}

func TestVerifyV4_Tampered(t *testing.T) {
	pub, priv, err := GenerateEd25519Keypair()
	if err != nil {
		t.Fatal(err)
	}
	raw, err := SignV4(priv, []byte("authentic message"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, offset := range []int{0, len(raw) - 1} {
		tampered := append([]byte(nil), raw...)
		tampered[offset] ^= 0x01

		if _, err := VerifyV4(pub, tampered, nil, nil); !errors.Is(err, ErrSignatureVerificationFailed) {
			t.Errorf("offset %d: error = %v, want ErrSignatureVerificationFailed", offset, err)
		}
	}
}

func TestVerifyV4_WrongKey(t *testing.T) {
	_, priv, err := GenerateEd25519Keypair()
	if err != nil {
		t.Fatal(err)
	}
	otherPub, _, err := GenerateEd25519Keypair()
	if err != nil {
		t.Fatal(err)
	}

	raw, err := SignV4(priv, []byte("message"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := VerifyV4(otherPub, raw, nil, nil); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("error = %v, want ErrSignatureVerificationFailed", err)
	}
}

func BenchmarkSignV4(b *testing.B) {
	_, priv, err := GenerateEd25519Keypair()
	if err != nil {
		b.Fatal(err)
	}
	message := randBytes(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SignV4(priv, message, nil, nil)
	}
}

func BenchmarkVerifyV4(b *testing.B) {
	pub, priv, err := GenerateEd25519Keypair()
	if err != nil {
		b.Fatal(err)
	}
	raw, _ := SignV4(priv, randBytes(b, 1000), nil, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = VerifyV4(pub, raw, nil, nil)
	}
}
