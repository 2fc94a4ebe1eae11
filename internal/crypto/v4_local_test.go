package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealV4_OpenV4_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		message  []byte
		footer   []byte
		implicit []byte
	}{
		{"empty message", []byte{}, nil, nil},
		{"simple", []byte("hello world"), nil, nil},
		{"json", []byte(`{"data":"this is a secret message","exp":"2022-01-01T00:00:00+00:00"}`), nil, nil},
		{"with footer", []byte(`{"data":"test"}`), []byte(`{"kid":"key-1"}`), nil},
		{"with implicit", []byte(`{"data":"test"}`), nil, []byte(`{"test-vector":"4-E-7"}`)},
		{"footer and implicit", []byte(`{"data":"test"}`), []byte(`{"kid":"key-1"}`), []byte("shared context")},
		{"large", randBytes(t, 10000), []byte("footer"), []byte("implicit")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randBytes(t, SymmetricKeySize)
			nonce := randBytes(t, V4NonceSize)

			raw, err := SealV4(key, nonce, tt.message, tt.footer, tt.implicit)
			if err != nil {
				t.Fatalf("SealV4() error = %v", err)
			}

			if len(raw) != V4NonceSize+len(tt.message)+V4TagSize {
				t.Errorf("raw length = %d, want %d", len(raw), V4NonceSize+len(tt.message)+V4TagSize)
			}
			if !bytes.Equal(raw[:V4NonceSize], nonce) {
				t.Error("raw should start with the nonce unchanged")
			}

			message, err := OpenV4(key, raw, tt.footer, tt.implicit)
			if err != nil {
				t.Fatalf("OpenV4() error = %v", err)
			}
			if !bytes.Equal(message, tt.message) {
				t.Errorf("message = %q, want %q", message, tt.message)
			}
		})
	}
}

func TestSealV4_DeterministicForFixedNonce(t *testing.T) {
	key := randBytes(t, SymmetricKeySize)
	nonce := randBytes(t, V4NonceSize)
	message := []byte("same message")

	raw1, err := SealV4(key, nonce, message, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	raw2, err := SealV4(key, nonce, message, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(raw1, raw2) {
		t.Error("same key, nonce, and message should seal identically")
	}
}

func TestOpenV4_ImplicitBound(t *testing.T) {
	key := randBytes(t, SymmetricKeySize)
	raw, err := SealV4(key, randBytes(t, V4NonceSize), []byte("message"), nil, []byte("implicit-a"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := OpenV4(key, raw, nil, []byte("implicit-b")); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("error = %v, want ErrDecryptionFailed", err)
	}
	if _, err := OpenV4(key, raw, nil, nil); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpenV4_Tampered(t *testing.T) {
	key := randBytes(t, SymmetricKeySize)
	raw, err := SealV4(key, randBytes(t, V4NonceSize), []byte("authentic message"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		offset int
	}{
		{"nonce", 0},
		{"ciphertext", V4NonceSize + 2},
		{"tag", len(raw) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := append([]byte(nil), raw...)
			tampered[tt.offset] ^= 0x01

			if _, err := OpenV4(key, tampered, nil, nil); !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("error = %v, want ErrDecryptionFailed", err)
			}
		})
	}
}

func TestOpenV4_TruncatedRaw(t *testing.T) {
	key := make([]byte, SymmetricKeySize)

	for _, n := range []int{0, V4NonceSize, V4NonceSize + V4TagSize - 1} {
		if _, err := OpenV4(key, make([]byte, n), nil, nil); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("raw length %d: error = %v, want ErrDecryptionFailed", n, err)
		}
	}
}

func TestOpenV4_WrongKey(t *testing.T) {
	raw, err := SealV4(randBytes(t, SymmetricKeySize), randBytes(t, V4NonceSize), []byte("message"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := OpenV4(randBytes(t, SymmetricKeySize), raw, nil, nil); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("error = %v, want ErrDecryptionFailed", err)
	}
}

func TestSealV4_InvalidSizes(t *testing.T) {
	if _, err := SealV4(make([]byte, 16), make([]byte, V4NonceSize), []byte("m"), nil, nil); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("error = %v, want ErrInvalidKeySize", err)
	}
	if _, err := SealV4(make([]byte, SymmetricKeySize), make([]byte, 24), []byte("m"), nil, nil); !errors.Is(err, ErrInvalidNonceSize) {
		t.Errorf("error = %v, want ErrInvalidNonceSize", err)
	}
}

func BenchmarkSealV4(b *testing.B) {
	key := randBytes(b, SymmetricKeySize)
	nonce := randBytes(b, V4NonceSize)
	message := randBytes(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SealV4(key, nonce, message, nil, nil)
	}
}

func BenchmarkOpenV4(b *testing.B) {
	key := randBytes(b, SymmetricKeySize)
	raw, _ := SealV4(key, randBytes(b, V4NonceSize), randBytes(b, 1000), nil, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = OpenV4(key, raw, nil, nil)
	}
}
