package pae

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestEncode_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		pieces [][]byte
		want   string // hex
	}{
		{"no pieces", nil, "0000000000000000"},
		{"one empty piece", [][]byte{{}}, "01000000000000000000000000000000"},
		{"one word", [][]byte{[]byte("test")}, "0100000000000000040000000000000074657374"},
		{"paragon", [][]byte{[]byte("Paragon")}, "0100000000000000070000000000000050617261676f6e"},
		{"two pieces", [][]byte{[]byte("Paragon"), []byte("Initiative")}, "0200000000000000070000000000000050617261676f6e0a00000000000000496e6974696174697665"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(Encode(tt.pieces...))
			if got != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncode_NilEqualsEmpty(t *testing.T) {
	if !bytes.Equal(Encode(nil), Encode([]byte{})) {
		t.Error("nil piece and empty piece should encode identically")
	}
}

func TestEncode_Unambiguous(t *testing.T) {
	// Moving a boundary between pieces must change the encoding even
	// though the concatenated content is identical.
	tests := []struct {
		name string
		a    [][]byte
		b    [][]byte
	}{
		{"split vs joined", [][]byte{[]byte("xy")}, [][]byte{[]byte("x"), []byte("y")}},
		{"shifted boundary", [][]byte{[]byte("a"), []byte("bc")}, [][]byte{[]byte("ab"), []byte("c")}},
		{"empty tail", [][]byte{[]byte("a")}, [][]byte{[]byte("a"), {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if bytes.Equal(Encode(tt.a...), Encode(tt.b...)) {
				t.Error("distinct piece lists produced the same encoding")
			}
		})
	}
}

func TestEncode_CountPrefix(t *testing.T) {
	out := Encode([]byte("a"), []byte("b"), []byte("c"))
	if out[0] != 3 {
		t.Errorf("count prefix = %d, want 3", out[0])
	}
	for _, b := range out[1:8] {
		if b != 0 {
			t.Error("count prefix high bytes should be zero")
		}
	}
}

func TestEncode_Length(t *testing.T) {
	pieces := [][]byte{make([]byte, 5), make([]byte, 0), make([]byte, 300)}
	want := 8 + (8 + 5) + (8 + 0) + (8 + 300)
	if got := len(Encode(pieces...)); got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
}

func BenchmarkEncode(b *testing.B) {
	header := []byte("v4.local.")
	nonce := make([]byte, 32)
	payload := make([]byte, 1000)
	footer := []byte("key-id:test")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(header, nonce, payload, footer)
	}
}
