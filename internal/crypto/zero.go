package crypto

// Zero overwrites b with zero bytes. Derivation helpers call it on scratch
// key material before returning, and key owners call it on release.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
