package common

// WipeByteArray overwrites b with zeros. Safe on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
