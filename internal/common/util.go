package common

// WipeByteArray zeroes a sensitive buffer (passwords, one-time codes) so it
// does not linger in memory after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
