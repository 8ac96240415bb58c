package math

import "math/rand"

const letters = "abcdefghijklmnopqrstuvwxyz0123456789"

// String returns a random hash of the given length.
func String(s int) string {
	b := make([]byte, s)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
