// Package common holds small helpers shared across the client.
package common

// WipeByteArray zeroes the buffer in place. Use it to drop password bytes
// from memory as soon as they have been consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
