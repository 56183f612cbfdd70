package ids

import (
	"crypto/rand"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// BookingCode returns an 8-character code drawn uniformly from A-Z0-9.
// Codes are not checked for uniqueness against stored bookings; the space
// (36^8) makes collisions negligible for this system's volume.
func BookingCode() string {
	// 252 is the largest multiple of 36 below 256; bytes at or above it are
	// rejected to keep the draw uniform.
	const limit = byte(252)

	out := make([]byte, 0, codeLength)
	buf := make([]byte, codeLength)
	for len(out) < codeLength {
		if _, err := rand.Read(buf); err != nil {
			panic(err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == codeLength {
				break
			}
		}
	}
	return string(out)
}
