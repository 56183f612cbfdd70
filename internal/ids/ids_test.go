package ids

import (
	"strings"
	"testing"
)

func TestBookingCodeShape(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		code := BookingCode()
		if len(code) != codeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), codeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = struct{}{}
	}
	// Collisions are permitted but 10k draws from a 36^8 space should not
	// collapse onto a handful of values.
	if len(seen) < 9900 {
		t.Fatalf("expected nearly all codes distinct, got %d unique", len(seen))
	}
}
