package booking

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// GenerateID returns a fresh identifier for a reservation or payment record:
// a canonical 8-4-4-4-12 hyphenated hex string carrying version-4 and
// RFC-4122 variant bits. It never fails. Entropy sources are tried in order
// of strength, and a missing secure source degrades silently to math/rand
// rather than aborting.
func GenerateID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}

	var b [16]byte
	if _, err := crand.Read(b[:]); err == nil {
		return formatV4(b)
	}

	// Last resort: pseudo-random fill of the same template.
	var p [16]byte
	for i := range p {
		p[i] = byte(rand.Intn(256))
	}
	return formatV4(p)
}

// formatV4 stamps the version and variant bits and hyphenates.
func formatV4(b [16]byte) string {
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC-4122 variant
	h := hex.EncodeToString(b[:])
	return fmt.Sprintf("%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}
