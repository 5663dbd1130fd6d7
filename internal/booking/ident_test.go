package booking

import (
	"regexp"
	"strings"
	"testing"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestGenerateIDShape(t *testing.T) {
	id := GenerateID()
	if len(id) != 36 {
		t.Errorf("len(GenerateID()) = %v, want 36", len(id))
	}
	if !idPattern.MatchString(id) {
		t.Errorf("GenerateID() = %q, want canonical v4 form", id)
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := GenerateID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier after %d generations: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestFormatV4StampsBits(t *testing.T) {
	// All-zero and all-one inputs must still come out as version 4 with an
	// RFC-4122 variant nibble.
	var zero [16]byte
	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}

	for _, b := range [][16]byte{zero, ones} {
		id := formatV4(b)
		if !idPattern.MatchString(id) {
			t.Errorf("formatV4(%v) = %q, want canonical v4 form", b, id)
		}
		if id[14] != '4' {
			t.Errorf("version nibble = %c, want 4 in %q", id[14], id)
		}
		if !strings.ContainsRune("89ab", rune(id[19])) {
			t.Errorf("variant nibble = %c, want one of 89ab in %q", id[19], id)
		}
	}
}
