package fileid

import (
	"strings"
	"testing"
)

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("John Smith\nSoftware Engineer"))
	b := ContentHash([]byte("John Smith\nSoftware Engineer"))
	if a != b {
		t.Errorf("same content should give same hash: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, prefix) {
		t.Errorf("hash should have prefix %q: got %q", prefix, a)
	}
	if len(a) != len(prefix)+64 {
		t.Errorf("unexpected hash length %d: %q", len(a), a)
	}
}

func TestContentHash_differsByContent(t *testing.T) {
	a := ContentHash([]byte("resume one"))
	b := ContentHash([]byte("resume two"))
	if a == b {
		t.Errorf("different content should give different hashes: %q", a)
	}
}

func TestContentHash_empty(t *testing.T) {
	if ContentHash(nil) != ContentHash([]byte{}) {
		t.Error("nil and empty content should hash the same")
	}
}
