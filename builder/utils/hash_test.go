package utils

import (
	"testing"
)

func TestShortHash(t *testing.T) {
	a := ShortHash("🎉")
	if len(a) != 8 {
		t.Errorf("ShortHash length = %d, want 8", len(a))
	}
	if a != ShortHash("🎉") {
		t.Error("ShortHash is not deterministic")
	}
	if a == ShortHash("🎊") {
		t.Error("different inputs gave the same hash")
	}
}

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte("hello"))
	if len(h) != 64 {
		t.Errorf("ContentHash length = %d, want 64", len(h))
	}
	if h[:8] != ShortHash("hello") {
		t.Errorf("ShortHash should be a prefix of ContentHash: %s vs %s", ShortHash("hello"), h)
	}
}
