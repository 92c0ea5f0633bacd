package hasher

import (
	"bytes"
	"testing"
)

func TestContentHashMatchesReader(t *testing.T) {
	data := []byte("ad-banner-1080x90.png")

	h := ContentHash(data, HexLen)
	if len(h) != HexLen {
		t.Fatalf("length: got %d", len(h))
	}
	r, err := ContentHashReader(bytes.NewReader(data), HexLen)
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	if r != h {
		t.Errorf("reader hash %s != %s", r, h)
	}
}

func TestContentHashTruncation(t *testing.T) {
	data := []byte("poolcue")
	full := ContentHash(data, 0)
	if len(full) != 16 {
		t.Fatalf("full length: %d", len(full))
	}
	if short := ContentHash(data, 8); short != full[:8] {
		t.Errorf("truncated %s is not a prefix of %s", short, full)
	}
	if ContentHash(data, 99) != full {
		t.Error("oversized hexLen should return the full hash")
	}
}

func TestContentHashKnownValue(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	if got := ContentHash(nil, 0); got != "ef46db3751d8e999" {
		t.Errorf("empty hash: got %s", got)
	}
}
