package crypto

import "testing"

func TestHashToken(t *testing.T) {
	first := HashToken("some-bearer-token")
	second := HashToken("some-bearer-token")

	if first != second {
		t.Error("HashToken should be deterministic")
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(first))
	}
	if HashToken("other-token") == first {
		t.Error("different tokens should hash differently")
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("NewID() error = %v", err)
		}
		if len(id) != idSize {
			t.Fatalf("expected length %d, got %d", idSize, len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
