package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/CHEATEY13/Last/core"
)

func TestInMemoryCacheGetSetShouldStoreAndRetrieve(t *testing.T) {
	c := New(Config{TTL: 5 * time.Minute, MaxSize: 500})

	id := &core.Identity{ID: "user456", Email: "alice@example.com", Name: "Alice"}

	if err := c.Set("hash789", id); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	retrieved, err := c.Get("hash789")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if retrieved.ID != id.ID {
		t.Errorf("Expected ID %s, got %s", id.ID, retrieved.ID)
	}
	if retrieved.Email != id.Email {
		t.Errorf("Expected Email %s, got %s", id.Email, retrieved.Email)
	}
}

func TestInMemoryCacheGetNonExistentShouldReturnErrCacheNotFound(t *testing.T) {
	c := New(Config{TTL: 5 * time.Minute, MaxSize: 500})

	_, err := c.Get("nonexistent")
	if err != core.ErrCacheNotFound {
		t.Errorf("Expected ErrCacheNotFound, got %v", err)
	}
}

func TestInMemoryCacheExpiryShouldExpireEntriesAfterTTL(t *testing.T) {
	c := New(Config{TTL: 50 * time.Millisecond, MaxSize: 500})

	c.Set("hash789", &core.Identity{ID: "user456"})
	time.Sleep(80 * time.Millisecond)

	_, err := c.Get("hash789")
	if err != core.ErrCacheNotFound {
		t.Errorf("Expected ErrCacheNotFound after TTL, got %v", err)
	}
}

func TestInMemoryCacheEvictsWhenFull(t *testing.T) {
	c := New(Config{TTL: 5 * time.Minute, MaxSize: 3})

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("hash-%d", i), &core.Identity{ID: fmt.Sprintf("user-%d", i)})
	}

	if c.Len() > 3 {
		t.Errorf("Expected at most 3 entries, got %d", c.Len())
	}
	if c.Stats().Evictions == 0 {
		t.Error("Expected evictions to be counted")
	}
}

func TestInMemoryCacheStats(t *testing.T) {
	c := New(Config{TTL: 5 * time.Minute, MaxSize: 500})

	c.Set("h1", &core.Identity{ID: "u1"})
	c.Get("h1")
	c.Get("missing")
	c.Delete("h1")

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Sets != 1 || stats.Deletes != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
