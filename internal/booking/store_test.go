package booking

import (
	"testing"
	"time"

	"github.com/hightidestudios/website/internal/catalog"
)

type movableClock struct{ now *time.Time }

func (c movableClock) Now() time.Time { return *c.now }

func TestStoreCreateAndGet(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	store := NewStore(Config{Catalog: cat}, time.Hour)

	key, session := store.Create("gold")
	if key == "" {
		t.Fatal("empty session key")
	}
	if session.Draft().PackageID != "gold" {
		t.Fatalf("package: %q", session.Draft().PackageID)
	}

	got, ok := store.Get(key)
	if !ok || got != session {
		t.Fatal("lookup failed")
	}

	if _, ok := store.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	store.Drop(key)
	if _, ok := store.Get(key); ok {
		t.Fatal("expected miss after drop")
	}
}

func TestStorePruneDropsIdleSessions(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	now := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	clock := movableClock{now: &now}
	store := NewStore(Config{Catalog: cat, Clock: clock}, time.Hour)

	staleKey, _ := store.Create("")

	now = now.Add(30 * time.Minute)
	freshKey, _ := store.Create("")

	now = now.Add(45 * time.Minute)
	if pruned := store.Prune(); pruned != 1 {
		t.Fatalf("pruned: %d", pruned)
	}

	if _, ok := store.Get(staleKey); ok {
		t.Fatal("stale session survived prune")
	}
	if _, ok := store.Get(freshKey); !ok {
		t.Fatal("fresh session was pruned")
	}
	if store.Len() != 1 {
		t.Fatalf("len: %d", store.Len())
	}
}
