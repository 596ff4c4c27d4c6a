package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	ms.Set(ctx, "k", "v", time.Minute)

	got, ok := ms.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("Get(k) = %q, %v; want v, true", got, ok)
	}
}

func TestMemoryStore_MissingKey(t *testing.T) {
	ms := NewMemoryStore()

	if _, ok := ms.Get(context.Background(), "absent"); ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestMemoryStore_Expiration(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	ms.Set(ctx, "k", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := ms.Get(ctx, "k"); ok {
		t.Fatal("expected expired key to miss")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	ms.Set(ctx, "k", "v", time.Minute)
	ms.Delete(ctx, "k")

	if _, ok := ms.Get(ctx, "k"); ok {
		t.Fatal("expected deleted key to miss")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	ms.Set(ctx, "k", "v1", time.Minute)
	ms.Set(ctx, "k", "v2", time.Minute)

	got, _ := ms.Get(ctx, "k")
	if got != "v2" {
		t.Fatalf("Get(k) = %q, want v2", got)
	}
}
