package redis

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "statement:c1", []byte(`{"rows":[]}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "statement:c1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"rows":[]}` {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestCacheGetMissing(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)

	if _, err := cache.Get(context.Background(), "absent"); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestCacheTTLExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("v"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Second)

	if _, err := cache.Get(ctx, "short"); err == nil {
		t.Fatal("expected expired key to be gone")
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "doomed", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "doomed"); err == nil {
		t.Fatal("expected deleted key to be gone")
	}
}
