package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyStoreCheckAndSet(t *testing.T) {
	client, srv := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	t.Run("new key is locked with a placeholder", func(t *testing.T) {
		exists, resp, err := store.CheckAndSet(ctx, "pending", nil, time.Minute)
		if err != nil {
			t.Fatalf("CheckAndSet failed: %v", err)
		}
		if exists || resp != nil {
			t.Fatalf("expected fresh key, got exists=%v resp=%s", exists, resp)
		}

		got, err := client.Get(ctx, store.prefix+"pending").Result()
		if err != nil || got != processingMarker {
			t.Fatalf("expected placeholder lock, got val=%q err=%v", got, err)
		}
	})

	t.Run("seen key replays the stored response", func(t *testing.T) {
		if err := client.Set(ctx, store.prefix+"seen", "cached", time.Minute).Err(); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		exists, resp, err := store.CheckAndSet(ctx, "seen", nil, time.Minute)
		if err != nil {
			t.Fatalf("CheckAndSet failed: %v", err)
		}
		if !exists || string(resp) != "cached" {
			t.Fatalf("expected replay, got exists=%v resp=%s", exists, resp)
		}
	})

	t.Run("lock expires with the ttl", func(t *testing.T) {
		if _, _, err := store.CheckAndSet(ctx, "short", nil, time.Second); err != nil {
			t.Fatalf("CheckAndSet failed: %v", err)
		}

		srv.FastForward(2 * time.Second)

		exists, _, err := store.CheckAndSet(ctx, "short", nil, time.Second)
		if err != nil {
			t.Fatalf("CheckAndSet failed: %v", err)
		}
		if exists {
			t.Fatal("expected lock to expire after ttl")
		}
	})
}

func TestIdempotencyStoreUpdate(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if err := store.Update(ctx, "complete", []byte("done"), time.Minute); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	exists, resp, err := store.CheckAndSet(ctx, "complete", nil, time.Minute)
	if err != nil {
		t.Fatalf("CheckAndSet failed: %v", err)
	}
	if !exists || string(resp) != "done" {
		t.Fatalf("expected stored response, got exists=%v resp=%s", exists, resp)
	}
}
