package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewClient(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	client, err := NewClient(ctx, "redis://"+srv.Addr())
	if err != nil {
		t.Fatalf("expected client, got error: %v", err)
	}
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestNewClientBadURL(t *testing.T) {
	if _, err := NewClient(context.Background(), "://nope"); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestNewClientUnreachableServer(t *testing.T) {
	srv := miniredis.RunT(t)
	url := "redis://" + srv.Addr()
	srv.Close()

	if _, err := NewClient(context.Background(), url); err == nil {
		t.Fatal("expected ping error when server is down")
	}
}
