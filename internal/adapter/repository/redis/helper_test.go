package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

// newTestRedisClient starts an in-process miniredis server and returns a
// client pointed at it. The server is returned too so tests can advance
// its clock with FastForward.
func newTestRedisClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)

	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, srv
}
