package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, KeyLastLocation); ok || err != nil {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, KeyLastLocation, `{"lat":45.46}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	v, ok, err := s.Get(ctx, KeyLastLocation)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if v != `{"lat":45.46}` {
		t.Errorf("unexpected value %q", v)
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStoreWithClient(client, zap.NewNop())
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, KeySettings); ok || err != nil {
		t.Fatalf("expected miss on empty store, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, KeySettings, `{"language":"it"}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	v, ok, err := s.Get(ctx, KeySettings)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if v != `{"language":"it"}` {
		t.Errorf("unexpected value %q", v)
	}

	// Keys are namespaced in Redis itself.
	if !mr.Exists("funweather:" + KeySettings) {
		t.Error("expected namespaced key in redis")
	}
}
