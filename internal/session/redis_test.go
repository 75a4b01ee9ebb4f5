package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Hour)
	sess := New(testUser())
	sess.AttachedCenter = "Escuela Central"

	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, sess.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != sess.UserID || got.Role != sess.Role || got.AttachedCenter != "Escuela Central" {
		t.Fatalf("got session %+v, want %+v", got, sess)
	}

	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound after delete", err)
	}
}

func TestRedisStore_SlidingExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)
	sess := New(testUser())

	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(45 * time.Second)
	if _, err := store.Get(ctx, sess.Token); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	// The read above must have reset the TTL.
	mr.FastForward(45 * time.Second)
	if _, err := store.Get(ctx, sess.Token); err != nil {
		t.Fatalf("get after sliding refresh: %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound for expired session", err)
	}
}

func TestRedisStore_UnknownToken(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	if _, err := store.Get(context.Background(), "deadbeef"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
