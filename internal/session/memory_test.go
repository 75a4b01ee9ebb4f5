package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cagb07/gestor-centros-app/internal/domain/user"
)

func testUser() *user.User {
	return &user.User{ID: 7, Username: "operador1", Role: user.RoleOperator, FullName: "Ana Mora"}
}

func TestNew_PopulatesFromUser(t *testing.T) {
	sess := New(testUser())
	if len(sess.Token) != 32 {
		t.Fatalf("token length = %d, want 32", len(sess.Token))
	}
	if sess.UserID != 7 || sess.Username != "operador1" || sess.Role != user.RoleOperator {
		t.Fatalf("session fields not copied from user: %+v", sess)
	}
	if sess.AttachedCenter != "" {
		t.Fatalf("new session must start without an attached center")
	}
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	sess := New(testUser())

	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, sess.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != sess.UserID || got.Username != sess.Username {
		t.Fatalf("got session %+v, want %+v", got, sess)
	}

	// Get returns a copy; mutating it must not leak into the store.
	got.AttachedCenter = "Escuela Central"
	again, err := store.Get(ctx, sess.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.AttachedCenter != "" {
		t.Fatal("store entry mutated through a returned copy")
	}

	if err := store.Delete(ctx, sess.Token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound after delete", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)
	sess := New(testUser())
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := store.Get(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound for expired session", err)
	}
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	if _, err := store.Get(context.Background(), "deadbeef"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
