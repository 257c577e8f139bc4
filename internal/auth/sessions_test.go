package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/idealiza/admin-service/internal/domain"
)

func TestMemorySessionStoreLifecycle(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	session := domain.Session{ID: "s1", Email: "teste@email.com", ExpiresAt: time.Now().Add(time.Minute)}

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil || got.Email != session.Email {
		t.Fatalf("get: %+v, %v", got, err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemorySessionStoreExpires(t *testing.T) {
	store := NewMemorySessionStore().(*memorySessionStore)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_ = store.Save(context.Background(), domain.Session{ID: "s1", ExpiresAt: now.Add(time.Second)})
	if _, err := store.Get(context.Background(), "s1"); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}

	now = now.Add(time.Second)
	if _, err := store.Get(context.Background(), "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestPasswordMatches(t *testing.T) {
	hash, err := HashPassword("123456", 0)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if ok, err := PasswordMatches(hash, "123456"); !ok || err != nil {
		t.Fatalf("expected match, got %v, %v", ok, err)
	}
	if ok, err := PasswordMatches(hash, "654321"); ok || err != nil {
		t.Fatalf("expected mismatch without error, got %v, %v", ok, err)
	}
	if _, err := PasswordMatches("not-a-hash", "123456"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
