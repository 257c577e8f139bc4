package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/repository"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func newRecorder() (*recorder, events.Dispatcher) {
	r := &recorder{}
	d := events.NewInMemoryDispatcher()
	for _, t := range events.AllTypes() {
		d.Subscribe(t, func(_ context.Context, e events.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, e)
			return nil
		})
	}
	return r, d
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func memoryStore() repository.Store {
	return repository.NewMemoryStore()
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}

func assertCode(t *testing.T, err error, code string) *apperrors.DomainError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	de := apperrors.ToDomainError(err)
	if de.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, de.Code, de.Message)
	}
	return de
}
