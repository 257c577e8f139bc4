package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/events"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingNotifier) Deliver(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func TestWorkerDeliversPublishedEventsInOrder(t *testing.T) {
	notifier := &recordingNotifier{}
	w := NewNotificationWorker(notifier, zap.NewNop(), 8)
	d := events.NewInMemoryDispatcher()
	w.Subscribe(d)
	w.Start(context.Background())

	_ = d.Publish(context.Background(), events.New(events.EventReportRequested, "employees", "", nil))
	_ = d.Publish(context.Background(), events.New(events.EventUserLoggedIn, "u", "", nil))
	w.Stop()

	if len(notifier.events) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(notifier.events))
	}
	if notifier.events[0].Type != events.EventReportRequested || notifier.events[1].Type != events.EventUserLoggedIn {
		t.Fatalf("unexpected order %+v", notifier.events)
	}
}

func TestWorkerReportsFullQueueAndStop(t *testing.T) {
	w := NewNotificationWorker(&recordingNotifier{}, zap.NewNop(), 1)
	ev := events.New(events.EventDocumentRequested, "1", "", nil)

	if err := w.enqueue(context.Background(), ev); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := w.enqueue(context.Background(), ev); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	w.Stop()
	if err := w.enqueue(context.Background(), ev); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
