package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/events"
)

// ErrQueueFull is returned when an event cannot be buffered.
var ErrQueueFull = errors.New("notification queue full")

// ErrStopped is returned for events published after Stop.
var ErrStopped = errors.New("notification worker stopped")

// Notifier delivers a single event.
type Notifier interface {
	Deliver(ctx context.Context, event events.Event) error
}

// NotificationWorker moves event delivery off the request path.
type NotificationWorker struct {
	notifier Notifier
	logger   *zap.Logger
	queue    chan events.Event

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// NewNotificationWorker creates a worker with the given queue size.
func NewNotificationWorker(notifier Notifier, logger *zap.Logger, buffer int) *NotificationWorker {
	if buffer <= 0 {
		buffer = 64
	}
	return &NotificationWorker{
		notifier: notifier,
		logger:   logger,
		queue:    make(chan events.Event, buffer),
	}
}

// Subscribe routes the given event types (all types when none are given) into the queue.
func (w *NotificationWorker) Subscribe(dispatcher events.Dispatcher, types ...events.EventType) {
	if len(types) == 0 {
		types = events.AllTypes()
	}
	for _, t := range types {
		dispatcher.Subscribe(t, w.enqueue)
	}
}

func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}
	select {
	case w.queue <- event:
		return nil
	default:
		w.logger.Warn("dropping notification", zap.String("event_type", string(event.Type)), zap.String("event_id", event.ID))
		return ErrQueueFull
	}
}

// Start consumes the queue until Stop is called. Delivery uses ctx, not the publisher's context.
func (w *NotificationWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for event := range w.queue {
			if err := w.notifier.Deliver(ctx, event); err != nil {
				w.logger.Error("notification delivery failed",
					zap.String("event_type", string(event.Type)),
					zap.String("event_id", event.ID),
					zap.Error(err))
			}
		}
	}()
}

// Stop closes the queue and waits for buffered events to drain.
func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.queue)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
