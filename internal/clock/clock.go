// Package clock produces the periodic server-time ticks streamed to the dashboard.
package clock

import (
	"context"
	"time"
)

// TimeLayout renders wall-clock time as pt-BR toLocaleTimeString does.
const TimeLayout = "15:04:05"

// Tick is one clock reading.
type Tick struct {
	Seq   int       `json:"seq"`
	Time  time.Time `json:"time"`
	Label string    `json:"label"`
}

// NewTick builds a tick for t.
func NewTick(seq int, t time.Time) Tick {
	return Tick{Seq: seq, Time: t, Label: t.Format(TimeLayout)}
}

// Run emits a tick immediately and then once per interval. It stops after maxTicks
// ticks (unbounded when maxTicks <= 0), when ctx is done, or when emit fails.
func Run(ctx context.Context, interval time.Duration, maxTicks int, now func() time.Time, emit func(Tick) error) error {
	if interval <= 0 {
		interval = time.Second
	}
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for seq := 1; maxTicks <= 0 || seq <= maxTicks; seq++ {
		if seq > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(NewTick(seq, now())); err != nil {
			return err
		}
	}
	return nil
}
