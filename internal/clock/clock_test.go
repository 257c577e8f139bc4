package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 9, 5, 7, 0, time.UTC)
}

func TestRunStopsAfterMaxTicks(t *testing.T) {
	var ticks []Tick
	err := Run(context.Background(), time.Millisecond, 3, fixedNow, func(tick Tick) error {
		ticks = append(ticks, tick)
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(ticks) != 3 {
		t.Fatalf("expected 3 ticks, got %d", len(ticks))
	}
	for i, tick := range ticks {
		if tick.Seq != i+1 {
			t.Fatalf("tick %d has seq %d", i, tick.Seq)
		}
	}
	if ticks[0].Label != "09:05:07" {
		t.Fatalf("unexpected label %q", ticks[0].Label)
	}
}

func TestRunStopsOnEmitError(t *testing.T) {
	boom := errors.New("client gone")
	calls := 0
	err := Run(context.Background(), time.Millisecond, 0, fixedNow, func(Tick) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) || calls != 2 {
		t.Fatalf("expected stop on second emit, got %v after %d calls", err, calls)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Run(ctx, time.Hour, 0, fixedNow, func(Tick) error {
		calls++
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) || calls != 1 {
		t.Fatalf("expected cancellation after first tick, got %v after %d calls", err, calls)
	}
}
