package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/repository"
	"github.com/idealiza/admin-service/internal/service"
)

func clockApp(streams context.Context, cfg config.ClockConfig) *fiber.App {
	svc := service.NewDashboardService(repository.NewMemoryStore().Dashboard, cfg)
	h := NewDashboardHandler(streams, svc, zap.NewNop())
	app := fiber.New()
	app.Get("/dashboard/clock", h.Clock)
	return app
}

func readClock(t *testing.T, app *fiber.App) string {
	t.Helper()
	type result struct {
		body string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/clock", nil), -1)
		if err != nil {
			done <- result{err: err}
			return
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		done <- result{body: string(raw), err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("clock request: %v", r.err)
		}
		return r.body
	case <-time.After(3 * time.Second):
		t.Fatalf("clock stream did not end")
		return ""
	}
}

func TestClockStreamEndsWhenStreamsAreCancelled(t *testing.T) {
	streams, cancel := context.WithCancel(context.Background())
	app := clockApp(streams, config.ClockConfig{TickIntervalMillis: 5, MaxTicks: 0})
	time.AfterFunc(50*time.Millisecond, cancel)

	body := readClock(t, app)
	if !strings.Contains(body, "event: tick") {
		t.Fatalf("expected at least one tick before cancellation, got %q", body)
	}
}

func TestClockStreamAfterShutdownSendsNothing(t *testing.T) {
	streams, cancel := context.WithCancel(context.Background())
	cancel()
	app := clockApp(streams, config.ClockConfig{TickIntervalMillis: 5, MaxTicks: 0})

	if body := readClock(t, app); strings.Contains(body, "event: tick") {
		t.Fatalf("expected no ticks after shutdown, got %q", body)
	}
}

func TestClockStreamStopsAtTickLimit(t *testing.T) {
	app := clockApp(context.Background(), config.ClockConfig{TickIntervalMillis: 1, MaxTicks: 3})

	if got := strings.Count(readClock(t, app), "event: tick"); got != 3 {
		t.Fatalf("expected 3 ticks, got %d", got)
	}
}
