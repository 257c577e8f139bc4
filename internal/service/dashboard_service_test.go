package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/idealiza/admin-service/internal/clock"
	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/domain"
)

type stubDashboardRepository struct {
	dashboard domain.Dashboard
	err       error
}

func (r stubDashboardRepository) Get(context.Context) (domain.Dashboard, error) {
	return r.dashboard, r.err
}

func TestDashboardGet(t *testing.T) {
	svc := NewDashboardService(memoryStore().Dashboard, config.ClockConfig{})
	view, err := svc.Get(context.Background())
	if err != nil || len(view.Stats) != 4 {
		t.Fatalf("unexpected dashboard %+v, %v", view, err)
	}
	if view.ServerTime.Label == "" {
		t.Fatalf("expected server time label")
	}
}

func TestDashboardReadsThroughRepository(t *testing.T) {
	repo := stubDashboardRepository{dashboard: domain.Dashboard{Sales: []int{1, 2, 3}}}
	svc := NewDashboardService(repo, config.ClockConfig{})
	view, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.Sales) != 3 || len(view.Stats) != 0 {
		t.Fatalf("dashboard not taken from repository: %+v", view)
	}

	svc = NewDashboardService(stubDashboardRepository{err: errors.New("connection refused")}, config.ClockConfig{})
	_, err = svc.Get(context.Background())
	assertCode(t, err, "INTERNAL_ERROR")
}

func TestDashboardClockStream(t *testing.T) {
	svc := NewDashboardService(memoryStore().Dashboard, config.ClockConfig{TickIntervalMillis: 1, MaxTicks: 2})

	var ticks []clock.Tick
	err := svc.StreamClock(context.Background(), func(tick clock.Tick) error {
		ticks = append(ticks, tick)
		return nil
	})
	if err != nil || len(ticks) != 2 {
		t.Fatalf("expected 2 ticks, got %d, %v", len(ticks), err)
	}
	if _, err := time.Parse(clock.TimeLayout, ticks[0].Label); err != nil {
		t.Fatalf("unexpected label %q", ticks[0].Label)
	}
}
