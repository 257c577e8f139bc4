package service

import (
	"context"
	"time"

	"github.com/idealiza/admin-service/internal/clock"
	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/repository"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// DashboardView is the dashboard with the server time it was rendered at.
type DashboardView struct {
	domain.Dashboard
	ServerTime clock.Tick `json:"server_time"`
}

// DashboardService serves the dashboard widgets and the clock stream.
type DashboardService struct {
	repo     repository.DashboardRepository
	interval time.Duration
	maxTicks int
	now      func() time.Time
}

// NewDashboardService builds the service.
func NewDashboardService(repo repository.DashboardRepository, cfg config.ClockConfig) *DashboardService {
	return &DashboardService{repo: repo, interval: cfg.TickInterval(), maxTicks: cfg.MaxTicks, now: time.Now}
}

// Get returns the dashboard widgets.
func (s *DashboardService) Get(ctx context.Context) (*DashboardView, error) {
	dashboard, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &DashboardView{Dashboard: dashboard, ServerTime: clock.NewTick(0, s.now())}, nil
}

// StreamClock emits server time until the stream limit, cancellation, or an emit failure.
func (s *DashboardService) StreamClock(ctx context.Context, emit func(clock.Tick) error) error {
	return clock.Run(ctx, s.interval, s.maxTicks, s.now, emit)
}
