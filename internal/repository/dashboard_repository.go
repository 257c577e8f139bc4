package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/domain"
)

const (
	seriesSales       = "sales"
	seriesPerformance = "performance"
)

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository builds the repository.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func (r *dashboardRepository) Get(ctx context.Context) (domain.Dashboard, error) {
	dashboard := domain.Dashboard{
		Stats:       []domain.StatCard{},
		Sales:       []int{},
		Performance: []int{},
		Activities:  []domain.Activity{},
	}

	rows, err := r.pool.Query(ctx, `SELECT icon, value, label, change, change_type, color FROM dashboard_stats ORDER BY seq`)
	if err != nil {
		return dashboard, err
	}
	for rows.Next() {
		var s domain.StatCard
		if err := rows.Scan(&s.Icon, &s.Value, &s.Label, &s.Change, &s.ChangeType, &s.Color); err != nil {
			rows.Close()
			return dashboard, err
		}
		dashboard.Stats = append(dashboard.Stats, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return dashboard, err
	}

	rows, err = r.pool.Query(ctx, `SELECT series, value FROM dashboard_series ORDER BY series, seq`)
	if err != nil {
		return dashboard, err
	}
	for rows.Next() {
		var series string
		var value int
		if err := rows.Scan(&series, &value); err != nil {
			rows.Close()
			return dashboard, err
		}
		switch series {
		case seriesSales:
			dashboard.Sales = append(dashboard.Sales, value)
		case seriesPerformance:
			dashboard.Performance = append(dashboard.Performance, value)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return dashboard, err
	}

	rows, err = r.pool.Query(ctx, `SELECT icon, title, description, time FROM dashboard_activities ORDER BY seq`)
	if err != nil {
		return dashboard, err
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.Icon, &a.Title, &a.Description, &a.Time); err != nil {
			return dashboard, err
		}
		dashboard.Activities = append(dashboard.Activities, a)
	}
	return dashboard, rows.Err()
}
