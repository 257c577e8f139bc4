package persistence

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/config"
)

func TestNewRedisWithoutAddrIsDisabled(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{}, zap.NewNop())
	if r.Enabled() {
		t.Fatalf("expected disabled client")
	}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error on disabled client")
	}
	r.Close()
}

func TestNewPostgresWithoutDSNIsDisabled(t *testing.T) {
	p, err := NewPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Enabled() || p.PoolHandle() != nil {
		t.Fatalf("expected no pool")
	}
	if err := p.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error without pool")
	}
	p.Close()
}
