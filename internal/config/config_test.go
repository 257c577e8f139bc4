package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_LOGIN_EMAIL", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Auth.LoginEmail != "teste@email.com" || cfg.Auth.LoginPassword != "123456" {
		t.Fatalf("unexpected default credentials %q / %q", cfg.Auth.LoginEmail, cfg.Auth.LoginPassword)
	}
	if cfg.App.Addr() != cfg.App.Host+":8080" {
		t.Fatalf("unexpected addr %s", cfg.App.Addr())
	}
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid REDIS_DB")
	}
}

func TestLoadFallsBackOnMalformedInts(t *testing.T) {
	t.Setenv("AUTH_SIGNUP_DELAY_MS", "soon")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Auth.SignupDelay() != time.Second {
		t.Fatalf("expected 1s fallback, got %s", cfg.Auth.SignupDelay())
	}
}

func TestDurations(t *testing.T) {
	if (AppConfig{}).RequestTimeout() != 0 {
		t.Fatalf("expected zero timeout when unset")
	}
	if (ClockConfig{}).TickInterval() != time.Second {
		t.Fatalf("expected one second default tick")
	}
	if (ClockConfig{TickIntervalMillis: 250}).TickInterval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick")
	}
}
