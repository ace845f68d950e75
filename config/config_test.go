package config_test

import (
	"context"
	"testing"

	videotoken "github.com/chimerakang/videotoken-go"
	"github.com/chimerakang/videotoken-go/config"
)

func TestEnv_LoadReadsEnvironment(t *testing.T) {
	t.Setenv(videotoken.EnvAPIKey, "key123")
	t.Setenv(videotoken.EnvAPISecret, "secret456")

	cfg, err := config.FromEnv().Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "key123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "key123")
	}
	if cfg.APISecret != "secret456" {
		t.Errorf("APISecret = %q, want %q", cfg.APISecret, "secret456")
	}
}

func TestEnv_LoadReflectsRotation(t *testing.T) {
	source := config.FromEnv()

	t.Setenv(videotoken.EnvAPIKey, "key-old")
	t.Setenv(videotoken.EnvAPISecret, "secret456")
	cfg, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "key-old" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "key-old")
	}

	t.Setenv(videotoken.EnvAPIKey, "key-new")
	cfg, err = source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "key-new" {
		t.Errorf("APIKey = %q, want %q after rotation", cfg.APIKey, "key-new")
	}
}

func TestEnv_LoadMissingValues(t *testing.T) {
	t.Setenv(videotoken.EnvAPIKey, "")
	t.Setenv(videotoken.EnvAPISecret, "")

	cfg, err := config.FromEnv().Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if status := videotoken.ValidateConfig(cfg); status.Valid {
		t.Error("empty environment should not validate")
	}
}

func TestStatic_Load(t *testing.T) {
	source := config.Static{Config: videotoken.Config{APIKey: "key123", APISecret: "secret456"}}

	cfg, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "key123" || cfg.APISecret != "secret456" {
		t.Errorf("Load() = %+v, want the fixed config", cfg)
	}
}
