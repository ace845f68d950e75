// Package config provides per-request configuration sources for the two
// required secrets (API key and API secret).
//
// The core never reads ambient global state: handlers load a fresh
// videotoken.Config from a Source on every request and thread it into each
// operation explicitly.
package config

import (
	"context"
	"os"

	videotoken "github.com/chimerakang/videotoken-go"
)

// Source loads the current configuration. Implementations must be safe for
// concurrent use and must not cache on behalf of the caller.
type Source interface {
	// Load returns the current configuration.
	Load(ctx context.Context) (videotoken.Config, error)
}

// Env reads STREAM_API_KEY and STREAM_API_SECRET from the process
// environment on every Load, so secret rotation takes effect without a
// restart.
type Env struct{}

// compile-time checks
var (
	_ Source = Env{}
	_ Source = Static{}
)

// FromEnv returns an environment-backed Source.
func FromEnv() Env { return Env{} }

// Load reads the secrets from the environment.
func (Env) Load(_ context.Context) (videotoken.Config, error) {
	return videotoken.Config{
		APIKey:    os.Getenv(videotoken.EnvAPIKey),
		APISecret: os.Getenv(videotoken.EnvAPISecret),
	}, nil
}

// Static is a fixed-value Source for tests and explicit wiring.
type Static struct {
	Config videotoken.Config
}

// Load returns the fixed configuration.
func (s Static) Load(_ context.Context) (videotoken.Config, error) {
	return s.Config, nil
}
