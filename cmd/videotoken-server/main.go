// Command videotoken-server exposes the token routes over HTTP.
//
// Secrets (STREAM_API_KEY, STREAM_API_SECRET) are read from the environment
// on every request; a .env file is loaded at startup when present. Server
// behavior (address, metrics, audit, CORS, log level) comes from an optional
// YAML file passed via -config.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cors "github.com/rs/cors/wrapper/gin"

	videotoken "github.com/chimerakang/videotoken-go"
	"github.com/chimerakang/videotoken-go/audit"
	"github.com/chimerakang/videotoken-go/config"
	"github.com/chimerakang/videotoken-go/httpapi"
	"github.com/chimerakang/videotoken-go/metrics"
	"github.com/chimerakang/videotoken-go/streamjwt"
)

type serverConfig struct {
	Addr     string `yaml:"addr"`
	Metrics  bool   `yaml:"metrics"`
	Audit    bool   `yaml:"audit"`
	CORS     bool   `yaml:"cors"`
	LogLevel string `yaml:"log_level"`
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Addr:     ":8080",
		Metrics:  true,
		Audit:    true,
		CORS:     true,
		LogLevel: "info",
	}
}

func loadServerConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfgPath := flag.String("config", "", "path to server config YAML")
	flag.Parse()

	// .env is optional; deployments normally set the environment directly.
	_ = godotenv.Load()

	cfg, err := loadServerConfig(*cfgPath)
	if err != nil {
		slog.Error("failed to load server config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	m := metrics.New(cfg.Metrics)

	var auditor *audit.Logger
	if cfg.Audit {
		auditor = audit.New(0, audit.WithStdoutHandler())
		defer auditor.Close()
	}

	source := config.FromEnv()
	svc := videotoken.NewService(streamjwt.Factory(), videotoken.WithLogger(logger))
	handler := httpapi.NewHandler(svc, source,
		httpapi.WithLogger(logger),
		httpapi.WithMetrics(m),
		httpapi.WithAudit(auditor),
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), httpapi.RequestID(), httpapi.Logging(logger))
	if cfg.CORS {
		router.Use(cors.AllowAll())
	}
	handler.Register(router)
	if cfg.Metrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Surface missing secrets early; every request re-checks anyway.
	if current, err := source.Load(context.Background()); err == nil {
		if status := videotoken.ValidateConfig(current); !status.Valid {
			logger.Warn("service not fully configured", "errors", status.Errors)
		}
	}

	logger.Info("listening", "addr", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
