// Package web parses club web command flags and starts the HTTP server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/cmd"
	server "github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/app"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr       string        `env:"GAMESMITHS_WEB_ADDR"     envDefault:":5000"`
	DBPath         string        `env:"GAMESMITHS_DB_PATH"      envDefault:"data/club.db"`
	JoinOpen       bool          `env:"GAMESMITHS_JOIN_OPEN"    envDefault:"true"`
	ArcadeInterval time.Duration `env:"GAMESMITHS_ARCADE_TICK"  envDefault:"16ms"`
	CORSOrigins    []string      `env:"GAMESMITHS_CORS_ORIGINS" envSeparator:","`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "club HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "club SQLite database path")
	fs.BoolVar(&cfg.JoinOpen, "join-open", cfg.JoinOpen, "accept new guild members")
	fs.DurationVar(&cfg.ArcadeInterval, "arcade-tick", cfg.ArcadeInterval, "arcade websocket frame interval")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the club web server until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		if err := server.Run(ctx, server.Config{
			HTTPAddr:       cfg.HTTPAddr,
			DBPath:         cfg.DBPath,
			JoinOpen:       cfg.JoinOpen,
			ArcadeInterval: cfg.ArcadeInterval,
			AllowedOrigins: cfg.CORSOrigins,
		}); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
