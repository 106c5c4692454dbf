// Package arcade parses terminal arcade flags and starts the tcell host.
package arcade

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/cmd"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/arcade"
)

// Config holds arcade command configuration.
type Config struct {
	APIBaseURL string        `env:"GAMESMITHS_ARCADE_API"  envDefault:"http://localhost:5000"`
	Tick       time.Duration `env:"GAMESMITHS_ARCADE_TICK" envDefault:"16ms"`
	LogPath    string        `env:"GAMESMITHS_ARCADE_LOG"  envDefault:"data/arcade.log"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "club web base URL for the registration count")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "frame interval")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "log file path; the terminal is owned by the arcade")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run plays the terminal arcade until the user quits or ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceArcade, func(ctx context.Context) error {
		if err := arcade.Run(ctx, arcade.Config{
			APIBaseURL: cfg.APIBaseURL,
			Tick:       cfg.Tick,
		}); err != nil {
			return fmt.Errorf("play arcade: %w", err)
		}
		return nil
	})
}
