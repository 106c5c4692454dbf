// Package main starts the terminal arcade.
//
// The terminal is owned by the arcade while it runs, so logs go to a file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	arcadecmd "github.com/AkshayRaj367/Game-Smiths-Club/internal/cmd/arcade"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/config"
)

func main() {
	cfg, err := arcadecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ARCADE] ")
	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := arcadecmd.Run(ctx, cfg); err != nil {
		log.Printf("arcade stopped: %v", err)
		config.Exitf("arcade stopped: %v", err)
	}
}
