package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"boardingaction/internal/config"
	"boardingaction/internal/game"
	"boardingaction/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	watch := flag.Bool("watch", false, "reload the config when it changes")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*configPath) {
			_ = os.Chdir(execDir)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	logger.SetDefault(log)

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal("create game", zap.Error(err))
	}

	if *watch {
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Fatal("watch config", zap.String("path", *configPath), zap.Error(err))
		}
		defer func() { _ = w.Close() }()
		g.Reloads = w.Configs
		go func() {
			for err := range w.Errors {
				log.Warn("config reload failed", zap.Error(err))
			}
		}()
	}

	g.Run()
}

// loadConfig falls back to defaults when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}
