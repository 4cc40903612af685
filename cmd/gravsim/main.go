// Command gravsim runs the gravity room headless and logs a summary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"boardingaction/internal/config"
	"boardingaction/internal/logger"
	"boardingaction/internal/sim"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config (defaults when empty)")
	watch := flag.Bool("watch", false, "reload the config when it changes")
	ticks := flag.Int("ticks", 0, "ticks to run (0 uses sim.ticks)")
	realtime := flag.Bool("realtime", false, "pace ticks with the wall clock")
	flag.Parse()

	if err := run(*configPath, *watch, *ticks, *realtime); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, watch bool, ticks int, realtime bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if watch && configPath == "" {
		return errors.New("-watch needs -config")
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	logger.SetDefault(log)

	runner, err := sim.New(cfg, log.Named("sim"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	reloads := make(chan *config.Config, 1)

	if watch {
		w, err := config.Watch(configPath)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		group.Go(func() error {
			defer func() { _ = w.Close() }()
			for {
				select {
				case <-ctx.Done():
					return nil
				case cfg := <-w.Configs:
					select {
					case reloads <- cfg:
					default:
						log.Debug("dropping reload, previous one not applied yet")
					}
				case err := <-w.Errors:
					log.Warn("config reload failed", zap.Error(err))
				}
			}
		})
	}

	group.Go(func() error {
		defer cancel()
		_, err := runner.Run(ctx, sim.Options{Ticks: ticks, Realtime: realtime, Reloads: reloads})
		return err
	})

	return group.Wait()
}
