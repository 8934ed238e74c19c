package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "path to the YAML config (default ./rangeseek.yaml)")
	statePath := flag.String("state", StateFile, "file the bar selections are saved to")
	debug := flag.Bool("debug", false, "verbose/debug logging")
	flag.Parse()

	logger, logPath, err := setupLogging(*debug)
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	defer func() {
		if r := recover(); r != nil {
			logPanic(logger, r)
			os.Exit(1)
		}
	}()

	if err := run(logger, logPath, *configFile, *statePath); err != nil {
		logger.Errorw("Exiting with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.SugaredLogger, logPath, configFile, statePath string) error {
	cs := newConfigStore(configFile, logger, notifyDesktop)
	cfg, err := cs.load()
	if err != nil {
		notifyDesktop("Error loading configuration!", "Please check the logs for more details.")
		return fmt.Errorf("load config: %w", err)
	}
	cs.watch()

	store := newStateStore(statePath)
	saved, err := store.load()
	if err != nil {
		logger.Warnw("Ignoring saved state", "error", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g := newGame(ctx, cfg, logger, newDesktop(logger, logPath), saved, cs.subscribe())

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(g)

	if err := store.save(g.snapshot()); err != nil {
		logger.Warnw("Failed to save state", "path", statePath, "error", err)
	} else {
		logger.Infow("Saved state", "path", statePath)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
