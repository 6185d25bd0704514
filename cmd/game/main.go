package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal is in raw mode while playing, so logs only go to a file.
	logger, closeLog, err := openLogger(config.GetEnv("PONG_LOG_FILE", ""), config.GetEnv("PONG_LOG_LEVEL", "info"))
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("local game", "ball", tuning.BallType)
	err = loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		Tuning: tuning,
		Logger: logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func openLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return config.NewLogger(io.Discard, level), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return config.NewLogger(f, level), func() { _ = f.Close() }, nil
}
