package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("an interactive terminal is required")
	}

	logOut, err := openLog(settings.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := settings.Logger(logOut, "game")

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.EnableFocus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := loop.New(loop.Options{Seed: settings.Seed, Logger: logger})
	if err := loop.Run(ctx, g, newTerminalFrontend(s, g.Screen(), settings.KeyHold)); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog opens the log file for appending. The terminal belongs to the
// game, so logs are discarded when no file is configured.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
