package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/config"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/plugin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/replay"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// run replays the games.log named by the first argument, or stdin when
// there is none or it is "-", and prints the resulting rcon commands.
func run(ctx context.Context, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	cfg, err := config.LoadPowerAdmin(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if env.LogLevel != "" {
		level = env.LogLevel
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})))

	loc, err := time.LoadLocation(env.TimeZone)
	if err != nil {
		return fmt.Errorf("loading time zone %q: %w", env.TimeZone, err)
	}

	input, err := openInput(args)
	if err != nil {
		return err
	}
	defer input.Close()

	clock := replay.NewClock(time.Now().In(loc))
	cons := console.NewRcon(newCommandWriter(os.Stdout), clock.Now, loc)
	roster := replay.NewRoster(cons, env.ReplayLevel)

	p, err := plugin.New(env.Game, plugin.Deps{
		Console: cons,
		Clients: roster,
		Config:  cfg,
	})
	if err != nil {
		return fmt.Errorf("creating plugin: %w", err)
	}

	handler := admin.NewHandler(cons)
	if err := p.RegisterCommands(handler); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}

	slog.Info("poweradminurt started",
		"game", p.Game(),
		"config", env.ConfigPath,
		"commands", handler.CommandCount(),
		"radio_spam_protection", cfg.RadioSpamProtection.Enable)

	host := replay.NewHost(p, handler, roster, clock)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		waitForSignal(gctx, cancel, syscall.SIGINT, syscall.SIGTERM)
		return nil
	})
	g.Go(func() error {
		// EOF ends the whole group, signal wait included.
		defer cancel()
		if err := host.Run(gctx, input); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	stats := host.Stats()
	slog.Info("replay finished",
		"lines", stats.Lines,
		"events", stats.Events,
		"commands", stats.Commands,
		"skipped", stats.Skipped)
	return nil
}

// waitForSignal calls cancel when one of sigs arrives. It returns when
// ctx is done.
func waitForSignal(ctx context.Context, cancel context.CancelFunc, sigs ...os.Signal) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig)
		cancel()
	case <-ctx.Done():
	}
}

// openInput opens the log named by args, or stdin. Host.Run closes it on
// shutdown so a read blocked on a quiet pipe returns.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return f, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
