// Package main is the headless scenario runner. It plays a scenario file
// against the reference scene, checks its expectations and optionally
// prints every frame, reruns on file changes or soaks many characters at
// once.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/game/scenario"
	"github.com/Faultbox/midgard-motor/internal/logger"
)

var (
	flagScenario  = flag.String("scenario", "", "Scenario file to run")
	flagTrace     = flag.Bool("trace", false, "Print every frame")
	flagWatch     = flag.Bool("watch", false, "Rerun when the config or scenario file changes")
	flagSoak      = flag.Int("soak", 0, "Run N characters of the scenario concurrently")
	flagStatsview = flag.String("statsview", "", "Serve a runtime dashboard on this address")
	flagSentryDSN = flag.String("sentry-dsn", "", "Report worker panics to Sentry")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagScenario == "" {
		fmt.Fprintln(os.Stderr, "usage: motorsim -scenario file.yaml [-trace] [-watch] [-soak N]")
		os.Exit(2)
	}

	if *flagSentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: *flagSentryDSN}); err != nil {
			logger.Error("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if *flagStatsview != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(*flagStatsview))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.Info("statsview listening", zap.String("addr", *flagStatsview))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *flagWatch {
		err = watch(ctx, cfg)
	} else {
		err = run(ctx, cfg)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("scenario failed", zap.String("scenario", *flagScenario), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run loads the scenario against cfg and plays it once, or soaks it.
func run(ctx context.Context, cfg *config.Config) error {
	sc, err := scenario.Load(*flagScenario, cfg.Motor)
	if err != nil {
		return err
	}
	if *flagSoak > 0 {
		return soak(ctx, sc, *flagSoak, cfg.Logging)
	}

	r, err := scenario.NewRunner(sc, logger.Named("motor", cfg.Logging.Channel("motor")))
	if err != nil {
		return err
	}
	started := time.Now()
	frames, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if *flagTrace {
		for _, f := range frames {
			fmt.Println(formatFrame(f))
		}
	}
	if err := sc.Check(frames); err != nil {
		return err
	}

	last := frames[len(frames)-1]
	logger.Info("scenario passed",
		zap.String("name", sc.Name),
		zap.Int("ticks", len(frames)),
		zap.Duration("elapsed", time.Since(started)),
		zap.Float32("x", last.Position.X),
		zap.Float32("y", last.Position.Y),
		zap.Float32("z", last.Position.Z),
	)
	return nil
}

// watch reruns on every content change of the scenario or config file.
// Each run spawns fresh motors; nothing running is mutated.
func watch(ctx context.Context, cfg *config.Config) error {
	files := []string{*flagScenario}
	if p := config.ConfigPath(); p != "" {
		files = append(files, p)
	}
	w, err := config.NewWatcher(files...)
	if err != nil {
		return err
	}
	defer w.Close()

	rerun := func() {
		if err := run(ctx, cfg); err != nil {
			logger.Warn("scenario failed", zap.Error(err))
		}
	}
	rerun()

	logger.Info("watching for changes", zap.Strings("files", files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			logger.Info("file changed", zap.String("path", path))
			if p := config.ConfigPath(); p != "" {
				reloaded, err := config.LoadFile(p)
				if err != nil {
					logger.Warn("config reload failed, keeping previous", zap.Error(err))
				} else {
					cfg = reloaded
				}
			}
			rerun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
