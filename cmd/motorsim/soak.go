package main

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/game/scenario"
	"github.com/Faultbox/midgard-motor/internal/logger"
)

// soak runs n characters through sc concurrently. They share the one
// tuning record; every character has its own scene, body and motor.
func soak(ctx context.Context, sc *scenario.Scenario, n int, lc config.LoggingConfig) error {
	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return soakOne(gctx, sc, i, lc)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("soak passed",
		zap.String("name", sc.Name),
		zap.Int("characters", n),
		zap.Int("ticks", n*sc.Ticks),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func soakOne(ctx context.Context, sc *scenario.Scenario, id int, lc config.LoggingConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("scenario", sc.Name)
				scope.SetTag("character", fmt.Sprint(id))
			})
			hub.Recover(r)
			hub.Flush(5 * time.Second)
			err = fmt.Errorf("character %d panicked: %v", id, r)
		}
	}()

	log := logger.Named("motor", lc.Channel("motor")).With(zap.Int("character", id))
	r, err := scenario.NewRunner(sc, log)
	if err != nil {
		return err
	}
	frames, err := r.Run(ctx)
	if err != nil {
		return err
	}
	if err := sc.Check(frames); err != nil {
		return fmt.Errorf("character %d: %w", id, err)
	}
	return nil
}
