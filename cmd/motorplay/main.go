// Package main is the interactive motor playground.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-motor/internal/config"
	"github.com/Faultbox/midgard-motor/internal/game"
	"github.com/Faultbox/midgard-motor/internal/game/scenario"
	"github.com/Faultbox/midgard-motor/internal/logger"
)

//go:embed arena.yaml
var arena []byte

var flagScenario = flag.String("scenario", "", "Scenario file whose scene and spawn to play in")

func main() {
	// Parse CLI flags first
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

	logger.Info("=== Midgard Motor ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	var sc *scenario.Scenario
	if *flagScenario != "" {
		sc, err = scenario.Load(*flagScenario, cfg.Motor)
	} else {
		sc, err = scenario.Parse(arena, cfg.Motor)
	}
	if err != nil {
		logger.Error("failed to load scene", zap.Error(err))
		os.Exit(1)
	}
	// The scenario may carry its own tuning.
	cfg.Motor = sc.Motor

	g, err := game.New(cfg, sc, logger.Log)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
