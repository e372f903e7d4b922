// Package main provides the map walker binary: it solves one puzzle input and
// prints the final score on stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/monkeymap/internal/config"
	"github.com/cory-johannsen/monkeymap/internal/observability"
	"github.com/cory-johannsen/monkeymap/internal/puzzle"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file; empty = defaults and environment only")
	inputPath := flag.String("input", "", "path to puzzle input; overrides simulation.input")
	trace := flag.Bool("trace", false, "log every tile step at debug level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *inputPath != "" {
		cfg.Simulation.Input = *inputPath
	}
	if *trace {
		cfg.Simulation.TraceTiles = true
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Simulation.Input == "" {
		logger.Fatal("no puzzle input: set -input or simulation.input")
	}

	text, err := puzzle.LoadFile(cfg.Simulation.Input, cfg.Simulation.MaxInputBytes)
	if err != nil {
		logger.Fatal("loading puzzle", zap.Error(err))
	}
	logger.Info("puzzle loaded",
		zap.String("input", cfg.Simulation.Input),
		zap.Int("bytes", len(text)),
	)

	runner := puzzle.NewRunner(logger, cfg.Simulation.TraceTiles)
	res, err := runner.Run(text)
	if err != nil {
		logger.Fatal("solving puzzle", zap.Error(err))
	}

	logger.Info("done",
		zap.String("run_id", res.RunID),
		zap.Duration("total", time.Since(start)),
	)
	fmt.Println(res.Score)
}
