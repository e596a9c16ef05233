// Package main is the entrypoint of songdl.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"songdl/internal/app"
	"songdl/internal/cfg"
	"songdl/internal/domain/consts"
	"songdl/internal/domain/keys"
	"songdl/internal/domain/logger"

	"github.com/spf13/viper"
)

// main is the main entrypoint of the program (duh!).
func main() {
	os.Exit(run())
}

// run executes the program and returns the process exit status.
func run() int {
	startTime := time.Now()

	// ---- INIT COMMANDS ----
	if err := cfg.InitCommands(); err != nil {
		fmt.Fprintf(os.Stderr, "songdl exiting with error: %v\n", err)
		return 1
	}
	if err := cfg.Execute(); err != nil {
		return 1
	}
	if !viper.GetBool(keys.Execute) {
		return 0 // Help or a subcommand ran
	}

	// Setup logging
	if err := setupLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "songdl exiting with error: %v\n", err)
		return 1
	}
	defer func() {
		if err := logger.Pl.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	settings, err := cfg.LoadSettings()
	if err != nil {
		logger.Pl.E("songdl exiting with error: %v", err)
		return 1
	}

	logger.Pl.I("%s started at: %v", consts.ProgramName, startTime.Format(consts.TimeFormat))

	// create cancellable context for shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline := app.NewPipeline(settings)

	// Optional run history
	if settings.HistoryDB != "" {
		store, closeDB, err := openHistory(settings.HistoryDB)
		if err != nil {
			logger.Pl.E("Run history disabled: %v", err)
		} else {
			defer closeDB()
			pipeline.History = store
		}
	}

	// ---- RUN PROGRAM ----
	if _, err := pipeline.Run(ctx); err != nil {
		logger.Pl.E("Error: %v", err)
		return 1
	}

	endTime := time.Now()
	logger.Pl.I("%s finished at: %v", consts.ProgramName, endTime.Format(consts.TimeFormat))
	logger.Pl.I("Time elapsed: %.2f seconds", endTime.Sub(startTime).Seconds())
	return 0
}
