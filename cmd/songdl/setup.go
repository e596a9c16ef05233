package main

import (
	"os"

	"songdl/internal/database"
	"songdl/internal/database/repo"
	"songdl/internal/domain/consts"
	"songdl/internal/domain/keys"
	"songdl/internal/domain/logger"
	"songdl/internal/utils/logging"
	"songdl/internal/validation"

	"github.com/spf13/viper"
)

// setupLogging replaces the console logger with one at the configured level and log file.
func setupLogging() error {
	pl, err := logging.SetupLogging(logging.LoggingConfig{
		LogFilePath: viper.GetString(keys.LogFile),
		Console:     os.Stdout,
		ErrConsole:  os.Stderr,
		Program:     consts.ProgramName,
		Level:       validation.ValidateLoggingLevel(viper.GetInt(keys.DebugLevel)),
	})
	if err != nil {
		return err
	}
	logger.Pl = pl
	return nil
}

// openHistory opens the run-history database and returns its store.
func openHistory(path string) (*repo.HistoryStore, func(), error) {
	db, err := database.InitDB(path)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Pl.E("Failed to close database: %v", err)
		}
	}
	return repo.GetHistoryStore(db.DB), closeDB, nil
}
