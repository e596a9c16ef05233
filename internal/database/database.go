// Package database sets up/opens the run-history database.
package database

import (
	"database/sql"
	"fmt"
	"os"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/logger"

	// Package sqlite3 provides interface to SQLite3 databases.
	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
)

// Database holds an open history database.
type Database struct {
	DB *sql.DB
}

// InitDB opens (creating if needed) the database at path and initializes its tables.
func InitDB(path string) (d *Database, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, consts.PermsHistoryDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create database file %q: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close database file %q: %w", path, err)
		}
	}

	d = new(Database)
	d.DB, err = sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	// Enable foreign keys
	if _, err := d.DB.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		d.closeOnError()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Allow SQLite to wait for locks (in milliseconds)
	if _, err := d.DB.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		d.closeOnError()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	if err := d.initTables(); err != nil {
		d.closeOnError()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.DB.Close()
}

// initTables initializes the SQL tables.
func (d *Database) initTables() (err error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Pl.E("transaction rollback failed after original error %v: %v", err, rbErr)
			}
		}
	}()

	if err := initRunsTable(tx); err != nil {
		return err
	}
	if err := initTrackResultsTable(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Database) closeOnError() {
	if err := d.DB.Close(); err != nil {
		logger.Pl.E("failed to close database: %v", err)
	}
}
