package database

import (
	"database/sql"
	"fmt"
)

// initRunsTable initializes the runs table.
func initRunsTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        playlist_url TEXT NOT NULL,
        site TEXT NOT NULL DEFAULT '',
        download_error TEXT NOT NULL DEFAULT '',
        scan_error TEXT NOT NULL DEFAULT '',
        succeeded INTEGER NOT NULL DEFAULT 0,
        failed INTEGER NOT NULL DEFAULT 0,
        skipped INTEGER NOT NULL DEFAULT 0,
        started_at TIMESTAMP,
        finished_at TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_runs_playlist_url ON runs(playlist_url);
    CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// initTrackResultsTable initializes the per-file results table.
func initTrackResultsTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS track_results (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
        source_file TEXT NOT NULL,
        artist TEXT NOT NULL DEFAULT '',
        title TEXT NOT NULL DEFAULT '',
        album TEXT NOT NULL DEFAULT '',
        output_path TEXT NOT NULL DEFAULT '',
        status TEXT NOT NULL,
        error TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_track_results_run ON track_results(run_id);
    CREATE INDEX IF NOT EXISTS idx_track_results_status ON track_results(status);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create track_results table: %w", err)
	}
	return nil
}
