// Package repo holds the database stores.
package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/logger"
	"songdl/internal/models"

	"github.com/Masterminds/squirrel"
)

// HistoryStore records and lists past runs.
type HistoryStore struct {
	DB *sql.DB
}

// GetHistoryStore returns a history store instance.
func GetHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{
		DB: db,
	}
}

// RecordRun stores the run summary and each of its per-file results, returning the run ID.
func (hs *HistoryStore) RecordRun(s *models.Summary) (runID int64, err error) {
	if s == nil {
		return 0, errors.New("summary is nil")
	}

	tx, err := hs.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Pl.E("transaction rollback failed after original error %v: %v", err, rbErr)
			}
		}
	}()

	ok, failed, skipped := s.Counts()
	res, err := squirrel.
		Insert(consts.DBRuns).
		Columns(
			consts.QRunPlaylistURL,
			consts.QRunSite,
			consts.QRunDownloadError,
			consts.QRunScanError,
			consts.QRunSucceeded,
			consts.QRunFailed,
			consts.QRunSkipped,
			consts.QRunStartedAt,
			consts.QRunFinishedAt,
		).
		Values(
			s.PlaylistURL,
			s.Site,
			errString(s.DownloadError),
			errString(s.ScanError),
			ok,
			failed,
			skipped,
			s.StartedAt,
			s.FinishedAt,
		).
		RunWith(tx).
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to insert run for %q: %w", s.PlaylistURL, err)
	}

	if runID, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, r := range s.Results {
		var artist, title, album string
		if r.Track != nil {
			artist, title, album = r.Track.Artist, r.Track.Title, r.Track.Album
		}

		if _, err = squirrel.
			Insert(consts.DBTrackResults).
			Columns(
				consts.QTrackRunID,
				consts.QTrackSourceFile,
				consts.QTrackArtist,
				consts.QTrackTitle,
				consts.QTrackAlbum,
				consts.QTrackOutputPath,
				consts.QTrackStatus,
				consts.QTrackError,
			).
			Values(
				runID,
				r.SourceFile,
				artist,
				title,
				album,
				r.OutputPath,
				string(r.Status),
				errString(r.Err),
			).
			RunWith(tx).
			Exec(); err != nil {
			return 0, fmt.Errorf("failed to insert result for %q: %w", r.SourceFile, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	logger.Pl.D(2, "Recorded run %d for %q with %d result(s)", runID, s.PlaylistURL, len(s.Results))
	return runID, nil
}

// ListRuns returns the most recent runs, newest first. A limit <= 0 returns all runs.
func (hs *HistoryStore) ListRuns(limit int) ([]*models.RunRecord, error) {
	query := squirrel.
		Select(
			consts.QRunID,
			consts.QRunPlaylistURL,
			consts.QRunSite,
			consts.QRunDownloadError,
			consts.QRunScanError,
			consts.QRunSucceeded,
			consts.QRunFailed,
			consts.QRunSkipped,
			consts.QRunStartedAt,
			consts.QRunFinishedAt,
		).
		From(consts.DBRuns).
		OrderBy(consts.QRunID + " DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.RunWith(hs.DB).Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Pl.E("Failed to close rows: %v", err)
		}
	}()

	var runs []*models.RunRecord
	for rows.Next() {
		var (
			r                 models.RunRecord
			started, finished sql.NullTime
		)
		if err := rows.Scan(
			&r.ID,
			&r.PlaylistURL,
			&r.Site,
			&r.DownloadError,
			&r.ScanError,
			&r.Succeeded,
			&r.Failed,
			&r.Skipped,
			&started,
			&finished,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = started.Time
		r.FinishedAt = finished.Time
		runs = append(runs, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// ListTrackResults returns the per-file results stored for a run, in processed order.
func (hs *HistoryStore) ListTrackResults(runID int64) ([]*models.TrackRecord, error) {
	rows, err := squirrel.
		Select(
			consts.QTrackID,
			consts.QTrackRunID,
			consts.QTrackSourceFile,
			consts.QTrackArtist,
			consts.QTrackTitle,
			consts.QTrackAlbum,
			consts.QTrackOutputPath,
			consts.QTrackStatus,
			consts.QTrackError,
		).
		From(consts.DBTrackResults).
		Where(squirrel.Eq{consts.QTrackRunID: runID}).
		OrderBy(consts.QTrackID).
		RunWith(hs.DB).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query results for run %d: %w", runID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Pl.E("Failed to close rows: %v", err)
		}
	}()

	var out []*models.TrackRecord
	for rows.Next() {
		var (
			t      models.TrackRecord
			status string
		)
		if err := rows.Scan(
			&t.ID,
			&t.RunID,
			&t.SourceFile,
			&t.Artist,
			&t.Title,
			&t.Album,
			&t.OutputPath,
			&status,
			&t.Error,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		t.Status = models.TrackStatus(status)
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}
	return out, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
