package models_test

import (
	"errors"
	"testing"

	"songdl/internal/models"
)

func TestSummaryCounts(t *testing.T) {
	s := &models.Summary{
		Results: []*models.Result{
			{SourceFile: "a.m4a", Status: models.TrackOK},
			{SourceFile: "b.m4a", Status: models.TrackFailed, Err: errors.New("boom")},
			{SourceFile: "c.m4a", Status: models.TrackSkipped},
			{SourceFile: "d.m4a", Status: models.TrackOK},
		},
	}

	ok, failed, skipped := s.Counts()
	if ok != 2 || failed != 1 || skipped != 1 {
		t.Fatalf("expected 2/1/1, got %d/%d/%d", ok, failed, skipped)
	}

	notOK := s.Failed()
	if len(notOK) != 2 {
		t.Fatalf("expected 2 non-ok results, got %d", len(notOK))
	}
	if notOK[0].SourceFile != "b.m4a" || notOK[1].SourceFile != "c.m4a" {
		t.Fatalf("unexpected non-ok order: %q, %q", notOK[0].SourceFile, notOK[1].SourceFile)
	}
}
