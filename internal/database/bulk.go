package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// ExportData reads the three data tables concurrently and returns them as
// one snapshot. Settings are excluded from export on purpose.
func (s *Store) ExportData(ctx context.Context) (*models.Snapshot, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var snap models.Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Applications, err = s.ListApplications(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Tasks, err = s.ListTasks(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Notes, err = s.ListNotes(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("export data: %w", err)
	}

	slog.Info("export completed", "applications", len(snap.Applications),
		"tasks", len(snap.Tasks), "notes", len(snap.Notes))
	return &snap, nil
}

// ImportData upserts every record in the snapshot, so re-importing the same
// file is a repeatable restore: existing ids are overwritten in place.
// Records are processed independently; a failure on one never aborts the
// rest. All failures are collected and returned after the whole payload has
// been processed.
func (s *Store) ImportData(ctx context.Context, snap *models.Snapshot) error {
	if err := s.ready(); err != nil {
		return err
	}

	var failures []error

	for _, app := range snap.Applications {
		if err := s.UpdateApplication(ctx, app); err != nil {
			slog.Warn("import: application failed", "id", app.ID, "error", err)
			failures = append(failures, err)
		}
	}
	for _, task := range snap.Tasks {
		if err := s.UpdateTask(ctx, task); err != nil {
			slog.Warn("import: task failed", "id", task.ID, "error", err)
			failures = append(failures, err)
		}
	}
	for _, note := range snap.Notes {
		if err := s.UpdateNote(ctx, note); err != nil {
			slog.Warn("import: note failed", "id", note.ID, "error", err)
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("import finished with %d failed records: %w",
			len(failures), errors.Join(failures...))
	}
	slog.Info("import completed", "applications", len(snap.Applications),
		"tasks", len(snap.Tasks), "notes", len(snap.Notes))
	return nil
}

// ClearAllData truncates applications, tasks, and notes. Settings are never
// touched. The three truncations are issued together so a failure on one
// table does not stop the others from being attempted.
func (s *Store) ClearAllData(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}

	// Plain group, no shared cancellation: all three truncations are issued
	// regardless of whether one of them fails.
	var g errgroup.Group
	for _, table := range []string{"applications", "tasks", "notes"} {
		table := table
		g.Go(func() error {
			if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("all data cleared")
	return nil
}
