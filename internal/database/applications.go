package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// ListApplications returns every application. Order is unspecified;
// callers sort by whatever field they need.
func (s *Store) ListApplications(ctx context.Context) ([]models.Application, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query := `SELECT id, job_title, company, status, application_date, notes, tags,
			  created_at, updated_at FROM applications`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		var app models.Application
		var tags string
		err := rows.Scan(&app.ID, &app.JobTitle, &app.Company, &app.Status,
			&app.ApplicationDate, &app.Notes, &tags, &app.CreatedAt, &app.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		if app.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	slog.Debug("listed applications", "count", len(apps))
	return apps, nil
}

// AddApplication inserts a new application. Fails with ErrDuplicateID if the
// id is already present; it is never silently upgraded to an update.
func (s *Store) AddApplication(ctx context.Context, app models.Application) error {
	if err := s.ready(); err != nil {
		return err
	}

	tags, err := encodeTags(app.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO applications (id, job_title, company, status, application_date,
			  notes, tags, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, app.ID, app.JobTitle, app.Company, app.Status,
		app.ApplicationDate, app.Notes, tags, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return asDuplicate(err, "applications", app.ID)
	}
	return nil
}

// UpdateApplication upserts the full record at app.ID. The caller is
// responsible for preserving CreatedAt and refreshing UpdatedAt.
func (s *Store) UpdateApplication(ctx context.Context, app models.Application) error {
	if err := s.ready(); err != nil {
		return err
	}

	tags, err := encodeTags(app.Tags)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO applications (id, job_title, company, status,
			  application_date, notes, tags, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, app.ID, app.JobTitle, app.Company, app.Status,
		app.ApplicationDate, app.Notes, tags, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update application %q: %w", app.ID, err)
	}
	return nil
}

// DeleteApplication removes the record at id. Deleting an absent id is a
// no-op success. Tasks referencing the application are left untouched.
func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM applications WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete application %q: %w", id, err)
	}
	return nil
}
