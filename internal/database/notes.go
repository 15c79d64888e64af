package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// ListNotes returns every note in unspecified order.
func (s *Store) ListNotes(ctx context.Context) ([]models.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	query := `SELECT id, title, content, tags, created_at, updated_at FROM notes`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		var tags string
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &tags,
			&note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		if note.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	slog.Debug("listed notes", "count", len(notes))
	return notes, nil
}

// AddNote inserts a new note, failing with ErrDuplicateID on an existing id.
func (s *Store) AddNote(ctx context.Context, note models.Note) error {
	if err := s.ready(); err != nil {
		return err
	}

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO notes (id, title, content, tags, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, note.ID, note.Title, note.Content, tags,
		note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return asDuplicate(err, "notes", note.ID)
	}
	return nil
}

// UpdateNote upserts the full record at note.ID.
func (s *Store) UpdateNote(ctx context.Context, note models.Note) error {
	if err := s.ready(); err != nil {
		return err
	}

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO notes (id, title, content, tags, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query, note.ID, note.Title, note.Content, tags,
		note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update note %q: %w", note.ID, err)
	}
	return nil
}

// DeleteNote removes the record at id; absent ids are a no-op success.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete note %q: %w", id, err)
	}
	return nil
}
