package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mattn/go-sqlite3"
)

// Store provides typed CRUD access to the four tables. The connection is
// injected once at startup; Store itself never opens or closes it.
type Store struct {
	db *sql.DB
}

// New wraps an open database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ready guards every operation against use before a connection is set.
func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return ErrNotInitialized
	}
	return nil
}

// asDuplicate maps a SQLite primary-key violation to ErrDuplicateID and
// passes every other error through.
func asDuplicate(err error, table, id string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		slog.Warn("duplicate id rejected", "table", table, "id", id)
		return fmt.Errorf("%w: %s %q", ErrDuplicateID, table, id)
	}
	return err
}

// encodeTags serializes a tag list for TEXT storage. nil becomes "[]" so
// exported records always carry an array.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}
