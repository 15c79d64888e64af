package database

import "errors"

// Sentinel errors for storage failures
var (
	// ErrStorageUnavailable means the database file could not be opened or
	// created. Fatal for the session; surfaced once at startup.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotInitialized means a Store method was called without an open
	// connection. Caller programming error.
	ErrNotInitialized = errors.New("database not initialized")

	// ErrDuplicateID means Add was called with an id that already exists.
	// Callers should fall back to Update or regenerate the id.
	ErrDuplicateID = errors.New("record id already exists")
)
