package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// settingsID is the reserved key of the singleton settings row.
const settingsID = "app-settings"

// GetSettings returns the stored settings, or the defaults when none have
// been saved yet. The defaults are not persisted by reading them.
func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	if err := s.ready(); err != nil {
		return models.Settings{}, err
	}

	query := `SELECT theme, language, auto_save, onboarding_completed FROM settings WHERE id=?`
	var settings models.Settings
	err := s.db.QueryRowContext(ctx, query, settingsID).Scan(&settings.Theme,
		&settings.Language, &settings.AutoSave, &settings.OnboardingCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings upserts the singleton row, overwriting any previous value.
func (s *Store) UpdateSettings(ctx context.Context, settings models.Settings) error {
	if err := s.ready(); err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO settings (id, theme, language, auto_save,
			  onboarding_completed) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, settingsID, settings.Theme, settings.Language,
		settings.AutoSave, settings.OnboardingCompleted)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
