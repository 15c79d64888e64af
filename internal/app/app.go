package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobtrackr/jobtrackr/internal/config"
	"github.com/jobtrackr/jobtrackr/internal/database"
	"github.com/jobtrackr/jobtrackr/internal/i18n"
)

// App is the dependency container for the CLI application
type App struct {
	DB     *sql.DB
	Store  *database.Store
	Config *config.Config
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	dataDir := config.AppConfig.DataDir
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".jobtrackr")
	}

	db, err := database.Open(dataDir)
	if err != nil {
		return nil, err
	}

	return &App{
		DB:     db,
		Store:  database.New(db),
		Config: config.AppConfig,
	}, nil
}

// Locale resolves the display language: the stored settings win, the config
// file is the fallback before any settings have been saved.
func (a *App) Locale(ctx context.Context) i18n.Locale {
	settings, err := a.Store.GetSettings(ctx)
	if err != nil {
		return i18n.Match(a.Config.Language)
	}
	return i18n.Match(settings.Language)
}

// Close closes all resources
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
