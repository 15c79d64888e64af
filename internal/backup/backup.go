// Package backup serializes snapshots to the JSON and CSV export formats
// and validates import payloads before anything is written.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// ErrInvalidFormat means an import payload is not a JSON object containing
// at least one of the applications/tasks/notes arrays.
var ErrInvalidFormat = errors.New("invalid import format")

// MarshalJSON renders a snapshot as the indented JSON export file.
func MarshalJSON(snap *models.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// MarshalCSV renders the applications of a snapshot as CSV with localized
// headers. Notes have embedded newlines flattened to spaces, tags are joined
// with "; ", and every cell is quoted.
func MarshalCSV(snap *models.Snapshot, loc i18n.Locale) []byte {
	lines := []string{strings.Join(i18n.CSVHeaders(loc), ",")}
	for _, app := range snap.Applications {
		row := []string{
			app.JobTitle,
			app.Company,
			string(app.Status),
			app.ApplicationDate,
			strings.ReplaceAll(app.Notes, "\n", " "),
			strings.Join(app.Tags, "; "),
		}
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}

// Filename builds the dated export filename, e.g.
// jobtrackr-export-2025-01-01.json.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("jobtrackr-export-%s.%s", now.Format("2006-01-02"), ext)
}

// Parse validates and decodes an import payload. The payload must be a JSON
// object holding at least one of the three recognized arrays; any of them
// may be absent. Record contents are not validated here, only the shape.
func Parse(data []byte) (*models.Snapshot, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidFormat)
	}

	hasArray := false
	for _, key := range []string{"applications", "tasks", "notes"} {
		raw, ok := shape[key]
		if !ok {
			continue
		}
		var probe []json.RawMessage
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, fmt.Errorf("%w: %q is not an array", ErrInvalidFormat, key)
		}
		hasArray = true
	}
	if !hasArray {
		return nil, fmt.Errorf("%w: no applications, tasks, or notes arrays", ErrInvalidFormat)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &snap, nil
}
