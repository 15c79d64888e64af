package backup

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/pkg/models"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Applications: []models.Application{
			{
				ID:              "app-1",
				JobTitle:        "Développeur Full Stack",
				Company:         "TechCorp",
				Status:          models.StatusSent,
				ApplicationDate: "2025-01-15",
				Notes:           "Candidature envoyée via LinkedIn.\nRelance prévue.",
				Tags:            []string{"Tech", "Remote"},
				CreatedAt:       "2025-01-15T09:00:00Z",
				UpdatedAt:       "2025-01-15T09:00:00Z",
			},
		},
		Tasks: []models.Task{
			{ID: "task-1", Title: "Relancer TechCorp", DueDate: "2025-01-22", ApplicationID: "app-1", CreatedAt: "2025-01-15T09:00:00Z"},
		},
		Notes: []models.Note{
			{ID: "note-1", Title: "Conseils", Content: "Personnaliser chaque lettre", Tags: []string{"Astuces"}, CreatedAt: "2025-01-15T09:00:00Z", UpdatedAt: "2025-01-15T09:00:00Z"},
		},
	}
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	data, err := MarshalJSON(snap)
	require.NoError(t, err)

	// Keys must stay camelCase so exports restore into the same shape
	assert.Contains(t, string(data), `"jobTitle"`)
	assert.Contains(t, string(data), `"applicationDate"`)
	assert.Contains(t, string(data), `"applicationId"`)

	restored, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, snap, restored)
}

func TestMarshalCSV(t *testing.T) {
	snap := sampleSnapshot()

	out := string(MarshalCSV(snap, i18n.FR))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Poste,Entreprise,Statut,Date,Notes,Tags", lines[0])
	assert.Contains(t, lines[1], `"Développeur Full Stack"`)
	// Newlines in notes are flattened to spaces
	assert.Contains(t, lines[1], `"Candidature envoyée via LinkedIn. Relance prévue."`)
	assert.Contains(t, lines[1], `"Tech; Remote"`)
}

func TestMarshalCSVEnglishHeaders(t *testing.T) {
	out := string(MarshalCSV(&models.Snapshot{}, i18n.EN))
	assert.Equal(t, "Job Title,Company,Status,Date,Notes,Tags", out)
}

func TestMarshalCSVEscapesQuotes(t *testing.T) {
	snap := &models.Snapshot{
		Applications: []models.Application{
			{JobTitle: `Chef de projet "digital"`, Status: models.StatusToApply},
		},
	}

	out := string(MarshalCSV(snap, i18n.EN))
	assert.Contains(t, out, `"Chef de projet ""digital"""`)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "jobtrackr-export-2025-03-09.json", Filename("json", now))
	assert.Equal(t, "jobtrackr-export-2025-03-09.csv", Filename("csv", now))
}

func TestParseRejectsNonObject(t *testing.T) {
	for _, payload := range []string{`[1,2,3]`, `"hello"`, `not json at all`} {
		_, err := Parse([]byte(payload))
		assert.ErrorIs(t, err, ErrInvalidFormat, "payload: %s", payload)
	}
}

func TestParseRejectsObjectWithoutArrays(t *testing.T) {
	_, err := Parse([]byte(`{"settings": {"theme": "dark"}}`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseRejectsNonArrayKey(t *testing.T) {
	_, err := Parse([]byte(`{"applications": {"id": "app-1"}}`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseAcceptsPartialPayload(t *testing.T) {
	snap, err := Parse([]byte(`{"notes": []}`))
	require.NoError(t, err)
	assert.Empty(t, snap.Applications)
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Notes)
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	payload := map[string]any{
		"applications": []any{},
		"tasks":        []any{},
		"exportedAt":   "2025-01-01T00:00:00Z",
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	_, err = Parse(data)
	assert.NoError(t, err)
}
