package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jobtrackr/jobtrackr/pkg/models"
	_ "github.com/mattn/go-sqlite3"
)

// setupStore creates a store backed by a temporary database
func setupStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return New(db)
}

func testApplication(id string) models.Application {
	return models.Application{
		ID:              id,
		JobTitle:        "Software Engineer",
		Company:         "Acme Inc",
		Status:          models.StatusSent,
		ApplicationDate: "2025-01-01",
		Notes:           "",
		Tags:            []string{},
		CreatedAt:       "2025-01-01T10:00:00Z",
		UpdatedAt:       "2025-01-01T10:00:00Z",
	}
}

// TestAddApplicationDuplicate verifies the hard uniqueness contract: a
// second add with the same id fails and leaves exactly one record behind.
func TestAddApplicationDuplicate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	app := testApplication("app-1")
	if err := store.AddApplication(ctx, app); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}

	dup := testApplication("app-1")
	dup.JobTitle = "Different Title"
	err := store.AddApplication(ctx, dup)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	apps, err := store.ListApplications(ctx)
	if err != nil {
		t.Fatalf("failed to list applications: %v", err)
	}
	if len(apps) != 1 {
		t.Errorf("expected 1 application, got %d", len(apps))
	}
	if apps[0].JobTitle != "Software Engineer" {
		t.Errorf("duplicate add must not overwrite: got title %q", apps[0].JobTitle)
	}
}

// TestUpdateUpsert verifies update inserts absent records and that repeating
// the same update leaves the table in the same observable state.
func TestUpdateUpsert(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	app := testApplication("app-1")
	app.Tags = []string{"Remote", "Tech"}

	// Update on an absent id inserts
	if err := store.UpdateApplication(ctx, app); err != nil {
		t.Fatalf("upsert into empty table failed: %v", err)
	}
	// Same value again: idempotent
	if err := store.UpdateApplication(ctx, app); err != nil {
		t.Fatalf("repeated upsert failed: %v", err)
	}

	apps, err := store.ListApplications(ctx)
	if err != nil {
		t.Fatalf("failed to list applications: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application after double upsert, got %d", len(apps))
	}
	if len(apps[0].Tags) != 2 || apps[0].Tags[0] != "Remote" {
		t.Errorf("tags did not round-trip: %v", apps[0].Tags)
	}
}

// TestDeleteIdempotent verifies deleting an absent id succeeds and changes
// nothing, twice in a row.
func TestDeleteIdempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.AddApplication(ctx, testApplication("app-1")); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.DeleteApplication(ctx, "no-such-id"); err != nil {
			t.Fatalf("delete of absent id should succeed, got %v", err)
		}
	}

	apps, _ := store.ListApplications(ctx)
	if len(apps) != 1 {
		t.Errorf("delete of absent id changed the table: %d records", len(apps))
	}

	for i := 0; i < 2; i++ {
		if err := store.DeleteApplication(ctx, "app-1"); err != nil {
			t.Fatalf("delete %d failed: %v", i+1, err)
		}
	}
	apps, _ = store.ListApplications(ctx)
	if len(apps) != 0 {
		t.Errorf("expected empty table after delete, got %d records", len(apps))
	}
}

// TestTableIsolation verifies mutations in one table never leak into others.
func TestTableIsolation(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	task := models.Task{ID: "task-1", Title: "Follow up", DueDate: "2025-01-05", CreatedAt: "2025-01-01T10:00:00Z"}
	note := models.Note{ID: "note-1", Content: "remember", Tags: []string{}, CreatedAt: "2025-01-01T10:00:00Z", UpdatedAt: "2025-01-01T10:00:00Z"}
	if err := store.AddTask(ctx, task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := store.AddNote(ctx, note); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if err := store.AddApplication(ctx, testApplication("app-1")); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}
	if err := store.DeleteApplication(ctx, "app-1"); err != nil {
		t.Fatalf("failed to delete application: %v", err)
	}

	tasks, _ := store.ListTasks(ctx)
	notes, _ := store.ListNotes(ctx)
	if len(tasks) != 1 || len(notes) != 1 {
		t.Errorf("application churn leaked into other tables: %d tasks, %d notes", len(tasks), len(notes))
	}
}

// TestSettingsDefault verifies a fresh store serves the documented defaults
// without persisting them.
func TestSettingsDefault(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		settings, err := store.GetSettings(ctx)
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		want := models.Settings{Theme: "light", Language: "fr", AutoSave: true, OnboardingCompleted: false}
		if settings != want {
			t.Errorf("read %d: expected defaults %+v, got %+v", i+1, want, settings)
		}
	}
}

// TestSettingsSingleton verifies repeated updates keep exactly one row.
func TestSettingsSingleton(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := models.Settings{Theme: "dark", Language: "en", AutoSave: false, OnboardingCompleted: true}
	second := models.Settings{Theme: "light", Language: "en", AutoSave: true, OnboardingCompleted: true}
	for _, s := range []models.Settings{first, second} {
		if err := store.UpdateSettings(ctx, s); err != nil {
			t.Fatalf("failed to update settings: %v", err)
		}
	}

	settings, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings != second {
		t.Errorf("expected %+v, got %+v", second, settings)
	}

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&count); err != nil {
		t.Fatalf("count settings rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 settings row, got %d", count)
	}
}

// TestExportImportRoundTrip verifies importData(exportData()) into an empty
// store reproduces the same records, independent of ordering.
func TestExportImportRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		app := testApplication(fmt.Sprintf("app-%d", i))
		app.Company = fmt.Sprintf("Company %d", i)
		app.Tags = []string{"Tech", fmt.Sprintf("T%d", i)}
		if err := store.AddApplication(ctx, app); err != nil {
			t.Fatalf("failed to add application %d: %v", i, err)
		}
	}
	task := models.Task{ID: "task-1", Title: "Follow up", Description: "email", DueDate: "2025-01-05",
		ApplicationID: "app-1", CreatedAt: "2025-01-01T10:00:00Z"}
	if err := store.AddTask(ctx, task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	note := models.Note{ID: "note-1", Title: "Advice", Content: "personalize", Tags: []string{"Tips"},
		CreatedAt: "2025-01-01T10:00:00Z", UpdatedAt: "2025-01-02T10:00:00Z"}
	if err := store.AddNote(ctx, note); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	snap, err := store.ExportData(ctx)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	// Restore into a fresh store
	restored := setupStore(t)
	if err := restored.ImportData(ctx, snap); err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	apps, _ := restored.ListApplications(ctx)
	if len(apps) != 3 {
		t.Fatalf("expected 3 applications after import, got %d", len(apps))
	}
	byID := map[string]models.Application{}
	for _, app := range apps {
		byID[app.ID] = app
	}
	for _, orig := range snap.Applications {
		got, ok := byID[orig.ID]
		if !ok {
			t.Fatalf("application %s missing after import", orig.ID)
		}
		if got.Company != orig.Company || len(got.Tags) != len(orig.Tags) {
			t.Errorf("application %s changed: %+v vs %+v", orig.ID, got, orig)
		}
	}

	tasks, _ := restored.ListTasks(ctx)
	if len(tasks) != 1 || tasks[0].ApplicationID != "app-1" {
		t.Errorf("task did not round-trip: %+v", tasks)
	}
	notes, _ := restored.ListNotes(ctx)
	if len(notes) != 1 || notes[0].Content != "personalize" {
		t.Errorf("note did not round-trip: %+v", notes)
	}
}

// TestImportOverwrites verifies re-importing existing ids upserts in place
// instead of failing on duplicates.
func TestImportOverwrites(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	app := testApplication("app-1")
	if err := store.AddApplication(ctx, app); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}

	app.Status = models.StatusInterview
	snap := &models.Snapshot{Applications: []models.Application{app}}
	if err := store.ImportData(ctx, snap); err != nil {
		t.Fatalf("re-import should not fail on existing ids: %v", err)
	}

	apps, _ := store.ListApplications(ctx)
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	if apps[0].Status != models.StatusInterview {
		t.Errorf("import did not overwrite: status %s", apps[0].Status)
	}
}

// TestClearPreservesSettings verifies clear empties the three data tables
// and leaves the settings singleton alone.
func TestClearPreservesSettings(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	saved := models.Settings{Theme: "dark", Language: "en", AutoSave: false, OnboardingCompleted: true}
	if err := store.UpdateSettings(ctx, saved); err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}
	if err := store.AddApplication(ctx, testApplication("app-1")); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}
	if err := store.AddTask(ctx, models.Task{ID: "task-1", Title: "t", CreatedAt: "2025-01-01T10:00:00Z"}); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := store.AddNote(ctx, models.Note{ID: "note-1", Content: "c", CreatedAt: "2025-01-01T10:00:00Z", UpdatedAt: "2025-01-01T10:00:00Z"}); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if err := store.ClearAllData(ctx); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	apps, _ := store.ListApplications(ctx)
	tasks, _ := store.ListTasks(ctx)
	notes, _ := store.ListNotes(ctx)
	if len(apps) != 0 || len(tasks) != 0 || len(notes) != 0 {
		t.Errorf("clear left data behind: %d apps, %d tasks, %d notes", len(apps), len(tasks), len(notes))
	}

	settings, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings != saved {
		t.Errorf("clear touched settings: %+v", settings)
	}
}

// TestApplicationLifecycle walks the add → list → update → delete scenario.
func TestApplicationLifecycle(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	app := models.Application{
		ID: "app-1", JobTitle: "X", Company: "Y", Status: models.StatusSent,
		ApplicationDate: "2025-01-01", Notes: "", Tags: []string{},
		CreatedAt: "2025-01-01T00:00:00Z", UpdatedAt: "2025-01-01T00:00:00Z",
	}
	if err := store.AddApplication(ctx, app); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	apps, err := store.ListApplications(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "app-1" {
		t.Fatalf("expected exactly the added record, got %+v", apps)
	}

	app.Status = models.StatusInterview
	app.UpdatedAt = "2025-01-02T00:00:00Z"
	if err := store.UpdateApplication(ctx, app); err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	apps, _ = store.ListApplications(ctx)
	if len(apps) != 1 {
		t.Fatalf("expected 1 record after update, got %d", len(apps))
	}
	if apps[0].Status != models.StatusInterview {
		t.Errorf("status not updated: %s", apps[0].Status)
	}
	if apps[0].CreatedAt != "2025-01-01T00:00:00Z" {
		t.Errorf("createdAt changed on update: %s", apps[0].CreatedAt)
	}

	if err := store.DeleteApplication(ctx, "app-1"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	apps, _ = store.ListApplications(ctx)
	if len(apps) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(apps))
	}
}

// TestDanglingTaskReference verifies deleting an application leaves linked
// tasks behind with their reference intact.
func TestDanglingTaskReference(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.AddApplication(ctx, testApplication("app-1")); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}
	task := models.Task{ID: "task-1", Title: "Follow up", ApplicationID: "app-1", CreatedAt: "2025-01-01T10:00:00Z"}
	if err := store.AddTask(ctx, task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if err := store.DeleteApplication(ctx, "app-1"); err != nil {
		t.Fatalf("failed to delete application: %v", err)
	}

	tasks, _ := store.ListTasks(ctx)
	if len(tasks) != 1 {
		t.Fatalf("task should survive its application, got %d tasks", len(tasks))
	}
	if tasks[0].ApplicationID != "app-1" {
		t.Errorf("dangling reference should be preserved, got %q", tasks[0].ApplicationID)
	}
}

// TestNotInitialized verifies every operation fails before a connection is set.
func TestNotInitialized(t *testing.T) {
	store := &Store{}
	ctx := context.Background()

	if _, err := store.ListApplications(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ListApplications: expected ErrNotInitialized, got %v", err)
	}
	if err := store.AddTask(ctx, models.Task{ID: "task-1"}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("AddTask: expected ErrNotInitialized, got %v", err)
	}
	if _, err := store.GetSettings(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetSettings: expected ErrNotInitialized, got %v", err)
	}
	if _, err := store.ExportData(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ExportData: expected ErrNotInitialized, got %v", err)
	}
	if err := store.ClearAllData(ctx); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ClearAllData: expected ErrNotInitialized, got %v", err)
	}
}

// TestMigrationsIdempotent verifies reopening an existing database is safe.
func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	store := New(db)
	ctx := context.Background()
	if err := store.AddApplication(ctx, testApplication("app-1")); err != nil {
		t.Fatalf("failed to add application: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	apps, err := New(reopened).ListApplications(ctx)
	if err != nil {
		t.Fatalf("failed to list after reopen: %v", err)
	}
	if len(apps) != 1 {
		t.Errorf("data lost across reopen: %d applications", len(apps))
	}
}

// BenchmarkAddApplication benchmarks insert throughput
func BenchmarkAddApplication(b *testing.B) {
	db, err := Open(b.TempDir())
	if err != nil {
		b.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()
	store := New(db)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		app := testApplication(fmt.Sprintf("app-%d", i))
		if err := store.AddApplication(ctx, app); err != nil {
			b.Fatal(err)
		}
	}
}
