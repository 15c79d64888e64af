package models

// ApplicationStatus is the lifecycle stage of a job application.
type ApplicationStatus string

const (
	StatusToApply    ApplicationStatus = "to_apply"
	StatusSent       ApplicationStatus = "sent"
	StatusFollowedUp ApplicationStatus = "followed_up"
	StatusInterview  ApplicationStatus = "interview"
	StatusOffer      ApplicationStatus = "offer"
	StatusRejected   ApplicationStatus = "rejected"
)

// Statuses lists every status in board-column order.
var Statuses = []ApplicationStatus{
	StatusToApply,
	StatusSent,
	StatusFollowedUp,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application represents a tracked job application.
// Dates and timestamps are ISO 8601 strings so records round-trip through
// the JSON export format byte-for-byte.
type Application struct {
	ID              string            `json:"id"`
	JobTitle        string            `json:"jobTitle"`
	Company         string            `json:"company"`
	Status          ApplicationStatus `json:"status"`
	ApplicationDate string            `json:"applicationDate"`
	Notes           string            `json:"notes"`
	Tags            []string          `json:"tags"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

// Task is a to-do item, optionally linked to an application. The link is a
// soft reference: deleting the application leaves the task behind with a
// dangling ApplicationID, which callers must treat as a normal state.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DueDate       string `json:"dueDate"`
	Completed     bool   `json:"completed"`
	ApplicationID string `json:"applicationId,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// Note is a free-form note with tags.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// Settings is the singleton preferences record.
type Settings struct {
	Theme               string `json:"theme"`    // light, dark
	Language            string `json:"language"` // fr, en
	AutoSave            bool   `json:"autoSave"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() Settings {
	return Settings{
		Theme:               "light",
		Language:            "fr",
		AutoSave:            true,
		OnboardingCompleted: false,
	}
}

// Snapshot is a combined point-in-time read of the three data tables, used
// as the export/import payload. Settings are deliberately excluded.
type Snapshot struct {
	Applications []Application `json:"applications"`
	Tasks        []Task        `json:"tasks"`
	Notes        []Note        `json:"notes"`
}
