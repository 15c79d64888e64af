// Package i18n holds the French and English string tables.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/jobtrackr/jobtrackr/pkg/models"
)

// Locale identifies a supported display language.
type Locale string

const (
	FR Locale = "fr"
	EN Locale = "en"
)

// matcher resolves arbitrary language tags against the supported set.
// French first: it is the application default.
var matcher = language.NewMatcher([]language.Tag{
	language.French,
	language.English,
})

// Match resolves a user-supplied language string ("en", "en-US", "fr-CA",
// ...) to a supported locale, defaulting to French.
func Match(lang string) Locale {
	tag, err := language.Parse(lang)
	if err != nil {
		return FR
	}
	_, index, _ := matcher.Match(tag)
	if index == 1 {
		return EN
	}
	return FR
}

var statusLabels = map[Locale]map[models.ApplicationStatus]string{
	FR: {
		models.StatusToApply:    "À postuler",
		models.StatusSent:       "Envoyée",
		models.StatusFollowedUp: "Relancée",
		models.StatusInterview:  "Entretien",
		models.StatusOffer:      "Offre reçue",
		models.StatusRejected:   "Rejetée",
	},
	EN: {
		models.StatusToApply:    "To Apply",
		models.StatusSent:       "Sent",
		models.StatusFollowedUp: "Followed Up",
		models.StatusInterview:  "Interview",
		models.StatusOffer:      "Offer Received",
		models.StatusRejected:   "Rejected",
	},
}

// StatusLabel returns the display label for a status. Unknown statuses fall
// back to the raw value so dangling data still renders.
func StatusLabel(loc Locale, status models.ApplicationStatus) string {
	if label, ok := statusLabels[loc][status]; ok {
		return label
	}
	return string(status)
}

var csvHeaders = map[Locale][]string{
	FR: {"Poste", "Entreprise", "Statut", "Date", "Notes", "Tags"},
	EN: {"Job Title", "Company", "Status", "Date", "Notes", "Tags"},
}

// CSVHeaders returns the localized header row of the applications CSV export.
func CSVHeaders(loc Locale) []string {
	if headers, ok := csvHeaders[loc]; ok {
		return headers
	}
	return csvHeaders[FR]
}

// Messages are the user-facing strings of the CLI.
type Messages struct {
	DataExported    string
	DataImported    string
	DataCleared     string
	InvalidFile     string
	NoApplications  string
	NoTasks         string
	NoNotes         string
	NoLinkedApp     string
	UntitledNote    string
	SampleDataAdded string
}

var messages = map[Locale]Messages{
	FR: {
		DataExported:    "Données exportées avec succès",
		DataImported:    "Données importées avec succès",
		DataCleared:     "Toutes les données ont été supprimées",
		InvalidFile:     "Fichier invalide",
		NoApplications:  "Aucune candidature pour le moment",
		NoTasks:         "Aucune tâche pour le moment",
		NoNotes:         "Aucune note pour le moment",
		NoLinkedApp:     "Aucune candidature liée",
		UntitledNote:    "Note sans titre",
		SampleDataAdded: "Données d'exemple chargées",
	},
	EN: {
		DataExported:    "Data exported successfully",
		DataImported:    "Data imported successfully",
		DataCleared:     "All data has been cleared",
		InvalidFile:     "Invalid file",
		NoApplications:  "No applications yet",
		NoTasks:         "No tasks yet",
		NoNotes:         "No notes yet",
		NoLinkedApp:     "No linked application",
		UntitledNote:    "Untitled note",
		SampleDataAdded: "Sample data loaded",
	},
}

// T returns the message table for a locale.
func T(loc Locale) Messages {
	if m, ok := messages[loc]; ok {
		return m
	}
	return messages[FR]
}
