// Package sample holds the demo dataset loaded by `jobtrackr seed`.
package sample

import "github.com/jobtrackr/jobtrackr/pkg/models"

// Snapshot returns a fresh copy of the demo data so callers can mutate it.
func Snapshot() *models.Snapshot {
	return &models.Snapshot{
		Applications: []models.Application{
			{
				ID:              "app-1",
				JobTitle:        "Développeur Full Stack",
				Company:         "TechCorp",
				Status:          models.StatusSent,
				ApplicationDate: "2025-10-10",
				Notes:           "Entretien technique prévu la semaine prochaine. Stack: React, Node.js, PostgreSQL",
				Tags:            []string{"Tech", "Remote"},
				CreatedAt:       "2025-10-10T10:00:00Z",
				UpdatedAt:       "2025-10-10T10:00:00Z",
			},
			{
				ID:              "app-2",
				JobTitle:        "Product Manager",
				Company:         "StartupXYZ",
				Status:          models.StatusInterview,
				ApplicationDate: "2025-10-08",
				Notes:           "Très bonne culture d'entreprise. Salaire négociable.",
				Tags:            []string{"Management", "Startup"},
				CreatedAt:       "2025-10-08T10:00:00Z",
				UpdatedAt:       "2025-10-15T10:00:00Z",
			},
			{
				ID:              "app-3",
				JobTitle:        "UX/UI Designer",
				Company:         "DesignStudio",
				Status:          models.StatusToApply,
				ApplicationDate: "2025-10-17",
				Notes:           "Portfolio à préparer. Candidature spontanée.",
				Tags:            []string{"Design", "Créatif"},
				CreatedAt:       "2025-10-17T10:00:00Z",
				UpdatedAt:       "2025-10-17T10:00:00Z",
			},
			{
				ID:              "app-4",
				JobTitle:        "Data Scientist",
				Company:         "BigData Inc",
				Status:          models.StatusFollowedUp,
				ApplicationDate: "2025-09-28",
				Notes:           "Relancé par email le 10 octobre. En attente de réponse.",
				Tags:            []string{"Data", "AI"},
				CreatedAt:       "2025-09-28T10:00:00Z",
				UpdatedAt:       "2025-10-10T10:00:00Z",
			},
			{
				ID:              "app-5",
				JobTitle:        "DevOps Engineer",
				Company:         "CloudSolutions",
				Status:          models.StatusOffer,
				ApplicationDate: "2025-09-20",
				Notes:           "Offre reçue: 55k€ + télétravail 3j/semaine. À négocier.",
				Tags:            []string{"DevOps", "Cloud"},
				CreatedAt:       "2025-09-20T10:00:00Z",
				UpdatedAt:       "2025-10-15T10:00:00Z",
			},
			{
				ID:              "app-6",
				JobTitle:        "Frontend Developer",
				Company:         "WebAgency",
				Status:          models.StatusRejected,
				ApplicationDate: "2025-09-15",
				Notes:           "Profil non retenu. Manque d'expérience en Vue.js.",
				Tags:            []string{"Frontend"},
				CreatedAt:       "2025-09-15T10:00:00Z",
				UpdatedAt:       "2025-09-25T10:00:00Z",
			},
		},
		Tasks: []models.Task{
			{
				ID:            "task-1",
				Title:         "Relancer TechCorp",
				Description:   "Envoyer un email de suivi concernant l'entretien technique",
				DueDate:       "2025-10-20",
				Completed:     false,
				ApplicationID: "app-1",
				CreatedAt:     "2025-10-17T10:00:00Z",
			},
			{
				ID:            "task-2",
				Title:         "Préparer portfolio",
				Description:   "Mettre à jour le portfolio avec les derniers projets pour DesignStudio",
				DueDate:       "2025-10-18",
				Completed:     false,
				ApplicationID: "app-3",
				CreatedAt:     "2025-10-17T10:00:00Z",
			},
			{
				ID:            "task-3",
				Title:         "Répondre à l'offre CloudSolutions",
				Description:   "Négocier le salaire et les conditions de télétravail",
				DueDate:       "2025-10-19",
				Completed:     false,
				ApplicationID: "app-5",
				CreatedAt:     "2025-10-16T10:00:00Z",
			},
		},
		Notes: []models.Note{
			{
				ID:        "note-1",
				Title:     "Compétences à améliorer",
				Content:   "Après plusieurs entretiens, j'ai remarqué que Vue.js et TypeScript sont très demandés. Je devrais suivre une formation en ligne ce mois-ci.",
				Tags:      []string{"Développement", "Formation"},
				CreatedAt: "2025-10-15T10:00:00Z",
				UpdatedAt: "2025-10-15T10:00:00Z",
			},
			{
				ID:        "note-2",
				Title:     "Conseils d'un recruteur",
				Content:   "Important: toujours personnaliser la lettre de motivation. Mentionner des projets concrets et des résultats chiffrés.",
				Tags:      []string{"Conseils", "CV"},
				CreatedAt: "2025-10-12T10:00:00Z",
				UpdatedAt: "2025-10-12T10:00:00Z",
			},
			{
				ID:        "note-3",
				Title:     "Questions à poser en entretien",
				Content:   "- Quelle est la stack technique?\n- Comment l'équipe est-elle organisée?\n- Quelles sont les opportunités d'évolution?\n- Politique de télétravail?",
				Tags:      []string{"Entretien", "Priorité haute"},
				CreatedAt: "2025-10-10T10:00:00Z",
				UpdatedAt: "2025-10-14T10:00:00Z",
			},
		},
	}
}
