package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/pkg/models"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  "Add, list, view, and remove free-form notes",
}

var addNoteCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Example: `  jobtrackr note add --content "Always personalize the cover letter" --title "Recruiter advice"
  jobtrackr note add --content "..." --tags "Interview,Tips"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		content, _ := cmd.Flags().GetString("content")
		tags, _ := cmd.Flags().GetString("tags")

		if content == "" {
			return fmt.Errorf("--content is required")
		}

		now := nowISO()
		note := models.Note{
			ID:        newID("note"),
			Title:     title,
			Content:   content,
			Tags:      splitTags(tags),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := application.Store.AddNote(cmd.Context(), note); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		cmd.Printf("✓ Note added (ID: %s)\n", note.ID)
		return nil
	},
}

var listNotesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		notes, err := application.Store.ListNotes(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch notes: %w", err)
		}

		loc := application.Locale(cmd.Context())
		if len(notes) == 0 {
			cmd.Println(i18n.T(loc).NoNotes)
			return nil
		}

		sort.Slice(notes, func(i, j int) bool {
			return notes[i].UpdatedAt > notes[j].UpdatedAt
		})

		cmd.Println(titleStyle.Render("Notes"))
		for _, note := range notes {
			title := note.Title
			if title == "" {
				title = i18n.T(loc).UntitledNote
			}
			cmd.Printf("\n%s\n", labelStyle.Render(title))
			preview := note.Content
			if len(preview) > 80 {
				preview = preview[:80] + "…"
			}
			cmd.Printf("  %s\n", valueStyle.Render(strings.ReplaceAll(preview, "\n", " ")))
			if len(note.Tags) > 0 {
				cmd.Printf("  %s %s\n", labelStyle.Render("Tags:"), strings.Join(note.Tags, ", "))
			}
			cmd.Printf("  %s %s\n", labelStyle.Render("ID:"), note.ID)
		}
		return nil
	},
}

var showNoteCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		notes, err := application.Store.ListNotes(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch notes: %w", err)
		}

		loc := application.Locale(cmd.Context())
		for _, note := range notes {
			if note.ID != args[0] {
				continue
			}
			title := note.Title
			if title == "" {
				title = i18n.T(loc).UntitledNote
			}
			cmd.Println(titleStyle.Render(title))
			cmd.Println(note.Content)
			if len(note.Tags) > 0 {
				cmd.Printf("\n%s %s\n", labelStyle.Render("Tags:"), strings.Join(note.Tags, ", "))
			}
			return nil
		}
		return fmt.Errorf("no note with id %q", args[0])
	},
}

var removeNoteCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		if err := application.Store.DeleteNote(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		cmd.Printf("✓ Note removed: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(addNoteCmd)
	noteCmd.AddCommand(listNotesCmd)
	noteCmd.AddCommand(showNoteCmd)
	noteCmd.AddCommand(removeNoteCmd)

	addNoteCmd.Flags().String("title", "", "Note title (optional)")
	addNoteCmd.Flags().String("content", "", "Note content")
	addNoteCmd.Flags().String("tags", "", "Comma-separated tags")
}
