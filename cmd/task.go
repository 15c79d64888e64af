package cmd

import (
	"fmt"
	"sort"

	"github.com/jobtrackr/jobtrackr/internal/i18n"
	"github.com/jobtrackr/jobtrackr/pkg/models"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks and reminders",
	Long:  "Add, list, complete, and remove tasks, optionally linked to an application",
}

var addTaskCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	Example: `  jobtrackr task add --title "Follow up with Tech Corp" --due 2025-11-01
  jobtrackr task add --title "Prepare portfolio" --application app-1a2b3c4d`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		due, _ := cmd.Flags().GetString("due")
		appID, _ := cmd.Flags().GetString("application")

		if title == "" {
			return fmt.Errorf("--title is required")
		}
		if due == "" {
			due = today()
		}

		task := models.Task{
			ID:            newID("task"),
			Title:         title,
			Description:   description,
			DueDate:       due,
			Completed:     false,
			ApplicationID: appID,
			CreatedAt:     nowISO(),
		}

		if err := application.Store.AddTask(cmd.Context(), task); err != nil {
			return fmt.Errorf("save task: %w", err)
		}
		cmd.Printf("✓ Task added: %s (ID: %s)\n", task.Title, task.ID)
		return nil
	},
}

var listTasksCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks, pending first, ordered by due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		tasks, err := application.Store.ListTasks(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch tasks: %w", err)
		}

		loc := application.Locale(cmd.Context())
		if len(tasks) == 0 {
			cmd.Println(i18n.T(loc).NoTasks)
			return nil
		}

		sort.Slice(tasks, func(i, j int) bool {
			if tasks[i].Completed != tasks[j].Completed {
				return !tasks[i].Completed
			}
			return tasks[i].DueDate < tasks[j].DueDate
		})

		// Resolve soft references; a dangling id renders as unlinked.
		apps, err := application.Store.ListApplications(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch applications: %w", err)
		}
		appNames := map[string]string{}
		for _, app := range apps {
			appNames[app.ID] = fmt.Sprintf("%s – %s", app.JobTitle, app.Company)
		}

		cmd.Println(titleStyle.Render("Tasks"))
		for _, task := range tasks {
			marker := "[ ]"
			title := task.Title
			if task.Completed {
				marker = "[x]"
				title = doneStyle.Render(title)
			}
			cmd.Printf("\n%s %s\n", marker, title)
			cmd.Printf("    %s %s\n", labelStyle.Render("Due:"), task.DueDate)
			if task.Description != "" {
				cmd.Printf("    %s\n", valueStyle.Render(task.Description))
			}
			if task.ApplicationID != "" {
				linked, ok := appNames[task.ApplicationID]
				if !ok {
					linked = i18n.T(loc).NoLinkedApp
				}
				cmd.Printf("    %s %s\n", labelStyle.Render("Application:"), linked)
			}
			cmd.Printf("    %s %s\n", labelStyle.Render("ID:"), task.ID)
		}
		return nil
	},
}

var doneTaskCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		tasks, err := application.Store.ListTasks(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch tasks: %w", err)
		}

		for _, task := range tasks {
			if task.ID != args[0] {
				continue
			}
			task.Completed = !task.Completed
			if err := application.Store.UpdateTask(cmd.Context(), task); err != nil {
				return fmt.Errorf("update task: %w", err)
			}
			state := "pending"
			if task.Completed {
				state = "completed"
			}
			cmd.Printf("✓ Task %s: %s\n", state, task.Title)
			return nil
		}
		return fmt.Errorf("no task with id %q", args[0])
	},
}

var removeTaskCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := fromContext(cmd)
		if err != nil {
			return err
		}

		if err := application.Store.DeleteTask(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		cmd.Printf("✓ Task removed: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(addTaskCmd)
	taskCmd.AddCommand(listTasksCmd)
	taskCmd.AddCommand(doneTaskCmd)
	taskCmd.AddCommand(removeTaskCmd)

	addTaskCmd.Flags().String("title", "", "Task title")
	addTaskCmd.Flags().String("description", "", "Task description")
	addTaskCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, default today)")
	addTaskCmd.Flags().String("application", "", "Linked application id")
}
