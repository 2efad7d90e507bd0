package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [ID]",
		Short: "Edit stage fields interactively",
		Long: `Open an interactive editor for a project's stage fields. Edits are
saved automatically after a short pause in typing; pending saves are
flushed on exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			ctx := context.Background()

			var projectID string
			if len(args) == 1 {
				id, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				projectID = id
			} else {
				form := selectProjectForm(ctx, app, &projectID)
				if form == nil {
					return fmt.Errorf("no projects to edit")
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			m := newEditModel(app, p)
			defer m.saver.Stop()

			prog := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := prog.Run(); err != nil {
				return fmt.Errorf("running editor: %w", err)
			}

			// Persist anything still waiting on the debounce timer.
			m.saver.Flush()
			return nil
		},
	}
}
