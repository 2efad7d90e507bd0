package cli

import (
	"context"
	"fmt"

	"github.com/minsukang/stagegate/internal/cli/formatter"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectCompleteCmd(app),
		newProjectReopenCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, model string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to a form when no name was given on an
			// interactive terminal.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				form := projectAddForm(&name, &model)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("project name is required (use --name)")
			}

			p := &domain.Project{Name: name, ModelName: model}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&model, "model", "", "Model name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects, app.Registry))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details with per-stage field breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatProjectInspect(p, app.Registry))
			return nil
		},
	}
}

func newProjectCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a project completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetCompleted(ctx, projectID, true); err != nil {
				return err
			}
			fmt.Println("Project marked completed.")
			return nil
		},
	}
}

func newProjectReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Reopen a completed project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetCompleted(ctx, projectID, false); err != nil {
				return err
			}
			fmt.Println("Project reopened.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and its stage data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Println("Project removed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if not completed")

	return cmd
}
