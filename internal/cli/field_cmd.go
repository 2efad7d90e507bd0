package cli

import (
	"context"
	"fmt"

	"github.com/minsukang/stagegate/internal/cli/formatter"
	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/domain"
	"github.com/spf13/cobra"
)

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID STAGE FIELD VALUE",
		Short: "Set a stage field value",
		Long: `Set a stage field value. Validation is advisory: an out-of-order or
malformed date is stored anyway and the warning is printed alongside the
recomputed progress.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, stage, err := resolveTarget(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			result, err := app.Fields.UpdateField(ctx, contract.FieldUpdate{
				ProjectID: projectID,
				Stage:     stage,
				Field:     args[2],
				Value:     args[3],
			})
			if err != nil {
				return err
			}

			printFieldResult(result)
			return nil
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "toggle ID STAGE FIELD",
		Short: "Mark a stage field as executed (or not, with --off)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, stage, err := resolveTarget(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			result, err := app.Fields.SetExecuted(ctx, projectID, stage, args[2], !off)
			if err != nil {
				return err
			}

			printFieldResult(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Clear the executed flag instead of setting it")

	return cmd
}

func newNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note ID STAGE TEXT",
		Short: "Attach free-form notes to a stage",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, stage, err := resolveTarget(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			if err := app.Fields.SetNotes(ctx, projectID, stage, args[2]); err != nil {
				return err
			}

			fmt.Println("Notes saved.")
			return nil
		},
	}
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check ID STAGE FIELD VALUE",
		Short: "Validate a field value without saving it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, stage, err := resolveTarget(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			result, err := app.Fields.Check(ctx, contract.FieldUpdate{
				ProjectID: projectID,
				Stage:     stage,
				Field:     args[2],
				Value:     args[3],
			})
			if err != nil {
				return err
			}

			if result.Violation == nil {
				fmt.Println("OK")
			} else {
				fmt.Printf("%s %s\n", formatter.Bold("Warning:"), result.Violation.Message)
			}
			return nil
		},
	}
}

// resolveTarget resolves the project/stage argument pair shared by every
// field command.
func resolveTarget(ctx context.Context, app *App, projectArg, stageArg string) (string, domain.StageName, error) {
	projectID, err := resolveProjectID(ctx, app, projectArg)
	if err != nil {
		return "", "", err
	}
	stage, err := parseStageName(stageArg)
	if err != nil {
		return "", "", err
	}
	return projectID, stage, nil
}

func printFieldResult(result *contract.FieldUpdateResult) {
	if result.Violation != nil {
		fmt.Printf("%s %s\n", formatter.Bold("Warning:"), result.Violation.Message)
	}
	s := result.Progress
	fmt.Printf("Progress: %s  stage1 %d%% · stage2 %d%% · stage3 %d%%\n",
		formatter.RenderProgress(s.Overall, 20), s.Stage1, s.Stage2, s.Stage3)
}
