package cli

import (
	"context"
	"fmt"

	"github.com/minsukang/stagegate/internal/cli/formatter"
	"github.com/minsukang/stagegate/internal/contract"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var (
		all     bool
		project string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show upcoming deadlines grouped by urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.CalendarRequest{IncludeCompleted: all}
			if project != "" {
				projectID, err := resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
				req.ProjectID = projectID
			}

			entries, err := app.Calendar.Calendar(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCalendar(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed projects")
	cmd.Flags().StringVar(&project, "project", "", "Limit to a single project (ID or name)")

	return cmd
}
