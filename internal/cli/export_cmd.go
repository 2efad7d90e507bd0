package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/minsukang/stagegate/internal/contract"
	"github.com/minsukang/stagegate/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format  string
		output  string
		all     bool
		project string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export milestone events as iCal or CSV",
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

			var content string
			switch format {
			case "ical":
				content = export.ICal(entries, export.ICalOptions{
					IncludeCompleted: all,
				})
			case "csv":
				content, err = export.CSV(entries, export.CSVOptions{
					IncludeCompleted: all,
				})
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export format %q (expected ical or csv)", format)
			}

			if output == "" {
				fmt.Print(content)
				return nil
			}
			if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "ical", "Export format: ical or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&all, "all", false, "Include completed projects")
	cmd.Flags().StringVar(&project, "project", "", "Limit to a single project (ID or name)")

	return cmd
}
