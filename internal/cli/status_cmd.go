package cli

import (
	"context"
	"fmt"

	"github.com/minsukang/stagegate/internal/cli/formatter"
	"github.com/minsukang/stagegate/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the project dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background(), contract.StatusRequest{
				IncludeCompleted: all,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed projects")

	return cmd
}
