package cli

import (
	"github.com/minsukang/stagegate/internal/schema"
	"github.com/minsukang/stagegate/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Fields   service.FieldService
	Status   service.StatusService
	Calendar service.CalendarService
	Registry schema.Registry

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "stagegate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stagegate",
		Short: "Track manufacturing projects through their stage gates",
	}

	root.AddCommand(
		newProjectCmd(app),
		newSetCmd(app),
		newToggleCmd(app),
		newNoteCmd(app),
		newCheckCmd(app),
		newEditCmd(app),
		newStatusCmd(app),
		newCalendarCmd(app),
		newExportCmd(app),
	)

	return root
}
