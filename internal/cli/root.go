package cli

import (
	"github.com/Tanudin/Happy-Child/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Events   service.EventService
	Custody  service.CustodyService
	Children service.ChildService
	Identity service.IdentityService

	// IsInteractive reports whether stdin is attached to a terminal;
	// the calendar TUI refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "happychild" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "happychild",
		Short: "Custody calendar for shared parenting",
	}

	root.AddCommand(
		newLoginCmd(app),
		newWhoamiCmd(app),
		newChildCmd(app),
		newScheduleCmd(app),
		newCalendarCmd(app),
	)

	return root
}
