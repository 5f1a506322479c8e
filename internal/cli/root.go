package cli

import (
	"github.com/cadence-sh/cadence/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans       service.PlanService
	Constraints service.ConstraintsService
	Bookings    service.BookingService
	Schedule    service.ScheduleService
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Deterministic session scheduler for long-horizon plans",
	}

	root.AddCommand(
		newPlanCmd(app),
		newConstraintsCmd(app),
		newBookingCmd(app),
		newScheduleCmd(app),
	)

	return root
}
