package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/service"
)

// App holds references to all service interfaces used by CLI commands,
// plus the resolved identity and timezone every command operates in.
type App struct {
	Entries   service.EntryService
	DayView   service.DayViewService
	Reconcile service.ReconcileService
	Activity  service.ActivityService
	Mappings  service.MappingService
	Taxonomy  service.TaxonomyService
	Reports   service.ReportService
	Export    service.ExportService

	UserID      string
	ActivityLog string
	Loc         *time.Location
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Loc == nil {
		app.Loc = time.Local
	}
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Personal time tracking: plan the day, capture the day, close the gap",
	}

	root.AddCommand(
		newPlanCmd(app),
		newActualCmd(app),
		newDayCmd(app),
		newReconcileCmd(app),
		newActivityCmd(app),
		newMapCmd(app),
		newProjectCmd(app),
		newCategoryCmd(app),
		newLabelCmd(app),
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}
