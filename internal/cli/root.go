package cli

import (
	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything the CLI commands call into.
type App struct {
	Plans   service.PlanService
	Render  service.RenderService
	Status  service.StatusService
	Advisor advisor.Advisor
	Catalog *catalog.Catalog

	// IsInteractive reports whether stdin is a terminal. Nil means never,
	// so forms and spinners stay off in tests and pipes.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "housewright" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "housewright",
		Short:         "House plan synthesis from land, family and budget",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newPlansCmd(app),
		newCatalogCmd(app),
		newAskCmd(app),
		newRenderCmd(app),
		newReportCmd(app),
		newStatusCmd(app),
	)

	return root
}
