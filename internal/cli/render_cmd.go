package cli

import (
	"fmt"

	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "render <id>",
		Short: "Build a 3D model of a saved plan with Blender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Rendering with Blender...")
			}
			path, err := app.Render.Render(cmd.Context(), args[0])
			stop()
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("3D model written to"), path)
			return nil
		},
	}
}
