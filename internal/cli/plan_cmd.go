package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		flags       requestFlags
		name        string
		save        bool
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Synthesize a house plan from land, family size and budget",
		Example: `  housewright plan --land 5 --family 4 --budget 30L --orientation east
  housewright plan --land 7 --family 4 --budget 5000000 --prefs "modern design with garden" --save
  housewright plan --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.PlanRequest
			var err error
			if interactive {
				if !app.interactive() {
					return errors.New("--interactive needs a terminal; pass --land, --family and --budget instead")
				}
				values := formValuesFrom(&flags, name, save)
				if err := newPlanForm(values).Run(); err != nil {
					return err
				}
				req, err = values.request()
				name, save = values.name, values.save
			} else {
				req, err = flags.request()
			}
			if err != nil {
				return userError(err)
			}

			ctx := cmd.Context()
			plan, err := app.Plans.Generate(ctx, req)
			if err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(plan); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatPlan(plan))
			}

			if !save && name == "" {
				return nil
			}
			res, err := app.Plans.Save(ctx, plan, name)
			if err != nil {
				return userError(err)
			}
			// Keep stdout pure JSON when asked for it.
			if asJSON {
				out = cmd.ErrOrStderr()
			} else {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, formatter.FormatSaveResult(res.Saved, res.Existing))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().StringVar(&name, "name", "", "Name to save the plan under (implies --save)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the plan to history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the request with a form")

	return cmd
}
