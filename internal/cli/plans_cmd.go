package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"history"},
		Short:   "Browse saved plans",
	}

	cmd.AddCommand(
		newPlansListCmd(app),
		newPlansShowCmd(app),
		newPlansDeleteCmd(app),
	)

	return cmd
}

func newPlansListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved plans, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of plans to show (0 for all)")
	return cmd
}

func newPlansShowCmd(app *App) *cobra.Command {
	var asJSON, describe bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved plan by id or id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return userError(err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(saved)
			}
			fmt.Fprint(out, formatter.FormatSavedPlan(saved))
			if describe {
				var desc *advisor.Description
				stop := func() {}
				if app.interactive() {
					stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Writing overview...")
				}
				desc, err = app.Advisor.Describe(cmd.Context(), &saved.Plan)
				stop()
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatDescription(desc))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the saved plan as JSON")
	cmd.Flags().BoolVar(&describe, "describe", false, "Add a short plain-language overview from the advisor")
	cmd.MarkFlagsMutuallyExclusive("json", "describe")
	return cmd
}

func newPlansDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return userError(err)
			}
			if err := app.Plans.Delete(cmd.Context(), saved.ID); err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s (%s)\n", saved.ShortID(), saved.DisplayName())
			return nil
		},
	}
}
