package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/housewright/internal/cli/formatter"
	"github.com/alexanderramin/housewright/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var (
		planID string
		chat   bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the planning advisor about design, layout or cost",
		Long: `Ask the planning advisor about design, layout or cost.

The advisor uses the local model when HOUSEWRIGHT_LLM_ENABLED is set and
answers from fixed guidance otherwise. With --plan the question is answered
against a saved plan's figures.`,
		Example: `  housewright ask "how much will a 3BHK cost?"
  housewright ask --plan 1a2b3c4d "is the kitchen big enough?"
  housewright ask --plan 1a2b3c4d --chat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var plan *domain.Plan
			if planID != "" {
				saved, err := app.Plans.Get(ctx, planID)
				if err != nil {
					return userError(err)
				}
				plan = &saved.Plan
			}

			question := strings.TrimSpace(strings.Join(args, " "))
			if chat {
				if !app.interactive() {
					return errors.New("--chat needs a terminal")
				}
				_, err := tea.NewProgram(newChatView(ctx, app.Advisor, plan, question)).Run()
				return err
			}
			if question == "" {
				return errors.New("ask needs a question, or use --chat for a conversation")
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Thinking...")
			}
			advice, err := app.Advisor.Ask(ctx, plan, question)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdvice(advice))
			return nil
		},
	}

	cmd.Flags().StringVarP(&planID, "plan", "p", "", "Saved plan id (or prefix) to discuss")
	cmd.Flags().BoolVar(&chat, "chat", false, "Open a multi-turn chat")
	return cmd
}
