package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/housewright/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		kind   string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Print or write a text report for a saved plan",
		Long: `Print or write a text report for a saved plan.

Kinds: summary, technical, cost, or all. With --out each report is written
to <dir>/<kind>_<id>.txt instead of printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := report.Kinds
			if kind != "all" {
				k, err := report.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = []report.Kind{k}
			}

			saved, err := app.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			for i, k := range kinds {
				text, err := report.Render(k, saved)
				if err != nil {
					return err
				}
				if outDir == "" {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprint(out, text)
					continue
				}
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("creating report directory: %w", err)
				}
				path := filepath.Join(outDir, report.FileName(k, saved))
				if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing %s report: %w", k, err)
				}
				fmt.Fprintf(out, "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "summary", "Report kind: summary, technical, cost or all")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write reports to this directory instead of stdout")
	return cmd
}
