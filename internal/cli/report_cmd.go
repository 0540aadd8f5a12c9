package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/service"
)

func newReportCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:       "report {projects|categories|labels}",
		Short:     "Summarize actual time per classification",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"projects", "categories", "labels"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fromDay, toDay, err := parseRange(from, to, app.Loc)
			if err != nil {
				return err
			}

			rows, err := app.Reports.Usage(ctx, app.UserID, fromDay, toDay,
				service.ReportDimension(args[0]))
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No actual time recorded.")
				return nil
			}

			var total time.Duration
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{r.Name, formatter.HumanDuration(r.Duration)})
				total += r.Duration
			}
			fmt.Print(formatter.RenderTable([]string{"NAME", "TIME"}, table))
			fmt.Println(formatter.StyleDim.Render("total " + formatter.HumanDuration(total)))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fromDay, toDay, err := parseRange(from, to, app.Loc)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			n, err := app.Export.ExportCSV(ctx, w, app.UserID, fromDay, toDay)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("Wrote %d entries to %s\n", n, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
