package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
)

func newReconcileCmd(app *App) *cobra.Command {
	var date string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconstruct actual entries for a day from captured activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}

			result, err := app.Reconcile.Reconcile(ctx, app.UserID, day, dryRun)
			if err != nil {
				return err
			}

			if len(result.Created) == 0 {
				fmt.Println("Nothing to reconcile.")
				return nil
			}

			rows := make([][]string, 0, len(result.Created))
			for _, e := range result.Created {
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					formatter.EntrySpan(e, app.Loc),
					e.Summary,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TIME", "SUMMARY"}, rows))
			if dryRun {
				fmt.Println(formatter.StyleDim.Render("dry run: nothing was saved"))
			} else {
				fmt.Printf("Created %d provisional entries. Confirm with: tempo actual confirm --all\n",
					len(result.Created))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without saving")
	return cmd
}
