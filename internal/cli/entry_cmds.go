package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage planned entries",
	}
	cmd.AddCommand(
		newEntryAddCmd(app, domain.KindPlan),
		newEntryListCmd(app, domain.KindPlan),
		newEntryRemoveCmd(app),
	)
	return cmd
}

func newActualCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actual",
		Short: "Manage actual entries",
	}
	cmd.AddCommand(
		newEntryAddCmd(app, domain.KindActual),
		newEntryListCmd(app, domain.KindActual),
		newEntryRemoveCmd(app),
		newActualConfirmCmd(app),
	)
	return cmd
}

func newEntryAddCmd(app *App, kind domain.EntryKind) *cobra.Command {
	var date, from, to, project, category string
	var labels []string
	var allDay, shared bool

	cmd := &cobra.Command{
		Use:   "add SUMMARY",
		Short: fmt.Sprintf("Add a %s entry", strings.ToLower(string(kind))),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}

			e := &domain.Entry{
				UserID:  app.UserID,
				Kind:    kind,
				Summary: args[0],
			}
			if shared {
				e.Kind = domain.KindShared
			}

			if allDay {
				d := day.Format(domain.DateLayout)
				e.Start = domain.DateOf(d)
				e.End = domain.DateOf(d)
			} else {
				if from == "" || to == "" {
					return fmt.Errorf("either --all-day or both --from and --to are required")
				}
				start, err := parseClock(day, from)
				if err != nil {
					return err
				}
				end, err := parseClock(day, to)
				if err != nil {
					return err
				}
				if !start.Before(end) {
					return fmt.Errorf("--from must be before --to")
				}
				e.Start = domain.TimeOf(start)
				e.End = domain.TimeOf(end)
			}

			if e.ProjectID, err = resolveProjectID(ctx, app, project); err != nil {
				return err
			}
			if e.CategoryID, err = resolveCategoryID(ctx, app, category); err != nil {
				return err
			}
			if e.LabelIDs, err = resolveLabelIDs(ctx, app, labels); err != nil {
				return err
			}

			if err := app.Entries.Create(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Added %s %s (%s)\n",
				strings.ToLower(string(e.Kind)), e.Summary, formatter.TruncID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&from, "from", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&to, "to", "", "End time (HH:MM)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day entry")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&category, "category", "", "Category name or ID")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "Label name or ID (repeatable)")
	if kind == domain.KindPlan {
		cmd.Flags().BoolVar(&shared, "shared", false, "Mark as a shared entry")
	}
	return cmd
}

func newEntryListCmd(app *App, kind domain.EntryKind) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}

			entries, err := app.Entries.ListRange(ctx, app.UserID, day, day.Add(24*time.Hour))
			if err != nil {
				return err
			}
			plans, actuals, err := domain.PartitionByKind(entries)
			if err != nil {
				return err
			}
			selected := plans
			if kind == domain.KindActual {
				selected = actuals
			}

			if len(selected) == 0 {
				fmt.Println("No entries.")
				return nil
			}

			rows := make([][]string, 0, len(selected))
			for _, e := range selected {
				rows = append(rows, []string{
					formatter.EntryMarker(e) + " " + formatter.TruncID(e.ID),
					formatter.EntrySpan(e, app.Loc),
					e.Summary,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TIME", "SUMMARY"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}
			id, err := resolveEntryID(ctx, app, day, args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", formatter.TruncID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date the entry is on (default today)")
	return cmd
}

func newActualConfirmCmd(app *App) *cobra.Command {
	var date string
	var all bool

	cmd := &cobra.Command{
		Use:   "confirm [ID]",
		Short: "Confirm provisional actuals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if all {
				provisional, err := app.Entries.ListProvisional(ctx, app.UserID)
				if err != nil {
					return err
				}
				for _, e := range provisional {
					if err := app.Entries.Confirm(ctx, e.ID); err != nil {
						return err
					}
				}
				fmt.Printf("Confirmed %d entries\n", len(provisional))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("an entry ID or --all is required")
			}
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}
			id, err := resolveEntryID(ctx, app, day, args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Confirm(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Confirmed %s\n", formatter.TruncID(id))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date the entry is on (default today)")
	cmd.Flags().BoolVar(&all, "all", false, "Confirm every provisional entry")
	return cmd
}
