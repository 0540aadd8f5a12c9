package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
)

func newDayCmd(app *App) *cobra.Command {
	var date string
	var width int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the day grid: plans and actuals side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}

			if interactive {
				if !isatty.IsTerminal(os.Stdout.Fd()) {
					return fmt.Errorf("--interactive requires a terminal")
				}
				model := newDayModel(app, day, width)
				_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
				return err
			}

			view, err := app.DayView.View(ctx, app.UserID, day)
			if err != nil {
				return err
			}
			grid := formatter.DayGrid{
				Date:      view.Date,
				Plans:     view.Plans,
				Actuals:   view.Actuals,
				LaneWidth: width,
				Loc:       app.Loc,
				Selected:  -1,
			}
			fmt.Print(grid.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&width, "width", 36, "Lane width in columns")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the day in a TUI")
	return cmd
}
