package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage captured application activity",
	}
	cmd.AddCommand(
		newActivityImportCmd(app),
		newActivityListCmd(app),
		newActivityWatchCmd(app),
	)
	return cmd
}

func newActivityImportCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a focus-sample log into activity segments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = app.ActivityLog
			}
			result, err := app.Activity.ImportLog(context.Background(), path)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d samples into %d segments\n", result.Samples, result.Segments)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "Log file (default from config)")
	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activity segments for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date, app.Loc)
			if err != nil {
				return err
			}
			segments, err := app.Activity.ListSegments(context.Background(), day, day.Add(24*time.Hour))
			if err != nil {
				return err
			}
			if len(segments) == 0 {
				fmt.Println("No activity.")
				return nil
			}

			rows := make([][]string, 0, len(segments))
			for _, s := range segments {
				rows = append(rows, []string{
					s.Start.In(app.Loc).Format("15:04") + "-" + s.End.In(app.Loc).Format("15:04"),
					formatter.HumanDuration(s.End.Sub(s.Start)),
					s.AppBasename,
					s.WindowTitle,
				})
			}
			fmt.Print(formatter.RenderTable([]string{"TIME", "DUR", "APP", "TITLE"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newActivityWatchCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Continuously import the capture log as it grows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = app.ActivityLog
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %s (ctrl+c to stop)\n", path)
			err := app.Activity.Watch(ctx, path)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "Log file (default from config)")
	return cmd
}
