package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
)

func newMapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Classify applications to projects, categories, and labels",
	}
	cmd.AddCommand(
		newMapAddCmd(app),
		newMapListCmd(app),
		newMapRemoveCmd(app),
		newMapSuggestCmd(app),
	)
	return cmd
}

func newMapAddCmd(app *App) *cobra.Command {
	var appName, project, category string
	var labels []string

	cmd := &cobra.Command{
		Use:   "add [APP]",
		Short: "Map an application basename to a classification",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				appName = args[0]
			}

			// Without flags, collect the mapping interactively.
			if appName == "" || (project == "" && category == "") {
				if err := runMapForm(ctx, app, &appName, &project, &category); err != nil {
					return err
				}
			}
			if appName == "" {
				return fmt.Errorf("an application name is required")
			}

			m := &domain.AppMapping{AppBasename: strings.ToLower(appName)}
			var err error
			if m.ProjectID, err = resolveProjectID(ctx, app, project); err != nil {
				return err
			}
			if m.CategoryID, err = resolveCategoryID(ctx, app, category); err != nil {
				return err
			}
			if m.LabelIDs, err = resolveLabelIDs(ctx, app, labels); err != nil {
				return err
			}

			if err := app.Mappings.Upsert(ctx, m); err != nil {
				return err
			}
			fmt.Printf("Mapped %s\n", m.AppBasename)
			return nil
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&category, "category", "", "Category name or ID")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "Label name or ID (repeatable)")
	return cmd
}

func runMapForm(ctx context.Context, app *App, appName, project, category *string) error {
	projects, err := app.Taxonomy.ListProjects(ctx, false)
	if err != nil {
		return err
	}
	categories, err := app.Taxonomy.ListCategories(ctx)
	if err != nil {
		return err
	}

	projectOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, p := range projects {
		projectOptions = append(projectOptions, huh.NewOption(p.Name, p.Name))
	}
	categoryOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, c := range categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Application basename").
				Placeholder("goland").
				Value(appName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Project").
				Options(projectOptions...).
				Value(project),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(category),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newMapListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List application mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mappings, err := app.Mappings.List(ctx)
			if err != nil {
				return err
			}
			if len(mappings) == 0 {
				fmt.Println("No mappings.")
				return nil
			}

			projectNames, err := projectNameIndex(ctx, app)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(mappings))
			for _, m := range mappings {
				name := projectNames[m.ProjectID]
				if name == "" && m.ProjectID != "" {
					name = formatter.TruncID(m.ProjectID)
				}
				rows = append(rows, []string{m.AppBasename, name, fmt.Sprintf("%d", len(m.LabelIDs))})
			}
			fmt.Print(formatter.RenderTable([]string{"APP", "PROJECT", "LABELS"}, rows))
			return nil
		},
	}
}

func newMapRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm APP",
		Short: "Delete an application mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Mappings.Delete(context.Background(), strings.ToLower(args[0])); err != nil {
				return err
			}
			fmt.Printf("Removed mapping for %s\n", args[0])
			return nil
		},
	}
}

func newMapSuggestCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest mappings for unmapped applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fromDay, toDay, err := parseRange(from, to, app.Loc)
			if err != nil {
				return err
			}

			suggestions, err := app.Mappings.Suggest(ctx, app.UserID, fromDay, toDay)
			if err != nil {
				return err
			}
			if len(suggestions) == 0 {
				fmt.Println("No suggestions.")
				return nil
			}

			projectNames, err := projectNameIndex(ctx, app)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(suggestions))
			for _, s := range suggestions {
				name := projectNames[s.ProjectID]
				if name == "" {
					name = formatter.TruncID(s.ProjectID)
				}
				rows = append(rows, []string{s.AppBasename, name, formatter.HumanDuration(s.Weight)})
			}
			fmt.Print(formatter.RenderTable([]string{"APP", "PROJECT", "EVIDENCE"}, rows))
			fmt.Println(formatter.StyleDim.Render("accept one with: tempo map add APP --project NAME"))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	return cmd
}

func projectNameIndex(ctx context.Context, app *App) (map[string]string, error) {
	projects, err := app.Taxonomy.ListProjects(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names, nil
}
