package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	var includeArchived bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Taxonomy.ListProjects(context.Background(), includeArchived)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects.")
				return nil
			}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				status := ""
				if p.ArchivedAt != nil {
					status = formatter.StyleDim.Render("archived")
				}
				rows = append(rows, []string{formatter.TruncID(p.ID), p.Name, status})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", ""}, rows))
			return nil
		},
	}
	list.Flags().BoolVar(&includeArchived, "all", false, "Include archived projects")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Create a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := app.Taxonomy.CreateProject(context.Background(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Created project %s (%s)\n", p.Name, formatter.TruncID(p.ID))
				return nil
			},
		},
		list,
		&cobra.Command{
			Use:   "archive ID",
			Short: "Archive a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				return app.Taxonomy.ArchiveProject(ctx, id)
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Delete a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveProjectID(ctx, app, args[0])
				if err != nil {
					return err
				}
				return app.Taxonomy.DeleteProject(ctx, id)
			},
		},
	)
	return cmd
}

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Create a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := app.Taxonomy.CreateCategory(context.Background(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Created category %s (%s)\n", c.Name, formatter.TruncID(c.ID))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List categories",
			RunE: func(cmd *cobra.Command, args []string) error {
				categories, err := app.Taxonomy.ListCategories(context.Background())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(categories))
				for _, c := range categories {
					rows = append(rows, []string{formatter.TruncID(c.ID), c.Name})
				}
				fmt.Print(formatter.RenderTable([]string{"ID", "NAME"}, rows))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Delete a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				id, err := resolveCategoryID(ctx, app, args[0])
				if err != nil {
					return err
				}
				return app.Taxonomy.DeleteCategory(ctx, id)
			},
		},
	)
	return cmd
}

func newLabelCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Create a label",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				l, err := app.Taxonomy.CreateLabel(context.Background(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Created label %s (%s)\n", l.Name, formatter.TruncID(l.ID))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List labels",
			RunE: func(cmd *cobra.Command, args []string) error {
				labels, err := app.Taxonomy.ListLabels(context.Background())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(labels))
				for _, l := range labels {
					rows = append(rows, []string{formatter.TruncID(l.ID), l.Name})
				}
				fmt.Print(formatter.RenderTable([]string{"ID", "NAME"}, rows))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Delete a label",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				ids, err := resolveLabelIDs(ctx, app, args[:1])
				if err != nil {
					return err
				}
				return app.Taxonomy.DeleteLabel(ctx, ids[0])
			},
		},
	)
	return cmd
}
