package main

import (
	"fmt"
	"strings"

	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/sorting"
	"github.com/dori/portfolio/internal/store"
	"github.com/spf13/cobra"
)

var (
	projectsClosed    bool
	projectsWithItems bool
	projectsSort      string

	projectTitle  string
	projectDetail string
	projectColor  string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List open (or closed) projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := sorting.ParseOverride(projectsSort)
		if err != nil {
			return err
		}

		t := application.Tracker
		out := cmd.OutOrStdout()
		projects := t.ListProjects(projectsClosed)
		if len(projects) == 0 {
			fmt.Fprintln(out, styles().Dim.Render("No projects."))
			return nil
		}

		for _, p := range projects {
			fmt.Fprintf(out, "%s  %s\n", colored(p.ProjectColor(), p.ProjectTitle()), styles().Dim.Render(shortID(p.ID)))
			fmt.Fprintf(out, "  %s\n", progressBar(t.CompletionRatio(p), 20, p.ProjectColor()))
			if !projectsWithItems {
				continue
			}
			for i, it := range t.OrderedItems(p, override) {
				fmt.Fprintf(out, "  %2d %s\n", i, itemLine(it))
			}
		}
		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage a single project",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new open project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := application.Tracker
		p := t.AddProject()
		if changes, ok := projectChanges(cmd); ok {
			t.UpdateProject(p.ID, changes)
			p, _ = t.Project(p.ID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created: %s (%s)\n", p.ProjectTitle(), p.ID)
		return nil
	},
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <project>",
	Short: "Change a project's title, detail or color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProject(args[0])
		if err != nil {
			return err
		}
		changes, ok := projectChanges(cmd)
		if !ok {
			return fmt.Errorf("nothing to change; use --title, --detail or --color")
		}
		application.Tracker.UpdateProject(p.ID, changes)
		p, _ = application.Tracker.Project(p.ID)
		fmt.Fprintln(cmd.OutOrStdout(), application.Tracker.SummaryLabel(p))
		return nil
	},
}

var projectToggleCmd = &cobra.Command{
	Use:   "toggle <project>",
	Short: "Close an open project, or reopen a closed one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProject(args[0])
		if err != nil {
			return err
		}
		application.Tracker.ToggleClosed(p.ID)
		state := "Closed"
		if p.Closed {
			state = "Reopened"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", state, p.ProjectTitle())
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project>",
	Short: "Delete a project and every item in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProject(args[0])
		if err != nil {
			return err
		}
		count := len(application.Tracker.ItemsOf(p))
		application.Tracker.DeleteProject(p)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s (%d items)\n", p.ProjectTitle(), count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().BoolVar(&projectsClosed, "closed", false, "List closed projects instead of open ones")
	projectsCmd.Flags().BoolVar(&projectsWithItems, "items", false, "Show each project's items")
	projectsCmd.Flags().StringVar(&projectsSort, "sort", "default", "Item order: default, created or title")

	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectAddCmd, projectEditCmd, projectToggleCmd, projectDeleteCmd)
	for _, c := range []*cobra.Command{projectAddCmd, projectEditCmd} {
		c.Flags().StringVar(&projectTitle, "title", "", "Project title")
		c.Flags().StringVar(&projectDetail, "detail", "", "Project description")
		c.Flags().StringVar(&projectColor, "color", "", "Project color ("+strings.Join(model.ProjectColors, ", ")+")")
	}
}

func projectChanges(cmd *cobra.Command) (store.ProjectChanges, bool) {
	var c store.ProjectChanges
	flags := cmd.Flags()
	if flags.Changed("title") {
		c.Title = &projectTitle
	}
	if flags.Changed("detail") {
		c.Detail = &projectDetail
	}
	if flags.Changed("color") {
		c.Color = &projectColor
	}
	return c, c.Title != nil || c.Detail != nil || c.Color != nil
}

// findProject resolves a full id or a unique id prefix
func findProject(ref string) (model.Project, error) {
	if p, ok := application.Tracker.Project(ref); ok {
		return p, nil
	}

	res := application.Store.FetchProjects(store.ProjectQuery{
		Where: func(p model.Project) bool { return strings.HasPrefix(p.ID, ref) },
	})
	switch len(res.Value) {
	case 0:
		return model.Project{}, fmt.Errorf("no project matches %q", ref)
	case 1:
		return res.Value[0], nil
	default:
		return model.Project{}, fmt.Errorf("%q matches %d projects", ref, len(res.Value))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
