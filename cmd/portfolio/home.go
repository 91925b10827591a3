package main

import (
	"fmt"

	"github.com/dori/portfolio/internal/i18n"
	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show open projects and the highest-priority open items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := application.Tracker
		out := cmd.OutOrStdout()

		for _, p := range t.HomeProjects() {
			fmt.Fprintf(out, "%s  %s\n", colored(p.ProjectColor(), p.ProjectTitle()),
				styles().Dim.Render(i18n.Sprintf(i18n.KeyItemCount, len(t.ItemsOf(p)))))
			fmt.Fprintf(out, "  %s\n", progressBar(t.CompletionRatio(p), 20, p.ProjectColor()))
		}

		items := t.UpNext(10)
		if len(items) == 0 {
			return nil
		}

		upNext, more := items, items[:0]
		if len(items) > 3 {
			upNext, more = items[:3], items[3:]
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, styles().Header.Render("Up next"))
		for _, it := range upNext {
			fmt.Fprintln(out, itemLine(it))
		}
		if len(more) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, styles().Header.Render("More to explore"))
			for _, it := range more {
				fmt.Fprintln(out, itemLine(it))
			}
		}
		return nil
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Replace everything with sample projects and items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application.Tracker.ResetSampleData()
		s := application.Store
		fmt.Fprintf(cmd.OutOrStdout(), "Created %d projects with %d items\n",
			s.CountProjects(nil).Value, s.CountItems(nil).Value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(homeCmd, sampleCmd)
}
