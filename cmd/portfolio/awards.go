package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var awardsEarnedOnly bool

var awardsCmd = &cobra.Command{
	Use:   "awards",
	Short: "Show which awards are unlocked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		statuses := application.Tracker.Awards()

		earned := 0
		for _, s := range statuses {
			if s.Earned {
				earned++
			}
		}
		fmt.Fprintln(out, styles().Header.Render(fmt.Sprintf("Awards (%d/%d unlocked)", earned, len(statuses))))

		for _, s := range statuses {
			a := s.Award
			switch {
			case s.Earned:
				fmt.Fprintf(out, "%s %s\n", colored(a.Color, "★ "+a.Name), a.Description)
			case !awardsEarnedOnly:
				fmt.Fprintf(out, "%s %s\n", styles().AwardLocked.Render("☆ "+a.Name), styles().AwardLocked.Render(a.Description))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(awardsCmd)
	awardsCmd.Flags().BoolVar(&awardsEarnedOnly, "earned", false, "Only show unlocked awards")
}
