package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/sorting"
	"github.com/dori/portfolio/internal/store"
	"github.com/spf13/cobra"
)

var (
	itemsSort string

	itemTitle    string
	itemDetail   string
	itemPriority string
)

var itemsCmd = &cobra.Command{
	Use:   "items <project>",
	Short: "List a project's items with their offsets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := sorting.ParseOverride(itemsSort)
		if err != nil {
			return err
		}
		p, err := findProject(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles().Header.Render(application.Tracker.SummaryLabel(p)))
		for i, it := range application.Tracker.OrderedItems(p, override) {
			fmt.Fprintf(out, "%2d %s  %s\n", i, itemLine(it), styles().Dim.Render(shortID(it.ID)))
		}
		return nil
	},
}

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <project>",
	Short: "Add an item to a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findProject(args[0])
		if err != nil {
			return err
		}
		changes, ok, err := itemChanges(cmd)
		if err != nil {
			return err
		}

		t := application.Tracker
		it, err := t.AddItem(p)
		if err != nil {
			return err
		}
		if ok {
			t.UpdateItem(it.ID, changes)
			it, _ = t.Item(it.ID)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created: %s (%s)\n", it.ItemTitle(), it.ID)
		if it.Priority != model.PriorityMedium {
			fmt.Fprintf(cmd.OutOrStdout(), "Priority: %s\n", it.Priority)
		}
		return nil
	},
}

var itemEditCmd = &cobra.Command{
	Use:   "edit <item>",
	Short: "Change an item's title, detail or priority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := findItem(args[0])
		if err != nil {
			return err
		}
		changes, ok, err := itemChanges(cmd)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("nothing to change; use --title, --detail or --priority")
		}
		application.Tracker.UpdateItem(it.ID, changes)
		it, _ = application.Tracker.Item(it.ID)
		fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
		return nil
	},
}

var itemToggleCmd = &cobra.Command{
	Use:   "toggle <item>",
	Short: "Mark an item completed, or open again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := findItem(args[0])
		if err != nil {
			return err
		}
		application.Tracker.ToggleCompleted(it.ID)
		it, _ = application.Tracker.Item(it.ID)
		fmt.Fprintln(cmd.OutOrStdout(), itemLine(it))
		return nil
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <project> <offset>...",
	Short: "Delete items by their offset in the project's list",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		override, err := sorting.ParseOverride(itemsSort)
		if err != nil {
			return err
		}
		p, err := findProject(args[0])
		if err != nil {
			return err
		}

		offsets := make([]int, 0, len(args)-1)
		for _, a := range args[1:] {
			n, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("invalid offset %q", a)
			}
			offsets = append(offsets, n)
		}

		removed := application.Tracker.DeleteItems(offsets, p, override)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d items from %s\n", removed, p.ProjectTitle())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	itemsCmd.Flags().StringVar(&itemsSort, "sort", "default", "Item order: default, created or title")

	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd, itemEditCmd, itemToggleCmd, itemDeleteCmd)
	itemDeleteCmd.Flags().StringVar(&itemsSort, "sort", "default", "Order the offsets refer to")
	for _, c := range []*cobra.Command{itemAddCmd, itemEditCmd} {
		c.Flags().StringVar(&itemTitle, "title", "", "Item title")
		c.Flags().StringVar(&itemDetail, "detail", "", "Item description")
		c.Flags().StringVarP(&itemPriority, "priority", "p", "", "Priority: low, medium or high")
	}
}

func itemChanges(cmd *cobra.Command) (store.ItemChanges, bool, error) {
	var c store.ItemChanges
	flags := cmd.Flags()
	if flags.Changed("title") {
		c.Title = &itemTitle
	}
	if flags.Changed("detail") {
		c.Detail = &itemDetail
	}
	if flags.Changed("priority") {
		p, ok := model.ParsePriority(strings.ToLower(itemPriority))
		if !ok {
			return c, false, fmt.Errorf("unknown priority %q", itemPriority)
		}
		c.Priority = &p
	}
	return c, c.Title != nil || c.Detail != nil || c.Priority != nil, nil
}

// findItem resolves a full id or a unique id prefix
func findItem(ref string) (model.Item, error) {
	if it, ok := application.Tracker.Item(ref); ok {
		return it, nil
	}

	res := application.Store.FetchItems(store.ItemQuery{
		Where: func(it model.Item) bool { return strings.HasPrefix(it.ID, ref) },
	})
	switch len(res.Value) {
	case 0:
		return model.Item{}, fmt.Errorf("no item matches %q", ref)
	case 1:
		return res.Value[0], nil
	default:
		return model.Item{}, fmt.Errorf("%q matches %d items", ref, len(res.Value))
	}
}
