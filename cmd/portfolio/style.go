package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/portfolio/internal/model"
	"github.com/dori/portfolio/internal/theme"
)

func styles() theme.Styles {
	return theme.Current.Styles
}

func colored(name, text string) string {
	return lipgloss.NewStyle().Foreground(theme.Current.Theme.Color(name)).Bold(true).Render(text)
}

// progressBar draws ratio (0..1) as a bar of width cells
func progressBar(ratio float64, width int, color string) string {
	filled := int(ratio*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := colored(color, strings.Repeat("█", filled)) + styles().BarEmpty.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, ratio*100)
}

func priorityMarker(p model.Priority) string {
	marker := "!  "
	switch p.Rank() {
	case model.PriorityHigh:
		marker = "!!!"
	case model.PriorityMedium:
		marker = "!! "
	}
	return lipgloss.NewStyle().Foreground(theme.Current.Theme.Priority(p)).Render(marker)
}

func itemLine(it model.Item) string {
	title := styles().ItemOpen.Render(it.ItemTitle())
	if it.Completed {
		title = styles().ItemDone.Render(it.ItemTitle())
	}
	return fmt.Sprintf("%s %s", priorityMarker(it.Priority), title)
}
