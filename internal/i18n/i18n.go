// Package i18n holds the user-facing strings the core produces on its own:
// placeholder titles and the accessible project summary.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	KeyNewProject     = "project.placeholder_title"
	KeyNewItem        = "item.placeholder_title"
	KeyProjectSummary = "project.summary"
	KeyItemCount      = "project.item_count"
)

var printer = message.NewPrinter(language.English)

func init() {
	lang := language.English

	message.SetString(lang, KeyNewProject, "New Project")
	message.SetString(lang, KeyNewItem, "New Item")
	message.SetString(lang, KeyItemCount, "%d items")
	message.SetString(lang, KeyProjectSummary, "%s, %d items, %.0f%% complete.")
}

// Sprintf formats the message registered under key
func Sprintf(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
