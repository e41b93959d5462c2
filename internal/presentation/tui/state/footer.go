package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content: the help text, preceded by a hint
// on how to release focus while a cell is selected.
func FooterText(selecting bool, deselectHint, helpText string) string {
	hint := strings.TrimSpace(deselectHint)
	if !selecting || hint == "" {
		return helpText
	}
	if helpText == "" {
		return hint
	}
	return hint + " · " + helpText
}

// FooterHelpText renders the short help line for keys.
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.ShortHelpView(keys.ShortHelp())
}
