// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ForceQuit
	ToggleHelp
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Select
	Deselect
	Back
	ClearHistory
	Reload
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to a global intent. It is only consulted
// when no cell holds the selection.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.ForceQuit):
		return Intent{Type: ForceQuit}
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Up):
		return Intent{Type: MoveUp}
	case key.Matches(msg, keys.Down):
		return Intent{Type: MoveDown}
	case key.Matches(msg, keys.Left):
		return Intent{Type: MoveLeft}
	case key.Matches(msg, keys.Right):
		return Intent{Type: MoveRight}
	case key.Matches(msg, keys.Select):
		return Intent{Type: Select}
	case key.Matches(msg, keys.Deselect):
		return Intent{Type: Deselect}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.ClearHistory):
		return Intent{Type: ClearHistory}
	case key.Matches(msg, keys.Reload):
		return Intent{Type: Reload}
	default:
		return Intent{Type: None}
	}
}
