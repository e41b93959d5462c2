// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// KeyMap defines the global keybindings and the keys forwarded to a
// selected widget.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	Deselect     key.Binding
	Back         key.Binding
	ClearHistory key.Binding
	Reload       key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	Help         key.Binding

	Widget widget.KeyMap
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Select, k.Deselect, k.Back}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Deselect, k.Back, k.ClearHistory},
		{k.Widget.Filter, k.Widget.Top, k.Widget.Bottom, k.Reload},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "right"),
		),
		Select: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Select)...),
			key.WithHelp(cfg.Select, "select"),
		),
		Deselect: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Deselect)...),
			key.WithHelp(cfg.Deselect, "release"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "back"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ClearHistory)...),
			key.WithHelp(cfg.ClearHistory, "forget pages"),
		),
		Reload: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Reload)...),
			key.WithHelp(cfg.Reload, "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "toggle help"),
		),
		Widget: widget.KeyMap{
			Up:       key.NewBinding(key.WithKeys(splitKeys(cfg.Up)...)),
			Down:     key.NewBinding(key.WithKeys(splitKeys(cfg.Down)...)),
			Left:     key.NewBinding(key.WithKeys(splitKeys(cfg.Left)...)),
			Right:    key.NewBinding(key.WithKeys(splitKeys(cfg.Right)...)),
			PageUp:   key.NewBinding(key.WithKeys(splitKeys("pgup")...)),
			PageDown: key.NewBinding(key.WithKeys(splitKeys("pgdn")...)),
			Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
			Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
			Submit:   key.NewBinding(key.WithKeys(splitKeys(cfg.Select)...)),
			Filter: key.NewBinding(
				key.WithKeys(splitKeys(cfg.Filter)...),
				key.WithHelp(cfg.Filter, "filter list"),
			),
		},
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
