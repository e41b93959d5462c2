package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

// MessageBar shows the loading message or the current status line.
type MessageBar struct{}

// NewMessageBar returns the status bar.
func NewMessageBar() *MessageBar { return &MessageBar{} }

func (*MessageBar) widget() {}

// Focusable implements Widget.
func (*MessageBar) Focusable() bool { return false }

// Select implements Widget.
func (*MessageBar) Select(*Env) bool { return false }

// KeyInput implements Widget.
func (*MessageBar) KeyInput(tea.KeyMsg, *Env) bool { return false }

// Load implements Widget.
func (m *MessageBar) Load(LoadContext) (Widget, error) { return m, nil }

// Render implements Widget.
func (*MessageBar) Render(rc RenderContext, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if rc.Loading {
		text := rc.LoadingMessage
		if rc.Spinner != "" {
			text = rc.Spinner + " " + text
		}
		return rc.Styles.Accent.Render(textutil.Truncate(text, width))
	}
	return rc.Styles.Muted.Render(textutil.Truncate(textutil.SingleLine(rc.Status), width))
}

// Clone implements Widget.
func (*MessageBar) Clone() Widget { return &MessageBar{} }
