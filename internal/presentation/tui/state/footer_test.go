package state

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/application/settings"
)

func TestFooterText(t *testing.T) {
	tests := []struct {
		name      string
		selecting bool
		hint      string
		helpText  string
		want      string
	}{
		{
			name:     "help only when nothing selected",
			hint:     "esc: release",
			helpText: "help",
			want:     "help",
		},
		{
			name:      "hint prepended while selected",
			selecting: true,
			hint:      "esc: release",
			helpText:  "help",
			want:      "esc: release · help",
		},
		{
			name:      "hint only when help empty",
			selecting: true,
			hint:      "esc: release",
			want:      "esc: release",
		},
		{
			name:      "blank hint ignored",
			selecting: true,
			hint:      "  ",
			helpText:  "help",
			want:      "help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.selecting, tt.hint, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFooterHelpText_SingleLine(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Select:   "enter",
		Deselect: "esc",
		Back:     "backspace",
		Quit:     "q",
		Help:     "?",
	})

	got := FooterHelpText(help.New(), keys)
	if strings.Contains(got, "\n") {
		t.Fatalf("FooterHelpText() should be one line, got %q", got)
	}
	if !strings.Contains(got, "quit") {
		t.Fatalf("FooterHelpText() = %q, missing quit", got)
	}
}

func TestNewKeyMap(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Up:     "up, k",
		Reload: "ctrl+r,f5",
		Filter: "/",
		Select: "enter",
	})

	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, keys.Up) {
		t.Error("k should move up")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlR}, keys.Reload) {
		t.Error("ctrl+r should reload")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.ForceQuit) {
		t.Error("ctrl+c is always bound")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyPgDown}, keys.Widget.PageDown) {
		t.Error("pgdown should page the widget")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, keys.Widget.Submit) {
		t.Error("select key submits inside widgets")
	}
}
