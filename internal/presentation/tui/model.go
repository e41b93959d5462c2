package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/update"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/view"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// Model represents the main application state.
type Model struct {
	settings   settings.Settings
	deps       update.Deps
	initial    page.Page
	styles     widget.Styles
	thumbnails widget.ThumbnailRenderer
	state      *state.ModelState
}

// NewModel creates a new application model that opens on initial.
// thumbnails may be nil when previews are disabled.
func NewModel(cfg settings.Settings, initial page.Page, deps update.Deps, thumbnails widget.ThumbnailRenderer) *Model {
	return &Model{
		settings:   cfg,
		deps:       deps,
		initial:    initial,
		styles:     widget.NewStyles(cfg.Theme),
		thumbnails: thumbnails,
		state:      newModelState(cfg),
	}
}

// Init shows the initial page.
func (m *Model) Init() tea.Cmd {
	return update.Start(m.state, m.initial, m.deps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := update.HandleKeyMsg(m.state, msg, m.deps)
		return m, cmd
	case tea.MouseMsg:
		return m, update.HandleMouseMsg(m.state, msg, m.deps)
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.LoadPageMsg:
		return m, update.HandleLoadPageMsg(m.state, msg, m.deps)
	case update.ThumbnailsFetchedMsg:
		update.HandleThumbnailsFetchedMsg(msg)
	case update.CommandFinishedMsg:
		update.HandleCommandFinishedMsg(m.state, msg)
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		History: state.NewHistoryStack(),
		Keys:    state.NewKeyMap(cfg.KeyMap),
		Help:    help.New(),
		Spinner: newSpinner(cfg.Theme),
	}
}

func newSpinner(theme settings.ThemeConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Selected))
	return s
}
