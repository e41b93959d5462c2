// Package widget implements the closed set of cell widgets the page grid is
// made of. Widgets never touch the model state directly; they report the
// effects of input through an Env the dispatcher applies afterwards.
package widget

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/application/usecase"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
)

// Widget is implemented only by the types in this package.
type Widget interface {
	// Focusable reports whether the cursor may rest on the widget.
	Focusable() bool
	// Select is called when the user activates the widget. It returns true
	// when the widget takes exclusive key focus.
	Select(env *Env) bool
	// KeyInput handles a key while the widget is selected and reports
	// whether it consumed it.
	KeyInput(msg tea.KeyMsg, env *Env) bool
	// Load fetches the widget's data and returns the loaded replacement.
	// The receiver is left untouched.
	Load(lc LoadContext) (Widget, error)
	Render(rc RenderContext, width, height int) string
	Clone() Widget

	widget()
}

// Framed reports whether w is drawn inside a border. The message bar is
// the only bare cell.
func Framed(w Widget) bool {
	_, bare := w.(*MessageBar)
	return !bare
}

// Sizer is implemented by widgets that keep size-dependent state.
type Sizer interface {
	SetSize(width, height int)
}

// ThumbnailSource is implemented by widgets showing items with thumbnails.
type ThumbnailSource interface {
	Thumbnails() []video.Item
}

// WatchRecorder is the watch history as seen by loading widgets.
type WatchRecorder interface {
	RecordVideo(v *video.Video) error
	RecordPlaylist(p *video.Playlist) error
	Items() []video.Item
}

// LoadContext is what a widget may read while loading.
type LoadContext struct {
	Ctx      context.Context
	Page     page.Page
	Provider usecase.ContentProvider
	Watch    WatchRecorder
	Commands settings.CommandsConfig
	Now      time.Time
}

func (lc LoadContext) context() context.Context {
	if lc.Ctx == nil {
		return context.Background()
	}
	return lc.Ctx
}

func (lc LoadContext) now() time.Time {
	if lc.Now.IsZero() {
		return time.Now()
	}
	return lc.Now
}

// Focus is the visual state of a cell.
type Focus int

const (
	FocusNone Focus = iota
	FocusHovered
	FocusSelected
)

// ThumbnailRenderer draws a cached thumbnail as terminal text.
type ThumbnailRenderer interface {
	Render(id string, width, height int) string
}

// Styles are the text styles widgets paint with.
type Styles struct {
	Title  lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
	Cursor lipgloss.Style
}

// NewStyles builds Styles from the configured theme.
func NewStyles(theme settings.ThemeConfig) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Selected)).Bold(true),
	}
}

// RenderContext carries everything a widget may show besides its own data.
type RenderContext struct {
	Focus          Focus
	Styles         Styles
	Status         string
	Loading        bool
	LoadingMessage string
	Spinner        string
	Thumbnails     ThumbnailRenderer
	Now            time.Time
}

// KeyMap holds the keys widgets react to while selected.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Submit   key.Binding
	Filter   key.Binding
}

// DefaultKeyMap returns the widget keys for the default configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Top:      key.NewBinding(key.WithKeys("g", "home")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end")),
		Submit:   key.NewBinding(key.WithKeys("enter")),
		Filter:   key.NewBinding(key.WithKeys("/")),
	}
}

// ActionKind identifies an external effect requested by a widget.
type ActionKind int

const (
	RunCommand ActionKind = iota
	CopyLink
	OpenBrowser
)

// Action is an external effect on an item.
type Action struct {
	Kind    ActionKind
	Command settings.CommandConfig
	Item    video.Item
}

// Env collects the effects of one widget callback.
type Env struct {
	keys    *KeyMap
	next    *page.Page
	status  string
	actions []Action
}

// NewEnv returns an Env whose widgets match keys.
func NewEnv(keys KeyMap) *Env {
	return &Env{keys: &keys}
}

// Keys returns the widget key bindings.
func (e *Env) Keys() KeyMap {
	if e.keys == nil {
		return DefaultKeyMap()
	}
	return *e.keys
}

// Navigate requests a transition to p.
func (e *Env) Navigate(p page.Page) {
	e.next = &p
}

// Next returns the requested transition, if any.
func (e *Env) Next() (page.Page, bool) {
	if e.next == nil {
		return page.Page{}, false
	}
	return *e.next, true
}

// Notify sets the status message.
func (e *Env) Notify(msg string) {
	e.status = msg
}

// Status returns the requested status message.
func (e *Env) Status() string {
	return e.status
}

// Do requests an external action.
func (e *Env) Do(a Action) {
	e.actions = append(e.actions, a)
}

// Actions returns the requested external actions in order.
func (e *Env) Actions() []Action {
	return e.actions
}
