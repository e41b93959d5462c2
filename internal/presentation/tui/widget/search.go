package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

// SearchInput is the query box at the top of every page.
type SearchInput struct {
	input   textinput.Model
	filters video.SearchFilters
}

// NewSearchInput returns a search box prefilled with query.
func NewSearchInput(query string, filters video.SearchFilters) *SearchInput {
	return &SearchInput{input: newSearchTextInput(query), filters: filters.Normalize()}
}

func newSearchTextInput(query string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "videos, playlists, channels"
	ti.CharLimit = 200
	ti.SetValue(query)
	return ti
}

func (*SearchInput) widget() {}

// Focusable implements Widget.
func (*SearchInput) Focusable() bool { return true }

// Query returns the typed text.
func (s *SearchInput) Query() string { return s.input.Value() }

// Select implements Widget.
func (s *SearchInput) Select(*Env) bool {
	s.input.Focus()
	s.input.CursorEnd()
	return true
}

// KeyInput implements Widget.
func (s *SearchInput) KeyInput(msg tea.KeyMsg, env *Env) bool {
	if key.Matches(msg, env.Keys().Submit) {
		query := strings.TrimSpace(s.input.Value())
		if query == "" {
			env.Notify("Type something to search for")
			return true
		}
		env.Navigate(page.NewSearch(query, s.filters))
		return true
	}
	s.input.Focus()
	s.input, _ = s.input.Update(msg)
	return true
}

// Load implements Widget.
func (s *SearchInput) Load(LoadContext) (Widget, error) { return s, nil }

// Render implements Widget.
func (s *SearchInput) Render(rc RenderContext, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	input := s.input
	input.Width = max(width-len(input.Prompt)-1, 1)
	if rc.Focus == FocusSelected {
		input.Focus()
	} else {
		input.Blur()
	}
	return textutil.Truncate(input.View(), width)
}

// Clone implements Widget.
func (s *SearchInput) Clone() Widget {
	c := &SearchInput{input: newSearchTextInput(s.input.Value()), filters: s.filters}
	return c
}

// SearchFilters edits the filters of the current search.
type SearchFilters struct {
	query   string
	filters video.SearchFilters
	field   int
}

// NewSearchFilters returns the filter bar for query.
func NewSearchFilters(query string, filters video.SearchFilters) *SearchFilters {
	return &SearchFilters{query: query, filters: filters.Normalize()}
}

func (*SearchFilters) widget() {}

// Filters returns the edited filters.
func (f *SearchFilters) Filters() video.SearchFilters { return f.filters }

// Focusable implements Widget.
func (*SearchFilters) Focusable() bool { return true }

// Select implements Widget.
func (*SearchFilters) Select(*Env) bool { return true }

// KeyInput implements Widget.
func (f *SearchFilters) KeyInput(msg tea.KeyMsg, env *Env) bool {
	keys := env.Keys()
	fields := video.FilterFields
	switch {
	case key.Matches(msg, keys.Up):
		f.field = max(f.field-1, 0)
	case key.Matches(msg, keys.Down):
		f.field = min(f.field+1, len(fields)-1)
	case key.Matches(msg, keys.Left):
		f.filters = f.filters.Cycle(fields[f.field], -1)
	case key.Matches(msg, keys.Right):
		f.filters = f.filters.Cycle(fields[f.field], 1)
	case key.Matches(msg, keys.Submit):
		env.Navigate(page.NewSearch(f.query, f.filters))
	default:
		return false
	}
	return true
}

// Load implements Widget.
func (f *SearchFilters) Load(LoadContext) (Widget, error) { return f, nil }

// Render implements Widget.
func (f *SearchFilters) Render(rc RenderContext, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	parts := make([]string, len(video.FilterFields))
	for i, field := range video.FilterFields {
		text := fmt.Sprintf("%s: %s", field.Label(), f.filters.Get(field))
		switch {
		case rc.Focus == FocusSelected && i == f.field:
			text = rc.Styles.Cursor.Render("< " + text + " >")
		case f.filters.Get(field) != field.Options()[0]:
			text = rc.Styles.Accent.Render(text)
		default:
			text = rc.Styles.Muted.Render(text)
		}
		parts[i] = text
	}
	return textutil.Truncate(strings.Join(parts, "  "), width)
}

// Clone implements Widget.
func (f *SearchFilters) Clone() Widget {
	c := *f
	return &c
}

// SearchFiltersWidth is the widest the filter bar gets.
func SearchFiltersWidth() int {
	total := 0
	for i, field := range video.FilterFields {
		longest := 0
		for _, option := range field.Options() {
			longest = max(longest, len(option))
		}
		total += len(field.Label()) + 2 + longest
		if i > 0 {
			total += 2
		}
	}
	return total + 4
}
