// Package tui provides the main user interface model and view components.
package tui

import (
	"time"

	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/cell"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/layout"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/modal"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/placeholder"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/update"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/view"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Layout:      m.buildLayoutProps(),
		Placeholder: m.buildPlaceholderProps(),
		Modal:       m.buildModalProps(),
	}
}

func (m *Model) buildPlaceholderProps() placeholder.Props {
	return placeholder.Props{
		Visible:   update.TooSmall(m.state),
		Width:     m.state.Width,
		Height:    m.state.Height,
		MinWidth:  m.state.MinWidth,
		MinHeight: m.state.MinHeight,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if !m.state.Help.ShowAll {
		return modal.Props{Visible: false}
	}
	return modal.Props{
		Visible: true,
		Title:   "Keys",
		Body:    m.state.Help.View(&m.state.Keys),
		Width:   m.state.Width,
		Height:  m.state.Height,
		Color:   m.settings.Theme.Accent,
	}
}

func (m *Model) buildLayoutProps() layout.Props {
	area := update.GridArea(m.state)
	rc := widget.RenderContext{
		Styles:         m.styles,
		Status:         m.state.Status,
		Loading:        m.state.Loading,
		LoadingMessage: m.state.LoadingMessage,
		Spinner:        m.state.Spinner.View(),
		Thumbnails:     m.thumbnails,
		Now:            m.now(),
	}

	blocks := make([]layout.Block, 0, len(m.state.Placements))
	for _, p := range m.state.Placements {
		w, ok := m.state.Grid.At(p.Coord)
		if !ok || w == nil {
			continue
		}
		rc.Focus = m.focusOf(p.Coord)
		width, height := update.ContentSize(w, p.Rect)
		blocks = append(blocks, layout.Block{
			X:      p.Rect.X,
			Y:      p.Rect.Y,
			Width:  p.Rect.Width,
			Height: p.Rect.Height,
			Content: cell.Render(cell.Props{
				View:          w.Render(rc, width, height),
				Width:         p.Rect.Width,
				Height:        p.Rect.Height,
				Framed:        widget.Framed(w),
				State:         cellState(rc.Focus),
				IdleColor:     m.settings.Theme.Muted,
				HoverColor:    m.settings.Theme.Hover,
				SelectedColor: m.settings.Theme.Selected,
			}),
		})
	}

	return layout.Props{
		Width:  area.Width,
		Height: area.Height,
		Blocks: blocks,
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) focusOf(c grid.Coord) widget.Focus {
	if m.state.Cursor.Selecting && m.state.Cursor.Selected == c {
		return widget.FocusSelected
	}
	if hovered, ok := m.state.Cursor.HoveredCell(m.state.Index); ok && hovered == c {
		return widget.FocusHovered
	}
	return widget.FocusNone
}

func cellState(f widget.Focus) cell.State {
	switch f {
	case widget.FocusSelected:
		return cell.Selected
	case widget.FocusHovered:
		return cell.Hovered
	default:
		return cell.Idle
	}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	hint := m.state.Keys.Deselect.Help().Key + ": release"
	return textutil.Truncate(state.FooterText(m.state.Cursor.Selecting, hint, helpText), m.state.Width)
}

func (m *Model) now() time.Time {
	if m.deps.Now == nil {
		return time.Now()
	}
	return m.deps.Now()
}
