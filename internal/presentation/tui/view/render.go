// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/layout"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/modal"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/components/placeholder"
)

// Props aggregates properties for all UI components.
type Props struct {
	Layout      layout.Props
	Placeholder placeholder.Props
	Modal       modal.Props
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}
	if p.Placeholder.Visible {
		return placeholder.Render(p.Placeholder)
	}
	return layout.Render(p.Layout)
}
