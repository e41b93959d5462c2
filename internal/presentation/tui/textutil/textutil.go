// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// Wrap soft-wraps every line of text to width.
func Wrap(lines []string, width int) []string {
	if width <= 0 {
		return nil
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.Split(ansi.Wordwrap(line, width, ""), "\n")...)
	}
	return out
}

// Clip keeps at most height lines, each truncated to width.
func Clip(lines []string, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Truncate(line, width)
	}
	return strings.Join(out, "\n")
}

// Center pads text on the left so it is centered in width.
func Center(text string, width int) string {
	w := ansi.StringWidth(text)
	if w >= width {
		return Truncate(text, width)
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
