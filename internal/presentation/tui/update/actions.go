package update

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/infrastructure/command"
	"github.com/ytgrid/ytgrid/internal/infrastructure/invidious"
	"github.com/ytgrid/ytgrid/internal/logger"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// CommandFinishedMsg is emitted when an external command exits.
type CommandFinishedMsg struct {
	Label string
	Err   error
}

// HandleCommandFinishedMsg reports the command's outcome in the status line.
func HandleCommandFinishedMsg(s *state.ModelState, msg CommandFinishedMsg) {
	if msg.Err != nil {
		logger.Warn("command %q failed: %v", msg.Label, msg.Err)
		s.Status = statusFromError(msg.Err)
		return
	}
	logger.Info("command %q finished", msg.Label)
	s.Status = fmt.Sprintf("%s: done", msg.Label)
}

func runActions(s *state.ModelState, actions []widget.Action, deps Deps) tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range actions {
		cmds = append(cmds, runAction(s, a, deps))
	}
	return tea.Batch(cmds...)
}

func runAction(s *state.ModelState, a widget.Action, deps Deps) tea.Cmd {
	url := a.Item.URL()
	switch a.Kind {
	case widget.CopyLink:
		if deps.CopyText == nil {
			s.Status = "Clipboard is not available"
			return nil
		}
		if err := deps.CopyText(url); err != nil {
			s.Status = statusFromError(err)
			return nil
		}
		s.Status = "Copied " + url
		return nil
	case widget.OpenBrowser:
		if deps.OpenBrowser == nil {
			s.Status = "Browser is not available"
			return nil
		}
		if err := deps.OpenBrowser(url); err != nil {
			s.Status = statusFromError(err)
			return nil
		}
		s.Status = "Opened " + url
		return nil
	case widget.RunCommand:
		return runCommand(s, a, deps)
	default:
		return nil
	}
}

func runCommand(s *state.ModelState, a widget.Action, deps Deps) tea.Cmd {
	if deps.Executor == nil {
		s.Status = "Commands are not available"
		return nil
	}
	p, err := deps.Executor.Prepare(a.Command, command.VarsFor(a.Item, deps.DownloadDir))
	if err != nil {
		logger.Warn("command %q not run: %v", a.Command.Label, err)
		s.Status = statusFromError(err)
		return nil
	}

	if p.Detached {
		s.Status = fmt.Sprintf("Started %s", p.Label)
		executor := deps.Executor
		return func() tea.Msg {
			err := executor.RunDetached(context.Background(), p)
			return CommandFinishedMsg{Label: p.Label, Err: err}
		}
	}

	logger.Info("running %q in the foreground: %s", p.Label, p.Line)
	label := p.Label
	return tea.ExecProcess(p.Cmd(), func(err error) tea.Msg {
		if err != nil {
			err = fmt.Errorf("%s failed: %w", label, err)
		}
		return CommandFinishedMsg{Label: label, Err: err}
	})
}

// statusFromError turns an error into a status line.
func statusFromError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *invidious.APIError
	switch {
	case errors.Is(err, command.ErrUnknownToken):
		return "Bad command template: " + err.Error()
	case errors.Is(err, invidious.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, invidious.ErrRateLimited):
		return "The instance is rate limiting requests, try again later"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Request failed (%d): %s", apiErr.Status, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	default:
		return "Error: " + err.Error()
	}
}
