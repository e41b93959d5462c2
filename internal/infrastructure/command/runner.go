package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/logger"
)

const defaultShell = "sh"

// Config controls how commands are started.
type Config struct {
	Shell    string
	Terminal string
}

// Runner executes a program and returns its stdout/stderr text.
type Runner func(ctx context.Context, name string, args []string) (string, string, error)

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// Prepared is an expanded command ready to run.
type Prepared struct {
	Label    string
	Line     string
	Name     string
	Args     []string
	Detached bool
	Notify   bool
}

// Cmd returns an exec.Cmd for running the command in the foreground.
func (p Prepared) Cmd() *exec.Cmd {
	return exec.Command(p.Name, p.Args...) //nolint:gosec
}

// Executor prepares and runs configured commands.
type Executor struct {
	config Config
	run    Runner
	notify Notifier
}

// NewExecutor creates an Executor that runs real processes.
func NewExecutor(cfg Config) Executor {
	return NewExecutorWithRunner(cfg, defaultRunner, DesktopNotify)
}

// NewExecutorWithRunner creates an Executor with a custom runner for tests.
func NewExecutorWithRunner(cfg Config, runner Runner, notifier Notifier) Executor {
	if strings.TrimSpace(cfg.Shell) == "" {
		cfg.Shell = defaultShell
	}
	if runner == nil {
		runner = defaultRunner
	}
	return Executor{config: cfg, run: runner, notify: notifier}
}

// Prepare expands cfg's template with vars.
func (e Executor) Prepare(cfg settings.CommandConfig, vars Vars) (Prepared, error) {
	if strings.TrimSpace(cfg.Template) == "" {
		return Prepared{}, errors.New("command template is empty")
	}
	line, err := Expand(cfg.Template, vars)
	if err != nil {
		return Prepared{}, err
	}

	argv := []string{e.config.Shell, "-c", line}
	detached := cfg.Detached
	if cfg.Terminal {
		prefix := strings.Fields(e.config.Terminal)
		if len(prefix) == 0 {
			return Prepared{}, errors.New("terminal command is not configured")
		}
		argv = append(prefix, argv...)
		// A new window never needs our terminal.
		detached = true
	}

	return Prepared{
		Label:    cfg.Label,
		Line:     line,
		Name:     argv[0],
		Args:     argv[1:],
		Detached: detached,
		Notify:   cfg.Notify,
	}, nil
}

// RunDetached runs p to completion without the terminal and sends a
// notification when requested.
func (e Executor) RunDetached(ctx context.Context, p Prepared) error {
	logger.Info("running %q: %s", p.Label, p.Line)
	stdout, stderr, err := e.run(ctx, p.Name, p.Args)
	if err != nil {
		reason := strings.TrimSpace(stderr)
		if reason == "" {
			reason = strings.TrimSpace(stdout)
		}
		if reason != "" {
			err = fmt.Errorf("%s failed: %w: %s", p.Label, err, lastLine(reason))
		} else {
			err = fmt.Errorf("%s failed: %w", p.Label, err)
		}
	}
	if p.Notify && e.notify != nil {
		message := "Finished"
		if err != nil {
			message = err.Error()
		}
		if nerr := e.notify(p.Label, message); nerr != nil {
			logger.Warn("notification failed: %v", nerr)
		}
	}
	return err
}

func lastLine(text string) string {
	lines := strings.Split(text, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func defaultRunner(ctx context.Context, name string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
