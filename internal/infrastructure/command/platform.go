package command

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
)

// OSOpenCmd allows mocking the open command.
var OSOpenCmd = func(url string) *exec.Cmd {
	var cmd string
	var args []string
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		cmd = "xdg-open"
		args = []string{url}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		return nil
	}
	return exec.Command(cmd, args...) //nolint:gosec
}

// OpenBrowser opens url with the platform's default handler.
func OpenBrowser(url string) error {
	cmd := OSOpenCmd(url)
	if cmd == nil {
		return fmt.Errorf("unsupported platform")
	}
	return cmd.Start()
}

// ClipboardWriter allows mocking the system clipboard.
var ClipboardWriter = clipboard.WriteAll

// CopyText puts text on the system clipboard.
func CopyText(text string) error {
	if err := ClipboardWriter(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// DesktopNotify shows a desktop notification.
func DesktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}
