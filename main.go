package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/application/usecase"
	"github.com/ytgrid/ytgrid/internal/infrastructure/command"
	"github.com/ytgrid/ytgrid/internal/infrastructure/config"
	"github.com/ytgrid/ytgrid/internal/infrastructure/feed"
	"github.com/ytgrid/ytgrid/internal/infrastructure/history"
	"github.com/ytgrid/ytgrid/internal/infrastructure/invidious"
	"github.com/ytgrid/ytgrid/internal/infrastructure/thumbnail"
	"github.com/ytgrid/ytgrid/internal/logger"
	"github.com/ytgrid/ytgrid/internal/presentation/tui"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/update"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
	"golang.org/x/term"
)

const (
	exitOK      = 0
	exitSetup   = 1
	exitCommand = 2
)

type cli struct {
	Config  string   `help:"Config file path." type:"path"`
	Debug   bool     `help:"Enable debug logging."`
	Command []string `arg:"" optional:"" passthrough:"partial" help:"Initial command, e.g. 'loadpage video <id>'."`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// parseArgs reads the flags and the initial command. Everything from the
// first positional argument on belongs to the command, so ids starting with
// '-' are not taken for flags.
func parseArgs(args []string) (cli, page.Page, error) {
	var opts cli
	parser, err := kong.New(&opts,
		kong.Name("ytgrid"),
		kong.Description("Browse YouTube through an Invidious instance."),
	)
	if err != nil {
		return cli{}, page.Page{}, err
	}
	if _, err := parser.Parse(args); err != nil {
		return cli{}, page.Page{}, err
	}
	initial, err := page.ParseCommand(opts.Command)
	if err != nil {
		return cli{}, page.Page{}, err
	}
	return opts, initial, nil
}

func run(args []string) int {
	opts, initial, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommand
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: ytgrid needs an interactive terminal")
		return exitSetup
	}

	store, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitSetup
	}
	cfg := store.Settings
	if err := store.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitSetup
	}

	if err := logger.Init(cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitSetup
	}
	defer logger.Close()
	logger.SetDebug(cfg.Debug || opts.Debug)
	logger.Info("Starting on %s with config %s", initial, store.Path())

	historyRepo := history.NewManager(cfg.HistoryFile)
	defer func() { _ = historyRepo.Close() }()
	watchSvc := usecase.NewWatchService(historyRepo, cfg.HistoryLimit, time.Now)
	if err := watchSvc.Load(); err != nil {
		logger.Warn("Failed to load watch history: %v", err)
	}

	rss := feed.NewReader(cfg.RSSBaseURL, cfg.Timeout())
	client := invidious.NewClient(cfg.Invidious, cfg.Timeout(), cfg.Retries,
		invidious.WithUploadsFallback(rss),
		invidious.WithRegion(cfg.Region),
	)

	deps := update.Deps{
		Provider:    client,
		Watch:       watchSvc,
		Commands:    cfg.Commands,
		DownloadDir: cfg.DownloadDir,
		Executor:    command.NewExecutor(command.Config{Terminal: cfg.Terminal}),
		CopyText:    command.CopyText,
		OpenBrowser: command.OpenBrowser,
		Now:         time.Now,
	}
	var previews widget.ThumbnailRenderer
	if cfg.Thumbnails {
		cache := thumbnail.New(filepath.Join(cfg.CacheDir, "thumbnails"), cfg.ThumbnailWorkers, cfg.Timeout())
		deps.Thumbnails = cache
		previews = cache
	}

	model := tui.NewModel(cfg, initial, deps, previews)
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()

	if err := watchSvc.Save(); err != nil {
		logger.Error("Failed to save watch history: %v", err)
	}
	if runErr != nil {
		logger.Error("Program exited with error: %v", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return exitSetup
	}
	return exitOK
}
