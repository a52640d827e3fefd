// Package main is the entry point for the tasks-tui application.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/config"
	"github.com/hy4ri/tasks-tui/internal/logging"
	"github.com/hy4ri/tasks-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `tasks-tui - Terminal client for a daily task list

USAGE:
    tasks-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --debug             Log at debug level
    --filter <name>     Start with a filter: all, done or open

SERVER:
    Tasks are read from and added to ` + api.BaseURL + `/tasks

CONFIGURATION:
    Config file: ~/.config/tasks-tui/config.yaml
    Log file:    ~/.local/share/tasks-tui/tasks-tui.log

KEYBINDINGS:
    j/k         Move down/up
    gg/G        Go to top/bottom
    a/i         Type a new task (enter adds, esc leaves)
    x/space     Mark done/open
    1/2/3       Show all/done/open
    f           Next filter
    r           Load previous tasks
    yy          Copy task to clipboard
    ?           Show help
    q           Quit
`

const configTemplate = `# tasks-tui configuration
# Location: ~/.config/tasks-tui/config.yaml

ui:
  # Vim-style navigation (j/k, gg/G, yy). Set to false for arrows and home/end only
  vim_mode: true

  # Show the key hint footer (toggle with F1)
  show_hints: true

  # Desktop notification when a task is added
  notifications: false

  # Filter shown at startup: all, done or open
  default_filter: all

log:
  # Defaults to ~/.local/share/tasks-tui/tasks-tui.log
  # file: ""

  # debug, info, warn or error
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		debug       bool
		filter      string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&debug, "debug", false, "Log at debug level")
	flag.StringVar(&filter, "filter", "", "Initial filter (all, done, open)")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tasks-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(filter, debug)
}

// confirmOverwrite reads a y/N answer from r. Anything but "y" or "Y" is a no,
// including a closed or empty input.
func confirmOverwrite(r io.Reader, w io.Writer) bool {
	var response string
	if _, err := fmt.Fscanln(r, &response); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w, "\nNo answer on stdin.")
		}
		return false
	}
	return response == "y" || response == "Y"
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		if !confirmOverwrite(os.Stdin, os.Stdout) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(filter string, debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if filter != "" {
		cfg.UI.DefaultFilter = filter
	}

	logger, closer, err := openLogger(cfg, debug)
	if err != nil {
		// Non-fatal: run without a log file
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closer.Close()

	logger.Info("starting", "version", version, "endpoint", api.BaseURL, "filter", cfg.UI.DefaultFilter)

	app := tui.NewApp(api.NewClient(), cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("exiting")
	return nil
}

// openLogger returns a file logger, or a discarding one when the file can't be opened.
func openLogger(cfg *config.Config, debug bool) (*log.Logger, io.Closer, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return logging.Discard(), nopCloser{}, fmt.Errorf("failed to resolve log path: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Path:  path,
		Level: cfg.Log.Level,
		Debug: debug,
	})
	if err != nil {
		return logging.Discard(), nopCloser{}, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
