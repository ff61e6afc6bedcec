package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/LuizRMSilva1973/projeto-pastelaria/console/client"
	"github.com/LuizRMSilva1973/projeto-pastelaria/console/config"
	"github.com/LuizRMSilva1973/projeto-pastelaria/console/tui"
)

func main() {
	var (
		configPath string
		view       string
		machine    int64
	)
	flag.StringVar(&configPath, "config", "console.yaml", "console configuration file")
	flag.StringVar(&view, "view", "", "admin, operator or floor (overrides CONSOLE_VIEW)")
	flag.Int64Var(&machine, "machine", 0, "machine id for the floor view (overrides CONSOLE_MACHINE)")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if view == "" {
		view = cfg.View
	}
	if machine == 0 {
		machine = cfg.Machine
	}

	mode, err := tui.ParseViewMode(view)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	api := client.New(cfg.APIURL, cfg.Timeout)

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := tui.PrintOnce(os.Stdout, mode, api, machine, cfg.Timeout); err != nil {
			log.Error("print view failed", "view", mode, "error", err)
			os.Exit(1)
		}
		return
	}

	app := tui.New(mode, api,
		tui.WithMachine(machine),
		tui.WithRefresh(cfg.Refresh),
		tui.WithTimeout(cfg.Timeout),
	)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Error("console stopped", "view", mode, "error", err)
		os.Exit(1)
	}
}

// mustMakeLogger writes to stderr so logs never land inside the TUI frame.
func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
