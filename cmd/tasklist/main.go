package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tasklist/internal/app"
	"github.com/dori/tasklist/internal/store"
	"github.com/dori/tasklist/internal/ui"
	"github.com/dori/tasklist/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(stderr) }

	cfg, err := app.Load(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "add":
			return handleAdd(cfg, rest[1:], stdout, stderr)
		case "list":
			return handleList(cfg, stdout, stderr)
		case "version":
			fmt.Fprintf(stdout, "tasklist v%s\n", version)
			return 0
		case "help":
			printHelp(stdout)
			return 0
		default:
			fmt.Fprintf(stderr, "Unknown command: %s\n\n", rest[0])
			printHelp(stderr)
			return 1
		}
	}

	th, ok := theme.ByName(cfg.Theme)
	if !ok {
		fmt.Fprintf(stderr, "Unknown theme %q, using %s\n", cfg.Theme, app.DefaultTheme)
		th = theme.Nord
	}

	if cfg.TUI {
		return runTUI(cfg, th, stdin, stdout, stderr)
	}
	return runPrompt(cfg, th, stdin, stdout, stderr)
}

func printHelp(w io.Writer) {
	help := `tasklist - A small interactive task tracker

Usage:
  tasklist [flags]               Start the interactive menu
  tasklist [flags] add <task>    Quick add a task
  tasklist [flags] list          Print tasks and exit
  tasklist version               Show version
  tasklist help                  Show this help

Flags:
  --file <path>     Task file (default: tasks.txt next to the executable)
  --config <path>   Config file (default: tasklist.toml next to the executable)
  --theme <name>    Theme (nord, dracula, gruvbox, catppuccin)
  --tui             Full-screen interface
  --debug           Debug logging

Environment:
  TASKLIST_FILE     Task file
  TASKLIST_DEBUG    Debug logging when set to 1/true

Menu:
  1 View tasks   2 Add   3 Edit   4 Change status   5 Remove   6 Save & exit`

	fmt.Fprintln(w, help)
}

func openApp(cfg *app.Config, stderr io.Writer) (*app.App, bool) {
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, false
	}
	return application, true
}

func runPrompt(cfg *app.Config, th theme.Theme, stdin io.Reader, stdout, stderr io.Writer) int {
	application, ok := openApp(cfg, stderr)
	if !ok {
		return 1
	}
	defer application.Close()

	err := ui.NewPrompt(application, stdin, stdout, th).Run()
	if errors.Is(err, ui.ErrInputClosed) {
		application.Log.Warn(err.Error())
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runTUI(cfg *app.Config, th theme.Theme, stdin io.Reader, stdout, stderr io.Writer) int {
	application, ok := openApp(cfg, stderr)
	if !ok {
		return 1
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewModel(application, th),
		tea.WithAltScreen(),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if m, ok := final.(ui.Model); ok && m.Saved() {
		fmt.Fprintln(stdout, "Tasks saved, Goodbye!")
	} else {
		fmt.Fprintln(stderr, "Exited without saving.")
	}
	return 0
}

func handleAdd(cfg *app.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Usage: tasklist add <task>")
		fmt.Fprintln(stderr, "Example: tasklist add \"Buy groceries\"")
		return 1
	}

	application, ok := openApp(cfg, stderr)
	if !ok {
		return 1
	}
	defer application.Close()

	if application.FileErr != nil {
		fmt.Fprintf(stderr, "Error handling file: %v\n", application.FileErr)
	}

	t, err := application.Store.Add(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := application.Save(); err != nil {
		fmt.Fprintf(stderr, "Error saving tasks: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Created: %s [%s]\n", t.Title, t.Status)
	return 0
}

func handleList(cfg *app.Config, stdout, stderr io.Writer) int {
	tasks, err := store.Load(cfg.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if len(tasks) == 0 {
		fmt.Fprintln(stdout, "No tasks found!")
		return 0
	}

	for i, t := range tasks {
		fmt.Fprintf(stdout, "%d. %s [%s]\n", i+1, t.Title, t.Status)
	}
	return 0
}
