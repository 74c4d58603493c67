package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dori/tasklist/internal/model"
	"github.com/dori/tasklist/internal/notify"
	"github.com/dori/tasklist/internal/store"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// App holds the application state and dependencies
type App struct {
	Store     *store.Store
	Notifier  *notify.Notifier
	Log       *log.Logger
	Config    *Config
	SessionID string

	// FileErr is set when the task file could not be prepared at startup.
	// The session then starts with no tasks and no lock on Config.File.
	FileErr error

	lockFile *flock.Flock
	logFile  *os.File
}

// New creates a new application instance
func New(cfg *Config, opts ...store.Option) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	app := &App{
		Config:    cfg,
		SessionID: uuid.NewString(),
		Notifier:  notify.NewNotifier(),
	}
	app.Notifier.SetEnabled(cfg.Notify)

	if err := app.setupLogger(); err != nil {
		return nil, err
	}

	path, err := store.EnsureFile(cfg.File)
	if err != nil {
		// start empty; the save on exit reports its own error
		app.FileErr = err
		app.Store = store.New(cfg.File, opts...)
		app.Log.Warn("task file unavailable, starting with no tasks", "path", cfg.File, "err", err)
		return app, nil
	}

	if err := app.acquireLock(path); err != nil {
		app.closeLog()
		return nil, err
	}

	s, err := store.Open(path, opts...)
	if err != nil {
		app.releaseLock()
		app.closeLog()
		return nil, err
	}
	app.Store = s
	if skipped := s.Skipped(); len(skipped) > 0 {
		app.Log.Warn("skipped malformed lines; they will not be saved", "path", path, "lines", skipped)
	}
	app.Log.Debug("tasks loaded", "path", path, "count", s.Len())

	return app, nil
}

func (a *App) setupLogger() error {
	var out io.Writer = os.Stderr
	switch {
	case a.Config.LogFile != "":
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		out = f
	case a.Config.TUI:
		// stderr would draw over the full-screen view
		out = io.Discard
	}

	level := log.WarnLevel
	if a.Config.Debug {
		level = log.DebugLevel
	}

	a.Log = log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "tasklist",
		ReportTimestamp: a.Config.LogFile != "",
	}).With("session", a.SessionID)
	return nil
}

// acquireLock takes an exclusive lock next to the task file so that only one
// session writes it
func (a *App) acquireLock(path string) error {
	lockPath := path + ".lock"
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		a.Log.Warn("running without a file lock", "path", lockPath, "err", err)
		a.lockFile = nil
		return nil
	}

	if !locked {
		a.lockFile = nil
		return fmt.Errorf("another tasklist session is using %s", path)
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
		a.lockFile = nil
	}
}

func (a *App) closeLog() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// SetStatus changes the status of the task at position and sends a
// notification when it becomes Done
func (a *App) SetStatus(position int, status model.Status) (model.Task, error) {
	prev, err := a.Store.Get(position)
	if err != nil {
		return model.Task{}, err
	}

	t, err := a.Store.UpdateStatus(position, status)
	if err != nil {
		return model.Task{}, err
	}
	a.Log.Debug("status changed", "position", position, "from", prev.Status, "to", t.Status)

	if t.IsDone() && !prev.IsDone() {
		if err := a.Notifier.SendTaskDone(t.Title); err != nil {
			a.Log.Warn("notification failed", "err", err)
		}
	}
	return t, nil
}

// Save writes the task list to disk
func (a *App) Save() error {
	if err := a.Store.Flush(); err != nil {
		a.Log.Error("save failed", "path", a.Store.Path(), "err", err)
		return err
	}
	a.Log.Debug("tasks saved", "path", a.Store.Path(), "count", a.Store.Len())
	return nil
}

// Close releases application resources. It does not save.
func (a *App) Close() error {
	a.releaseLock()
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		a.logFile = nil
	}
	return nil
}
