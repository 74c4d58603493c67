package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dori/tasklist/internal/model"
)

// DefaultFileName is the task file created next to the executable
const DefaultFileName = "tasks.txt"

const (
	delimiter = "|"
	numFields = 4
)

// DefaultDataDir returns the directory of the running executable
func DefaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// DefaultPath returns the default task file path
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), DefaultFileName)
}

// EnsureFile makes sure the task file exists and returns its absolute path.
// On failure it returns an empty path; callers must check it before use.
func EnsureFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if _, err := os.Stat(abs); err == nil {
		return abs, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat %s: %w", abs, err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", abs, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", abs, err)
	}

	return abs, nil
}

// Load reads tasks from path. A missing file yields no tasks.
// Lines that are not well-formed records are skipped.
//
// Timestamps are read and written in local time without a zone, so two
// instants inside a daylight-saving fall-back hour format identically.
func Load(path string) ([]model.Task, error) {
	tasks, _, err := load(path)
	return tasks, err
}

// load is Load that also returns the 1-based line numbers it skipped
func load(path string) ([]model.Task, []int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Task{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	tasks := []model.Task{}
	var skipped []int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		t, ok := parseLine(line)
		if !ok {
			skipped = append(skipped, n)
			continue
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return tasks, skipped, nil
}

// Save replaces the contents of path with one line per task
func Save(path string, tasks []model.Task) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// no-op once the rename succeeded
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, t := range tasks {
		if _, err := w.WriteString(formatLine(t) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write tasks: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write tasks: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func parseLine(line string) (model.Task, bool) {
	parts := strings.Split(line, delimiter)
	if len(parts) != numFields {
		return model.Task{}, false
	}

	status, err := model.ParseStatus(parts[1])
	if err != nil {
		return model.Task{}, false
	}
	created, err := time.ParseInLocation(model.TimeLayout, parts[2], time.Local)
	if err != nil {
		return model.Task{}, false
	}
	updated, err := time.ParseInLocation(model.TimeLayout, parts[3], time.Local)
	if err != nil {
		return model.Task{}, false
	}

	return model.Task{
		Title:           parts[0],
		Status:          status,
		CreatedAt:       created,
		StatusUpdatedAt: updated,
	}, true
}

func formatLine(t model.Task) string {
	return strings.Join([]string{
		t.Title,
		t.Status.String(),
		t.CreatedAt.In(time.Local).Format(model.TimeLayout),
		t.StatusUpdatedAt.In(time.Local).Format(model.TimeLayout),
	}, delimiter)
}
